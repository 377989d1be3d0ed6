package listing

import (
	"context"
	"testing"
)

func TestCreateListing_Success(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)

	created, err := service.Create(context.Background(), &Listing{
		Title:           "Sapanca Göl Manzaralı Villa",
		City:            "Sakarya",
		District:        "Sapanca",
		Category:        "konut",
		TransactionType: "sale",
		Price:           12500000,
		Coordinates:     &Coordinates{Lat: 40.69, Lng: 30.27},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if created.ID == "" {
		t.Errorf("expected ID to be set")
	}

	if created.Status != "active" {
		t.Errorf("expected status 'active', got '%s'", created.Status)
	}

	if created.Slug != "sapanca-gol-manzarali-villa" {
		t.Errorf("unexpected slug: %s", created.Slug)
	}
}

func TestCreateListing_MissingFields(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)

	_, err := service.Create(context.Background(), &Listing{
		Title:           "",
		City:            "Sakarya",
		Category:        "konut",
		TransactionType: "sale",
	})
	if err == nil {
		t.Fatal("expected error for missing fields")
	}
}

func TestCreateListing_BadTransactionType(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)

	_, err := service.Create(context.Background(), &Listing{
		Title:           "Merkezde Dükkan",
		City:            "Sakarya",
		Category:        "isyeri",
		TransactionType: "lease",
	})
	if err == nil {
		t.Fatal("expected error for invalid transaction type")
	}
}

func TestListMappable_SkipsMissingCoordinates(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)

	service.Create(context.Background(), &Listing{
		Title:           "Konumlu İlan",
		City:            "Sakarya",
		Category:        "konut",
		TransactionType: "sale",
		Price:           3000000,
		Coordinates:     &Coordinates{Lat: 40.78, Lng: 30.40},
	})
	service.Create(context.Background(), &Listing{
		Title:           "Konumsuz İlan",
		City:            "Sakarya",
		Category:        "konut",
		TransactionType: "sale",
		Price:           2000000,
	})

	mappable, err := repo.ListMappable(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mappable) != 1 {
		t.Fatalf("expected 1 mappable listing, got %d", len(mappable))
	}

	if mappable[0].Coordinates == nil {
		t.Fatal("mappable listing must carry coordinates")
	}
}

func TestList_FilterByTransactionType(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)

	service.Create(context.Background(), &Listing{
		Title: "Satılık Daire", City: "Sakarya", Category: "konut",
		TransactionType: "sale", Price: 4000000,
	})
	service.Create(context.Background(), &Listing{
		Title: "Kiralık Daire", City: "Sakarya", Category: "konut",
		TransactionType: "rent", Price: 25000,
	})

	rentals, err := service.List(context.Background(), ListFilter{TransactionType: "rent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rentals) != 1 {
		t.Fatalf("expected 1 rental, got %d", len(rentals))
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Sapanca Göl Manzaralı Villa": "sapanca-gol-manzarali-villa",
		"Çarşıda 3+1 Daire!":          "carsida-3-1-daire",
		"  İmarlı   Arsa  ":           "imarli-arsa",
	}

	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
