package importer

import (
	"context"
	"testing"

	"emlakk/internal/listing"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.250.000 TL", 1_250_000},
		{"12.500 ₺/ay", 12_500},
		{"950.000", 950_000},
		{"2.500.000,50 TL", 2_500_000.50},
	}

	for _, tc := range cases {
		got, err := ParsePrice(tc.in)
		if err != nil {
			t.Errorf("ParsePrice(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, in := range []string{"", "Fiyat sorunuz", "0 TL"} {
		if _, err := ParsePrice(in); err == nil {
			t.Errorf("ParsePrice(%q) should fail", in)
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	got, err := ParseCoordinate("40,7569")
	if err != nil {
		t.Fatalf("comma coordinate: %v", err)
	}
	if got != 40.7569 {
		t.Errorf("expected 40.7569, got %v", got)
	}

	if _, err := ParseCoordinate(""); err == nil {
		t.Error("empty coordinate should fail")
	}
}

func TestCleanTitle(t *testing.T) {
	got := CleanTitle("  Sapanca   Göl\n Manzaralı  Villa ")
	if got != "Sapanca Göl Manzaralı Villa" {
		t.Errorf("unexpected title: %q", got)
	}
}

// --------------------------------------------------
// Import pipeline
// --------------------------------------------------

type stubSource struct {
	cards []PortalCard
}

func (s *stubSource) Portal() string { return "sahibinden" }

func (s *stubSource) Fetch(ctx context.Context) ([]PortalCard, error) {
	return s.cards, nil
}

func TestRun_SkipsMalformedCards(t *testing.T) {
	source := &stubSource{
		cards: []PortalCard{
			{
				Title: "Sapanca Göl Manzaralı Villa",
				Price: "12.500.000 TL",
				City:  "Sakarya",
				Lat:   "40.6896",
				Lng:   "30.2675",
			},
			{Title: "Fiyatsız İlan", Price: "Fiyat sorunuz", City: "Sakarya"},
			{Title: "", Price: "1.000 TL", City: "Sakarya"},
		},
	}

	repo := listing.NewInMemoryRepository()
	service := NewService(source, repo)

	imported, skipped, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if imported != 1 || skipped != 2 {
		t.Errorf("expected 1 imported / 2 skipped, got %d / %d", imported, skipped)
	}

	saved, err := repo.List(context.Background(), listing.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(saved) != 1 {
		t.Fatalf("expected 1 saved listing, got %d", len(saved))
	}

	got := saved[0]
	if got.Source != "sahibinden" {
		t.Errorf("expected source sahibinden, got %s", got.Source)
	}
	if got.Coordinates == nil || got.Coordinates.Lat != 40.6896 {
		t.Errorf("expected parsed coordinates, got %+v", got.Coordinates)
	}
	if got.Slug != "sapanca-gol-manzarali-villa" {
		t.Errorf("unexpected slug: %s", got.Slug)
	}
}

func TestRun_CoordinatelessCardStillImports(t *testing.T) {
	source := &stubSource{
		cards: []PortalCard{
			{Title: "Merkez Daire", Price: "2.000.000 TL", City: "Sakarya"},
		},
	}

	repo := listing.NewInMemoryRepository()
	service := NewService(source, repo)

	imported, _, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if imported != 1 {
		t.Fatalf("expected 1 imported, got %d", imported)
	}

	saved, _ := repo.List(context.Background(), listing.ListFilter{})
	if saved[0].Coordinates != nil {
		t.Error("expected nil coordinates when portal omits them")
	}
}
