package export

import (
	"bytes"
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"

	"emlakk/internal/listing"
)

type stubRepo struct {
	listing.Repository
	listings []*listing.Listing
}

func (s *stubRepo) List(ctx context.Context, filter listing.ListFilter) ([]*listing.Listing, error) {
	return s.listings, nil
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 1, 15, 14, 30, 5, 0, time.UTC)
	name := Filename(now)

	pattern := regexp.MustCompile(`^listings-20260115-143005-[0-9a-f]{8}\.json\.zst$`)
	if !pattern.MatchString(name) {
		t.Errorf("unexpected filename: %s", name)
	}
}

func TestWriteDataset_RoundTrip(t *testing.T) {
	repo := &stubRepo{
		listings: []*listing.Listing{
			{ID: "a1", Title: "Sapanca Villa", City: "Sakarya", Category: "konut"},
			{ID: "a2", Title: "Merkez Daire", City: "Sakarya", Category: "konut"},
		},
	}
	service := NewService(repo)

	var buf bytes.Buffer
	count, err := service.WriteDataset(context.Background(), &buf, listing.ListFilter{})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	if count != 2 {
		t.Errorf("expected 2 listings, got %d", count)
	}

	dec, err := zstd.NewReader(&buf)
	if err != nil {
		t.Fatalf("open decoder: %v", err)
	}
	defer dec.Close()

	var decoded []*listing.Listing
	if err := json.NewDecoder(dec).Decode(&decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(decoded) != 2 || decoded[0].Title != "Sapanca Villa" {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}

func TestWriteDataset_Empty(t *testing.T) {
	service := NewService(&stubRepo{})

	var buf bytes.Buffer
	count, err := service.WriteDataset(context.Background(), &buf, listing.ListFilter{})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	if count != 0 {
		t.Errorf("expected empty dataset, got %d", count)
	}
}
