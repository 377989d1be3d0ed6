package importer

import (
	"context"
	"log"

	"emlakk/internal/listing"
)

// CardSource abstracts the scraper so the import pipeline can be
// tested without a browser.
type CardSource interface {
	Portal() string
	Fetch(ctx context.Context) ([]PortalCard, error)
}

type Service struct {
	source CardSource
	repo   listing.Repository
}

func NewService(source CardSource, repo listing.Repository) *Service {
	return &Service{
		source: source,
		repo:   repo,
	}
}

// Run scrapes the portal and inserts every parseable card as a listing.
// Malformed cards are skipped, not fatal.
func (s *Service) Run(ctx context.Context) (imported, skipped int, err error) {
	cards, err := s.source.Fetch(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, card := range cards {
		l, ok := s.toListing(card)
		if !ok {
			skipped++
			continue
		}

		if err := s.repo.Create(ctx, l); err != nil {
			log.Printf("[IMPORT] insert failed title=%q err=%v", l.Title, err)
			skipped++
			continue
		}

		imported++
	}

	log.Printf("[IMPORT] portal=%s imported=%d skipped=%d", s.source.Portal(), imported, skipped)
	return imported, skipped, nil
}

func (s *Service) toListing(card PortalCard) (*listing.Listing, bool) {
	title := CleanTitle(card.Title)
	if title == "" || card.City == "" {
		return nil, false
	}

	price, err := ParsePrice(card.Price)
	if err != nil {
		return nil, false
	}

	l := &listing.Listing{
		Title:           title,
		Slug:            listing.Slugify(title),
		City:            card.City,
		District:        card.District,
		Category:        card.Category,
		TransactionType: "sale",
		Price:           price,
		Currency:        "TRY",
		Source:          s.source.Portal(),
		Status:          "active",
	}

	if card.Category == "" {
		l.Category = "konut"
	}

	if card.Image != "" {
		l.Images = []string{card.Image}
	}

	lat, latErr := ParseCoordinate(card.Lat)
	lng, lngErr := ParseCoordinate(card.Lng)
	if latErr == nil && lngErr == nil {
		l.Coordinates = &listing.Coordinates{Lat: lat, Lng: lng}
	}

	return l, true
}
