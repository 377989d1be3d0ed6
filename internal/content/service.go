package content

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"emlakk/internal/core"
	"emlakk/internal/llm"
)

// Store is what the service needs from the persistence layer.
type Store interface {
	Create(ctx context.Context, gc *GeneratedContent) error
	ClaimPending(ctx context.Context) (*GeneratedContent, error)
	SaveBody(ctx context.Context, id int, body json.RawMessage) error
	MarkFailed(ctx context.Context, id int, reason string) error
	GetByID(ctx context.Context, id int) (*GeneratedContent, error)
	ListByListing(ctx context.Context, listingID string) ([]*GeneratedContent, error)
}

type Service struct {
	repo     Store
	listings core.ListingReader
	client   llm.Client
}

func NewService(repo Store, listings core.ListingReader, client llm.Client) *Service {
	return &Service{
		repo:     repo,
		listings: listings,
		client:   client,
	}
}

// Enqueue registers a generation job; the worker picks it up later.
func (s *Service) Enqueue(ctx context.Context, listingID, kind string) (*GeneratedContent, error) {
	if kind != KindSocialPost && kind != KindArticle {
		return nil, errors.New("kind must be SOCIAL_POST or ARTICLE")
	}

	if _, err := s.listings.GetSummary(ctx, listingID); err != nil {
		return nil, errors.New("listing not found")
	}

	gc := &GeneratedContent{ListingID: listingID, Kind: kind}
	if err := s.repo.Create(ctx, gc); err != nil {
		return nil, err
	}

	return gc, nil
}

func (s *Service) Get(ctx context.Context, id int) (*GeneratedContent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByListing(ctx context.Context, listingID string) ([]*GeneratedContent, error) {
	return s.repo.ListByListing(ctx, listingID)
}

// ProcessOne picks ONE pending generation job and processes it safely
func (s *Service) ProcessOne(ctx context.Context) error {
	gc, err := s.repo.ClaimPending(ctx)
	if err != nil {
		return err
	}
	if gc == nil {
		// No pending jobs is NOT an error
		return nil
	}

	summary, err := s.listings.GetSummary(ctx, gc.ListingID)
	if err != nil {
		_ = s.repo.MarkFailed(ctx, gc.ID, "listing no longer exists")
		return nil // do NOT block worker
	}

	var prompt string
	switch gc.Kind {
	case KindSocialPost:
		prompt = llm.BuildSocialPostPrompt(
			summary.Title,
			summary.City,
			summary.District,
			summary.Category,
			summary.Price,
		)
	case KindArticle:
		prompt = llm.BuildArticlePrompt(summary.Title, summary.City)
	default:
		_ = s.repo.MarkFailed(ctx, gc.ID, "unknown content kind")
		return nil
	}

	raw, err := s.client.GenerateJSON(ctx, prompt)
	if err != nil {
		msg := err.Error()
		log.Printf("CONTENT_FAILED id=%d listing=%s err=%s", gc.ID, gc.ListingID, msg)
		_ = s.repo.MarkFailed(ctx, gc.ID, msg)
		return nil
	}

	// Validate shape before persisting
	switch gc.Kind {
	case KindSocialPost:
		if _, err := llm.ParseSocialPost(raw); err != nil {
			_ = s.repo.MarkFailed(ctx, gc.ID, err.Error())
			return nil
		}
	case KindArticle:
		if _, err := llm.ParseArticle(raw); err != nil {
			_ = s.repo.MarkFailed(ctx, gc.ID, err.Error())
			return nil
		}
	}

	log.Printf("CONTENT_DONE id=%d listing=%s kind=%s", gc.ID, gc.ListingID, gc.Kind)

	return s.repo.SaveBody(ctx, gc.ID, json.RawMessage(raw))
}
