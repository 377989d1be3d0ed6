package valuation

import (
	"context"
	"errors"

	"emlakk/internal/analytics"
)

// RequestStore is what the service needs from the persistence layer.
type RequestStore interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id int) (*Request, error)
	List(ctx context.Context, status string) ([]*Request, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

// MarketReader exposes the aggregated market snapshots.
type MarketReader interface {
	GetSnapshot(ctx context.Context, city, category string) (*analytics.Snapshot, error)
}

type Service struct {
	repo   RequestStore
	market MarketReader
}

func NewService(repo RequestStore, market MarketReader) *Service {
	return &Service{
		repo:   repo,
		market: market,
	}
}

var validStatuses = map[string]bool{
	"NEW":       true,
	"REVIEWED":  true,
	"CONTACTED": true,
}

// --------------------------------------------------
// Public valuation form
// --------------------------------------------------
func (s *Service) CreateRequest(ctx context.Context, req *Request) error {
	if req.Name == "" || req.Phone == "" || req.City == "" || req.Category == "" {
		return errors.New("missing required fields")
	}

	if req.TransactionType != "sale" && req.TransactionType != "rent" {
		return errors.New("transaction_type must be sale or rent")
	}

	if req.ExpectedPrice != nil && *req.ExpectedPrice < 0 {
		return errors.New("expected price cannot be negative")
	}

	req.Status = "NEW"
	return s.repo.Create(ctx, req)
}

func (s *Service) List(ctx context.Context, status string) ([]*Request, error) {
	if status != "" && !validStatuses[status] {
		return nil, errors.New("unknown status")
	}
	return s.repo.List(ctx, status)
}

func (s *Service) UpdateStatus(ctx context.Context, id int, status string) error {
	if !validStatuses[status] {
		return errors.New("unknown status")
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// --------------------------------------------------
// Market estimate (READ ONLY)
// --------------------------------------------------
func (s *Service) GetEstimate(
	ctx context.Context,
	requestID int,
) (*Estimate, error) {

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, errors.New("valuation request not found")
	}

	snap, err := s.market.GetSnapshot(ctx, req.City, req.Category)
	if err != nil {
		return nil, errors.New("no market data available")
	}

	positioning := "MARKET_AVERAGE"
	if req.ExpectedPrice != nil {
		positioning = determinePosition(*req.ExpectedPrice, snap.MedianPrice)
	}

	return &Estimate{
		RequestID:    req.ID,
		City:         req.City,
		Category:     req.Category,
		MarketAvg:    snap.AvgPrice,
		MarketMedian: snap.MedianPrice,
		SampleSize:   snap.SampleSize,
		Positioning:  positioning,
	}, nil
}

// --------------------------------------------------
// Positioning logic
// --------------------------------------------------
func determinePosition(expected, median float64) string {
	switch {
	case expected < median*0.9:
		return "UNDER_MARKET"
	case expected > median*1.1:
		return "PREMIUM"
	default:
		return "MARKET_AVERAGE"
	}
}
