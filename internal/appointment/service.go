package appointment

import (
	"context"
	"errors"
	"time"
)

// Store is what the service needs from the persistence layer.
type Store interface {
	Create(ctx context.Context, a *Appointment) error
	List(ctx context.Context, status string) ([]*Appointment, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type Service struct {
	repo Store
}

func NewService(repo Store) *Service {
	return &Service{repo: repo}
}

var validStatuses = map[string]bool{
	"PENDING":   true,
	"CONFIRMED": true,
	"CANCELLED": true,
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.Name == "" || a.Phone == "" {
		return errors.New("name and phone are required")
	}

	if a.RequestedAt.IsZero() {
		return errors.New("requested_at is required")
	}

	if a.RequestedAt.Before(time.Now()) {
		return errors.New("requested time must be in the future")
	}

	a.Status = "PENDING"
	return s.repo.Create(ctx, a)
}

func (s *Service) List(ctx context.Context, status string) ([]*Appointment, error) {
	if status != "" && !validStatuses[status] {
		return nil, errors.New("unknown status")
	}
	return s.repo.List(ctx, status)
}

func (s *Service) Confirm(ctx context.Context, id int) error {
	return s.repo.UpdateStatus(ctx, id, "CONFIRMED")
}

func (s *Service) Cancel(ctx context.Context, id int) error {
	return s.repo.UpdateStatus(ctx, id, "CANCELLED")
}
