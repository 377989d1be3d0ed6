package message

import (
	"context"
	"errors"
)

type Store interface {
	Create(ctx context.Context, m *Message) error
	List(ctx context.Context, unreadOnly bool) ([]*Message, error)
	MarkRead(ctx context.Context, id int) error
}

type Service struct {
	repo Store
}

func NewService(repo Store) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, m *Message) error {
	if m.Name == "" || m.Body == "" {
		return errors.New("name and message body are required")
	}

	if m.Email == nil && m.Phone == nil {
		return errors.New("email or phone is required")
	}

	m.Read = false
	return s.repo.Create(ctx, m)
}

func (s *Service) List(ctx context.Context, unreadOnly bool) ([]*Message, error) {
	return s.repo.List(ctx, unreadOnly)
}

func (s *Service) MarkRead(ctx context.Context, id int) error {
	return s.repo.MarkRead(ctx, id)
}
