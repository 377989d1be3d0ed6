package valuation

import (
	"context"
	"errors"
	"testing"

	"emlakk/internal/analytics"
)

// --------------------------------------------------
// Mocks
// --------------------------------------------------

type mockStore struct {
	requests map[int]*Request
	nextID   int
}

func newMockStore() *mockStore {
	return &mockStore{requests: make(map[int]*Request), nextID: 1}
}

func (m *mockStore) Create(ctx context.Context, req *Request) error {
	req.ID = m.nextID
	m.nextID++
	m.requests[req.ID] = req
	return nil
}

func (m *mockStore) GetByID(ctx context.Context, id int) (*Request, error) {
	req, ok := m.requests[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return req, nil
}

func (m *mockStore) List(ctx context.Context, status string) ([]*Request, error) {
	var out []*Request
	for _, req := range m.requests {
		if status == "" || req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (m *mockStore) UpdateStatus(ctx context.Context, id int, status string) error {
	req, ok := m.requests[id]
	if !ok {
		return errors.New("not found")
	}
	req.Status = status
	return nil
}

type mockMarket struct {
	snapshots map[string]*analytics.Snapshot
}

func (m *mockMarket) GetSnapshot(ctx context.Context, city, category string) (*analytics.Snapshot, error) {
	snap, ok := m.snapshots[city+"/"+category]
	if !ok {
		return nil, errors.New("no rows")
	}
	return snap, nil
}

func floatPtr(v float64) *float64 { return &v }

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestCreateRequest_Valid(t *testing.T) {
	service := NewService(newMockStore(), &mockMarket{})

	req := &Request{
		Name:            "Ayşe Yılmaz",
		Phone:           "05321112233",
		City:            "Sakarya",
		Category:        "konut",
		TransactionType: "sale",
	}

	if err := service.CreateRequest(context.Background(), req); err != nil {
		t.Fatalf("expected request to be created, got %v", err)
	}

	if req.Status != "NEW" {
		t.Errorf("expected status NEW, got %s", req.Status)
	}

	if req.ID == 0 {
		t.Error("expected an assigned id")
	}
}

func TestCreateRequest_MissingFields(t *testing.T) {
	service := NewService(newMockStore(), &mockMarket{})

	req := &Request{
		Name:            "Ayşe Yılmaz",
		City:            "Sakarya",
		Category:        "konut",
		TransactionType: "sale",
	}

	if err := service.CreateRequest(context.Background(), req); err == nil {
		t.Error("expected error for missing phone")
	}
}

func TestCreateRequest_BadTransactionType(t *testing.T) {
	service := NewService(newMockStore(), &mockMarket{})

	req := &Request{
		Name:            "Ayşe Yılmaz",
		Phone:           "05321112233",
		City:            "Sakarya",
		Category:        "konut",
		TransactionType: "lease",
	}

	if err := service.CreateRequest(context.Background(), req); err == nil {
		t.Error("expected error for unknown transaction type")
	}
}

func TestUpdateStatus_Unknown(t *testing.T) {
	service := NewService(newMockStore(), &mockMarket{})

	if err := service.UpdateStatus(context.Background(), 1, "ARCHIVED"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestGetEstimate_Positioning(t *testing.T) {
	store := newMockStore()
	market := &mockMarket{
		snapshots: map[string]*analytics.Snapshot{
			"Sakarya/konut": {
				City:        "Sakarya",
				Category:    "konut",
				AvgPrice:    2_100_000,
				MedianPrice: 2_000_000,
				SampleSize:  25,
			},
		},
	}
	service := NewService(store, market)

	cases := []struct {
		name     string
		expected *float64
		want     string
	}{
		{"under market", floatPtr(1_500_000), "UNDER_MARKET"},
		{"at market", floatPtr(2_050_000), "MARKET_AVERAGE"},
		{"premium", floatPtr(2_500_000), "PREMIUM"},
		{"no expectation", nil, "MARKET_AVERAGE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := &Request{
				Name:            "Ayşe Yılmaz",
				Phone:           "05321112233",
				City:            "Sakarya",
				Category:        "konut",
				TransactionType: "sale",
				ExpectedPrice:   tc.expected,
			}

			if err := service.CreateRequest(context.Background(), req); err != nil {
				t.Fatalf("create: %v", err)
			}

			estimate, err := service.GetEstimate(context.Background(), req.ID)
			if err != nil {
				t.Fatalf("estimate: %v", err)
			}

			if estimate.Positioning != tc.want {
				t.Errorf("expected positioning %s, got %s", tc.want, estimate.Positioning)
			}

			if estimate.SampleSize != 25 {
				t.Errorf("expected sample size 25, got %d", estimate.SampleSize)
			}
		})
	}
}

func TestGetEstimate_NoMarketData(t *testing.T) {
	store := newMockStore()
	service := NewService(store, &mockMarket{})

	req := &Request{
		Name:            "Ayşe Yılmaz",
		Phone:           "05321112233",
		City:            "Bilecik",
		Category:        "arsa",
		TransactionType: "sale",
	}

	if err := service.CreateRequest(context.Background(), req); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := service.GetEstimate(context.Background(), req.ID); err == nil {
		t.Error("expected error when no snapshot exists")
	}
}
