package service

import (
	"context"
	"sync"

	orderdomain "fulfillment-admin/internal/features/orders/domain"
	"fulfillment-admin/internal/features/tracking/domain"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockGateway is a mock implementation of ports.TrackingGateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GetTracking(ctx context.Context, orderID string) (*domain.TrackingRecord, error) {
	args := m.Called(ctx, orderID)
	rec, _ := args.Get(0).(*domain.TrackingRecord)
	return rec, args.Error(1)
}

func (m *MockGateway) CreateTracking(ctx context.Context, req domain.NewTracking) (*domain.TrackingRecord, error) {
	args := m.Called(ctx, req)
	rec, _ := args.Get(0).(*domain.TrackingRecord)
	return rec, args.Error(1)
}

func (m *MockGateway) UpdateStatus(ctx context.Context, orderID string, status domain.Status, notes string) (*domain.TrackingRecord, error) {
	args := m.Called(ctx, orderID, status, notes)
	rec, _ := args.Get(0).(*domain.TrackingRecord)
	return rec, args.Error(1)
}

func (m *MockGateway) ResetTracking(ctx context.Context, orderID string) (*domain.TrackingRecord, error) {
	args := m.Called(ctx, orderID)
	rec, _ := args.Get(0).(*domain.TrackingRecord)
	return rec, args.Error(1)
}

// memoryStore is an in-memory ports.TrackingStore.
type memoryStore struct {
	mu      sync.Mutex
	records map[string]*domain.TrackingRecord
	writes  int
	deletes int
	// replaceErr makes every Replace fail without storing.
	replaceErr error
	// deleteErr makes every Delete fail.
	deleteErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: make(map[string]*domain.TrackingRecord)}
}

func (s *memoryStore) Get(ctx context.Context, orderID string) (*domain.TrackingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[orderID], nil
}

func (s *memoryStore) Replace(ctx context.Context, orderID string, rec *domain.TrackingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.records[orderID] = rec
	s.writes++
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.records, orderID)
	s.deletes++
	return nil
}

// staticOrders is a ports.OrderReader backed by a map.
type staticOrders map[string]*orderdomain.Order

func (o staticOrders) GetOrder(ctx context.Context, orderID string) (*orderdomain.Order, error) {
	order, ok := o[orderID]
	if !ok {
		return nil, orderdomain.ErrOrderNotFound
	}
	return order, nil
}

func record(orderID string, history ...domain.Status) *domain.TrackingRecord {
	rec := &domain.TrackingRecord{
		ID:             "t-" + orderID,
		OrderID:        orderID,
		Carrier:        "DHL",
		TrackingNumber: "JD0142",
	}
	for _, s := range history {
		rec.StatusHistory = append(rec.StatusHistory, domain.StatusHistoryEntry{Status: s})
	}
	if len(history) > 0 {
		rec.Status = history[len(history)-1]
	}
	return rec
}

func zapNop() *zap.Logger {
	return zap.NewNop()
}
