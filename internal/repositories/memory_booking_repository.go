package repositories

import (
	"context"
	"sync"

	"nomadtrip/internal/models/db_models"
)

// memoryBookingRepository keeps bookings for the life of the process, newest
// first. Records are copied on the way in and out so a stored booking cannot
// be mutated through a retained pointer.
type memoryBookingRepository struct {
	mu     sync.RWMutex
	byUser map[string][]db_models.Booking
}

func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{
		byUser: make(map[string][]db_models.Booking),
	}
}

func (m *memoryBookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	if err := booking.BeforeCreate(nil); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	key := booking.UserID.String()
	m.byUser[key] = append([]db_models.Booking{*booking}, m.byUser[key]...)
	return nil
}

func (m *memoryBookingRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := m.byUser[userID]
	out := make([]db_models.Booking, len(stored))
	copy(out, stored)
	return out, nil
}
