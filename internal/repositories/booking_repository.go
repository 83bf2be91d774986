package repositories

import (
	"context"

	"gorm.io/gorm"

	"nomadtrip/internal/models/db_models"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *db_models.Booking) error

	// ListByUser returns the user's bookings newest first.
	ListByUser(ctx context.Context, userID string) ([]db_models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

func (b *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return b.db.WithContext(ctx).Create(booking).Error
}

func (b *bookingRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := b.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
