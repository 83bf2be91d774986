package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"nomadtrip/internal/models/db_models"
	"nomadtrip/internal/models/request_models"
	"nomadtrip/internal/models/response_models"
	"nomadtrip/internal/repositories"
	mem "nomadtrip/pkg/memcache"
	"nomadtrip/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userID, sessionID string) (*response_models.BookingResponse, error)
	ListBookings(ctx context.Context, userID string) ([]response_models.BookingResponse, error)
}

type BookingService struct {
	repo     repositories.BookingRepository
	sessions mem.PlanSessionStore
}

func NewBookingService(repo repositories.BookingRepository, sessions mem.PlanSessionStore) BookingServiceInterface {
	return &BookingService{repo: repo, sessions: sessions}
}

// CreateBooking snapshots the session's selection into an immutable record.
// Later edits to the session do not reach the booking.
func (s *BookingService) CreateBooking(ctx context.Context, userID, sessionID string) (*response_models.BookingResponse, error) {
	var (
		req       request_models.TripPlanRequest
		selection response_models.TripSelection
	)
	err := s.sessions.View(sessionID, func(session *mem.PlanSession) error {
		req = session.Request
		selection = session.Selection.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if selection.SelectedFlight == nil || selection.SelectedHotel == nil {
		return nil, utils.ErrSelectionMissing
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id", utils.ErrInvalidInput)
	}

	detailsJSON, err := json.Marshal(selection)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	booking := &db_models.Booking{
		UserID:      uid,
		Destination: req.Destination,
		DateRange:   fmt.Sprintf("%s (%d days)", req.Dates, req.Duration),
		TotalCost:   selection.TotalCost(),
		Status:      "confirmed",
		Image:       selection.SelectedHotel.ImageURL,
		DetailsJSON: string(detailsJSON),
	}
	if err := s.repo.Insert(ctx, booking); err != nil {
		log.Printf("Booking insert failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *BookingService) ListBookings(ctx context.Context, userID string) ([]response_models.BookingResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("%w: bad user id", utils.ErrInvalidInput)
	}

	bookings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("Booking list failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, toBookingResponse(&bookings[i]))
	}
	return result, nil
}

func toBookingResponse(b *db_models.Booking) response_models.BookingResponse {
	var details response_models.TripSelection
	if b.DetailsJSON != "" {
		if err := json.Unmarshal([]byte(b.DetailsJSON), &details); err != nil {
			log.Printf("Booking %s has unreadable details: %v", b.ID, err)
		}
	}
	return response_models.BookingResponse{
		ID:          b.ID.String(),
		UserID:      b.UserID.String(),
		Destination: b.Destination,
		DateRange:   b.DateRange,
		TotalCost:   b.TotalCost,
		Status:      b.Status,
		BookedAt:    time.Unix(b.CreatedAt, 0).UTC().Format(time.RFC3339),
		Image:       b.Image,
		Details:     details,
	}
}
