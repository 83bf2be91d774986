package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"nomadtrip/internal/repositories"
	"nomadtrip/pkg/utils"
)

func bookableSession(t *testing.T) (string, TripBuilderServiceInterface, BookingServiceInterface) {
	t.Helper()

	store := newTestStore()
	sessionID := seedSession(t, store)
	builder := NewTripBuilderService(store)
	if _, err := builder.ChooseFlight(sessionID, "f1"); err != nil {
		t.Fatalf("ChooseFlight failed: %v", err)
	}
	if _, err := builder.Advance(sessionID); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if _, err := builder.ChooseHotel(sessionID, "h2"); err != nil {
		t.Fatalf("ChooseHotel failed: %v", err)
	}

	svc := NewBookingService(repositories.NewMemoryBookingRepository(), store)
	return sessionID, builder, svc
}

func TestCreateBookingSnapshotsSelection(t *testing.T) {
	sessionID, builder, svc := bookableSession(t)
	userID := uuid.New().String()

	booking, err := svc.CreateBooking(context.Background(), userID, sessionID)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if booking.Status != "confirmed" {
		t.Errorf("expected confirmed status, got %s", booking.Status)
	}
	if booking.Destination != "Lisbon" {
		t.Errorf("unexpected destination: %s", booking.Destination)
	}
	if booking.DateRange != "2026-10-01 (5 days)" {
		t.Errorf("unexpected date range: %s", booking.DateRange)
	}
	if booking.TotalCost != 180+600 {
		t.Errorf("unexpected total: %.0f", booking.TotalCost)
	}
	if booking.Image == "" {
		t.Errorf("booking should carry the hotel image")
	}

	// Changing the session after booking must not reach the record.
	if _, err := builder.ChooseFlight(sessionID, "f3"); err != nil {
		t.Fatalf("post-booking flight change failed: %v", err)
	}
	list, err := svc.ListBookings(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one booking, got %d", len(list))
	}
	if list[0].Details.SelectedFlight == nil || list[0].Details.SelectedFlight.ID != "f1" {
		t.Fatalf("booking details should keep the flight at booking time, got %+v", list[0].Details.SelectedFlight)
	}
}

func TestCreateBookingRequiresFlightAndHotel(t *testing.T) {
	store := newTestStore()
	sessionID := seedSession(t, store)
	svc := NewBookingService(repositories.NewMemoryBookingRepository(), store)

	_, err := svc.CreateBooking(context.Background(), uuid.New().String(), sessionID)
	if !errors.Is(err, utils.ErrSelectionMissing) {
		t.Fatalf("expected ErrSelectionMissing, got %v", err)
	}
}

func TestCreateBookingUnknownSession(t *testing.T) {
	svc := NewBookingService(repositories.NewMemoryBookingRepository(), newTestStore())

	_, err := svc.CreateBooking(context.Background(), uuid.New().String(), "missing")
	if !errors.Is(err, utils.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestListBookingsNewestFirstAndScoped(t *testing.T) {
	store := newTestStore()
	repo := repositories.NewMemoryBookingRepository()
	builder := NewTripBuilderService(store)
	svc := NewBookingService(repo, store)

	userA := uuid.New().String()
	userB := uuid.New().String()

	var ids []string
	for i := 0; i < 2; i++ {
		sessionID := seedSession(t, store)
		if _, err := builder.ChooseFlight(sessionID, "f1"); err != nil {
			t.Fatalf("ChooseFlight failed: %v", err)
		}
		if _, err := builder.Advance(sessionID); err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
		if _, err := builder.ChooseHotel(sessionID, "h1"); err != nil {
			t.Fatalf("ChooseHotel failed: %v", err)
		}
		booking, err := svc.CreateBooking(context.Background(), userA, sessionID)
		if err != nil {
			t.Fatalf("CreateBooking %d failed: %v", i, err)
		}
		ids = append(ids, booking.ID)
	}

	listA, err := svc.ListBookings(context.Background(), userA)
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(listA) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(listA))
	}
	if listA[0].ID != ids[1] || listA[1].ID != ids[0] {
		t.Fatalf("bookings should list newest first: %v vs created %v", []string{listA[0].ID, listA[1].ID}, ids)
	}

	listB, err := svc.ListBookings(context.Background(), userB)
	if err != nil {
		t.Fatalf("ListBookings for other user failed: %v", err)
	}
	if len(listB) != 0 {
		t.Fatalf("bookings must be scoped per user, got %d", len(listB))
	}
}

func TestListBookingsRejectsBadUserID(t *testing.T) {
	svc := NewBookingService(repositories.NewMemoryBookingRepository(), newTestStore())

	if _, err := svc.ListBookings(context.Background(), "not-a-uuid"); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
