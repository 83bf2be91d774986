package services

import (
	"context"
	"errors"
	"testing"

	mem "nomadtrip/pkg/memcache"
	"nomadtrip/pkg/utils"
)

func seedSession(t *testing.T, store mem.PlanSessionStore) string {
	t.Helper()

	completion := &stubCompletion{response: generationJSON}
	svc := NewTripOptionsService(completion, &stubSearch{}, store)

	resp, err := svc.GenerateOptions(context.Background(), validPlanRequest())
	if err != nil {
		t.Fatalf("seeding session failed: %v", err)
	}
	return resp.SessionID
}

func TestChooseFlightKeepsStage(t *testing.T) {
	store := newTestStore()
	sessionID := seedSession(t, store)
	svc := NewTripBuilderService(store)

	state, err := svc.ChooseFlight(sessionID, "f2")
	if err != nil {
		t.Fatalf("ChooseFlight failed: %v", err)
	}

	if state.Stage != string(mem.StageFlight) {
		t.Errorf("selecting must not advance the stage, got %s", state.Stage)
	}
	if state.Selection.SelectedFlight == nil || state.Selection.SelectedFlight.ID != "f2" {
		t.Errorf("flight not selected: %+v", state.Selection.SelectedFlight)
	}
	if state.TotalCost != 420 {
		t.Errorf("total cost should be the flight price, got %.0f", state.TotalCost)
	}
}

func TestChooseFlightUnknownOption(t *testing.T) {
	store := newTestStore()
	sessionID := seedSession(t, store)
	svc := NewTripBuilderService(store)

	if _, err := svc.ChooseFlight(sessionID, "f99"); !errors.Is(err, utils.ErrOptionNotFound) {
		t.Fatalf("expected ErrOptionNotFound, got %v", err)
	}
}

func TestChooseFlightUnknownSession(t *testing.T) {
	svc := NewTripBuilderService(newTestStore())

	if _, err := svc.ChooseFlight("nope", "f1"); !errors.Is(err, utils.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAdvanceRequiresSelection(t *testing.T) {
	store := newTestStore()
	sessionID := seedSession(t, store)
	svc := NewTripBuilderService(store)

	if _, err := svc.Advance(sessionID); !errors.Is(err, utils.ErrStageIncomplete) {
		t.Fatalf("advancing without a flight should fail, got %v", err)
	}

	if _, err := svc.ChooseFlight(sessionID, "f1"); err != nil {
		t.Fatalf("ChooseFlight failed: %v", err)
	}
	state, err := svc.Advance(sessionID)
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if state.Stage != string(mem.StageHotel) {
		t.Fatalf("expected hotel stage, got %s", state.Stage)
	}

	if _, err := svc.Advance(sessionID); !errors.Is(err, utils.ErrStageIncomplete) {
		t.Fatalf("advancing without a hotel should fail, got %v", err)
	}
}

func TestAdvanceThroughAllStages(t *testing.T) {
	store := newTestStore()
	sessionID := seedSession(t, store)
	svc := NewTripBuilderService(store)

	if _, err := svc.ChooseFlight(sessionID, "f1"); err != nil {
		t.Fatalf("ChooseFlight failed: %v", err)
	}
	if _, err := svc.Advance(sessionID); err != nil {
		t.Fatalf("Advance to hotel failed: %v", err)
	}
	if _, err := svc.ChooseHotel(sessionID, "h2"); err != nil {
		t.Fatalf("ChooseHotel failed: %v", err)
	}
	if _, err := svc.Advance(sessionID); err != nil {
		t.Fatalf("Advance to activity failed: %v", err)
	}

	// Zero activities is a valid trip, the activity stage never blocks.
	state, err := svc.Advance(sessionID)
	if err != nil {
		t.Fatalf("Advance to done failed: %v", err)
	}
	if state.Stage != string(mem.StageDone) {
		t.Fatalf("expected done stage, got %s", state.Stage)
	}

	if _, err := svc.Advance(sessionID); !errors.Is(err, utils.ErrSelectionFinalized) {
		t.Fatalf("advancing past done should fail, got %v", err)
	}
}

func TestToggleActivityIsItsOwnInverse(t *testing.T) {
	store := newTestStore()
	sessionID := seedSession(t, store)
	svc := NewTripBuilderService(store)

	state, err := svc.ToggleActivity(sessionID, "a3")
	if err != nil {
		t.Fatalf("ToggleActivity failed: %v", err)
	}
	if !state.Selection.HasActivity("a3") {
		t.Fatalf("activity should be in the basket after first toggle")
	}
	if state.TotalCost != 60 {
		t.Errorf("total cost should include the activity, got %.0f", state.TotalCost)
	}

	state, err = svc.ToggleActivity(sessionID, "a3")
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if state.Selection.HasActivity("a3") {
		t.Fatalf("activity should be removed after second toggle")
	}
	if state.TotalCost != 0 {
		t.Errorf("total cost should drop back, got %.0f", state.TotalCost)
	}
}

func TestToggleActivityKeepsInsertionOrder(t *testing.T) {
	store := newTestStore()
	sessionID := seedSession(t, store)
	svc := NewTripBuilderService(store)

	for _, id := range []string{"a2", "a5", "a1"} {
		if _, err := svc.ToggleActivity(sessionID, id); err != nil {
			t.Fatalf("ToggleActivity(%s) failed: %v", id, err)
		}
	}
	state, err := svc.ToggleActivity(sessionID, "a5")
	if err != nil {
		t.Fatalf("removing middle activity failed: %v", err)
	}

	got := state.Selection.SelectedActivities
	if len(got) != 2 || got[0].ID != "a2" || got[1].ID != "a1" {
		t.Fatalf("unexpected basket after removal: %+v", got)
	}
}

func TestBackwardSelectionChangePreservesLaterPicks(t *testing.T) {
	store := newTestStore()
	sessionID := seedSession(t, store)
	svc := NewTripBuilderService(store)

	if _, err := svc.ChooseFlight(sessionID, "f1"); err != nil {
		t.Fatalf("ChooseFlight failed: %v", err)
	}
	if _, err := svc.Advance(sessionID); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if _, err := svc.ChooseHotel(sessionID, "h1"); err != nil {
		t.Fatalf("ChooseHotel failed: %v", err)
	}

	// Swapping the flight from a later stage keeps the hotel pick.
	state, err := svc.ChooseFlight(sessionID, "f3")
	if err != nil {
		t.Fatalf("flight change failed: %v", err)
	}
	if state.Selection.SelectedHotel == nil || state.Selection.SelectedHotel.ID != "h1" {
		t.Fatalf("hotel pick was lost on flight change: %+v", state.Selection.SelectedHotel)
	}
	if state.Stage != string(mem.StageHotel) {
		t.Fatalf("stage should stay at hotel, got %s", state.Stage)
	}
	if state.TotalCost != 780+200 {
		t.Errorf("total cost should track the new flight, got %.0f", state.TotalCost)
	}
}

func TestGetStateSnapshotIsDetached(t *testing.T) {
	store := newTestStore()
	sessionID := seedSession(t, store)
	svc := NewTripBuilderService(store)

	if _, err := svc.ChooseFlight(sessionID, "f1"); err != nil {
		t.Fatalf("ChooseFlight failed: %v", err)
	}
	state, err := svc.GetState(sessionID)
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}

	state.Selection.SelectedFlight.Price = 1

	fresh, err := svc.GetState(sessionID)
	if err != nil {
		t.Fatalf("second GetState failed: %v", err)
	}
	if fresh.Selection.SelectedFlight.Price != 180 {
		t.Fatalf("mutating a snapshot must not touch the session, got %.0f", fresh.Selection.SelectedFlight.Price)
	}
}
