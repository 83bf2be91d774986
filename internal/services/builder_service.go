package services

import (
	"nomadtrip/internal/models/response_models"
	mem "nomadtrip/pkg/memcache"
	"nomadtrip/pkg/utils"
)

type TripBuilderServiceInterface interface {
	ChooseFlight(sessionID, flightID string) (*response_models.SessionState, error)
	ChooseHotel(sessionID, hotelID string) (*response_models.SessionState, error)
	ToggleActivity(sessionID, activityID string) (*response_models.SessionState, error)
	Advance(sessionID string) (*response_models.SessionState, error)
	GetState(sessionID string) (*response_models.SessionState, error)
}

type TripBuilderService struct {
	sessions mem.PlanSessionStore
}

func NewTripBuilderService(sessions mem.PlanSessionStore) TripBuilderServiceInterface {
	return &TripBuilderService{sessions: sessions}
}

// ChooseFlight sets the flight pick without touching the stage pointer.
// Changing a selection from a later stage never discards downstream picks.
func (s *TripBuilderService) ChooseFlight(sessionID, flightID string) (*response_models.SessionState, error) {
	return s.mutate(sessionID, func(session *mem.PlanSession) error {
		for _, f := range session.Options.FlightOptions {
			if f.ID == flightID {
				chosen := f
				session.Selection.SelectedFlight = &chosen
				return nil
			}
		}
		return utils.ErrOptionNotFound
	})
}

func (s *TripBuilderService) ChooseHotel(sessionID, hotelID string) (*response_models.SessionState, error) {
	return s.mutate(sessionID, func(session *mem.PlanSession) error {
		for _, h := range session.Options.HotelOptions {
			if h.ID == hotelID {
				chosen := h
				session.Selection.SelectedHotel = &chosen
				return nil
			}
		}
		return utils.ErrOptionNotFound
	})
}

// ToggleActivity adds the activity when absent and removes it when present,
// so applying it twice is a no-op.
func (s *TripBuilderService) ToggleActivity(sessionID, activityID string) (*response_models.SessionState, error) {
	return s.mutate(sessionID, func(session *mem.PlanSession) error {
		for i, selected := range session.Selection.SelectedActivities {
			if selected.ID == activityID {
				session.Selection.SelectedActivities = append(
					session.Selection.SelectedActivities[:i],
					session.Selection.SelectedActivities[i+1:]...)
				return nil
			}
		}
		for _, a := range session.Options.Activities {
			if a.ID == activityID {
				session.Selection.SelectedActivities = append(session.Selection.SelectedActivities, a)
				return nil
			}
		}
		return utils.ErrOptionNotFound
	})
}

// Advance moves the session one stage forward. The flight and hotel stages
// require a selection before they pass; the activity stage does not, since a
// trip with zero excursions is a valid trip.
func (s *TripBuilderService) Advance(sessionID string) (*response_models.SessionState, error) {
	return s.mutate(sessionID, func(session *mem.PlanSession) error {
		switch session.Stage {
		case mem.StageFlight:
			if session.Selection.SelectedFlight == nil {
				return utils.ErrStageIncomplete
			}
			session.Stage = mem.StageHotel
		case mem.StageHotel:
			if session.Selection.SelectedHotel == nil {
				return utils.ErrStageIncomplete
			}
			session.Stage = mem.StageActivity
		case mem.StageActivity:
			session.Stage = mem.StageDone
		default:
			return utils.ErrSelectionFinalized
		}
		return nil
	})
}

func (s *TripBuilderService) GetState(sessionID string) (*response_models.SessionState, error) {
	var state *response_models.SessionState
	err := s.sessions.View(sessionID, func(session *mem.PlanSession) error {
		state = snapshotState(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *TripBuilderService) mutate(sessionID string, fn func(*mem.PlanSession) error) (*response_models.SessionState, error) {
	var state *response_models.SessionState
	err := s.sessions.Update(sessionID, func(session *mem.PlanSession) error {
		if err := fn(session); err != nil {
			return err
		}
		state = snapshotState(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func snapshotState(session *mem.PlanSession) *response_models.SessionState {
	selection := session.Selection.Clone()
	return &response_models.SessionState{
		SessionID: session.ID,
		Stage:     string(session.Stage),
		Selection: selection,
		TotalCost: selection.TotalCost(),
	}
}
