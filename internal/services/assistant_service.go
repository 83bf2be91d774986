package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"nomadtrip/internal/models/request_models"
	"nomadtrip/internal/models/response_models"
	mem "nomadtrip/pkg/memcache"
	"nomadtrip/pkg/utils"
)

const assistantApology = "I'm sorry, I couldn't process that request right now."

type AssistantServiceInterface interface {
	SendMessage(ctx context.Context, sessionID, message string) (*response_models.ChatMessage, error)
	ApplySuggestion(sessionID string, req request_models.ApplySuggestionRequest) (*response_models.SessionState, error)
}

type AssistantService struct {
	completion utils.CompletionClientInterface
	sessions   mem.PlanSessionStore
}

func NewAssistantService(completion utils.CompletionClientInterface, sessions mem.PlanSessionStore) AssistantServiceInterface {
	return &AssistantService{completion: completion, sessions: sessions}
}

// SendMessage runs one assistant turn. The completion call happens on a
// snapshot, outside the session lock, and any model failure degrades to a
// plain apology so the chat never surfaces a 5xx.
func (s *AssistantService) SendMessage(ctx context.Context, sessionID, message string) (*response_models.ChatMessage, error) {
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

	reply := s.complete(ctx, buildAssistantPrompt(req, selection, message), req.Destination)

	err = s.sessions.Update(sessionID, func(session *mem.PlanSession) error {
		session.Messages = append(session.Messages,
			response_models.ChatMessage{Role: "user", Text: message},
			*reply)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *AssistantService) complete(ctx context.Context, prompt, destination string) *response_models.ChatMessage {
	raw, err := s.completion.CompleteText(ctx, prompt)
	if err != nil {
		log.Printf("Assistant completion failed: %v", err)
		return &response_models.ChatMessage{Role: "ai", Text: assistantApology}
	}

	reply, err := parseAssistantReply(raw)
	if err != nil {
		log.Printf("Assistant parse failure: %v", err)
		return &response_models.ChatMessage{Role: "ai", Text: assistantApology}
	}

	if item := reply.SuggestedItem; item != nil {
		switch item.Type {
		case response_models.SuggestionHotel:
			if item.Hotel != nil {
				item.Hotel.ImageURL = utils.ImagePromptURL(item.Hotel.Name+" "+destination, utils.RandomImageSeed())
			}
		case response_models.SuggestionActivity:
			if item.Activity != nil {
				item.Activity.ImageURL = utils.ImagePromptURL(item.Activity.Name+" "+destination, utils.RandomImageSeed())
			}
		}
	}
	return reply
}

// ApplySuggestion commits an assistant-proposed item to the selection.
// Flights and hotels replace the current pick; activities are added once.
func (s *AssistantService) ApplySuggestion(sessionID string, req request_models.ApplySuggestionRequest) (*response_models.SessionState, error) {
	var state *response_models.SessionState
	err := s.sessions.Update(sessionID, func(session *mem.PlanSession) error {
		var confirmed string
		switch req.Type {
		case response_models.SuggestionFlight:
			var flight response_models.Flight
			if err := json.Unmarshal(req.Item, &flight); err != nil {
				return fmt.Errorf("%w: malformed flight item", utils.ErrInvalidInput)
			}
			session.Selection.SelectedFlight = &flight
			confirmed = flight.Airline
		case response_models.SuggestionHotel:
			var hotel response_models.Hotel
			if err := json.Unmarshal(req.Item, &hotel); err != nil {
				return fmt.Errorf("%w: malformed hotel item", utils.ErrInvalidInput)
			}
			session.Selection.SelectedHotel = &hotel
			confirmed = hotel.Name
		case response_models.SuggestionActivity:
			var activity response_models.Activity
			if err := json.Unmarshal(req.Item, &activity); err != nil {
				return fmt.Errorf("%w: malformed activity item", utils.ErrInvalidInput)
			}
			if !session.Selection.HasActivity(activity.ID) {
				session.Selection.SelectedActivities = append(session.Selection.SelectedActivities, activity)
			}
			confirmed = activity.Name
		default:
			return fmt.Errorf("%w: unknown suggestion type %q", utils.ErrInvalidInput, req.Type)
		}

		session.Messages = append(session.Messages, response_models.ChatMessage{
			Role: "ai",
			Text: fmt.Sprintf("Updated your %s to %s!", req.Type, confirmed),
		})
		state = snapshotState(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func buildAssistantPrompt(req request_models.TripPlanRequest, selection response_models.TripSelection, message string) string {
	var prompt strings.Builder

	prompt.WriteString("You are a travel assistant for 'NomadTrip AI' helping adjust a planned trip.\n\n")
	prompt.WriteString(fmt.Sprintf("Trip: %s to %s, %d days, %s vibe, budget $%.0f per person.\n\n",
		req.OriginCity, req.Destination, req.Duration, req.TripType, req.Budget))

	prompt.WriteString("Current selection:\n")
	if f := selection.SelectedFlight; f != nil {
		prompt.WriteString(fmt.Sprintf("- Flight: %s, $%.0f\n", f.Airline, f.Price))
	} else {
		prompt.WriteString("- Flight: none yet\n")
	}
	if h := selection.SelectedHotel; h != nil {
		prompt.WriteString(fmt.Sprintf("- Hotel: %s, $%.0f total\n", h.Name, h.TotalPrice))
	} else {
		prompt.WriteString("- Hotel: none yet\n")
	}
	if len(selection.SelectedActivities) > 0 {
		names := make([]string, 0, len(selection.SelectedActivities))
		for _, a := range selection.SelectedActivities {
			names = append(names, a.Name)
		}
		prompt.WriteString("- Activities: " + strings.Join(names, ", ") + "\n")
	} else {
		prompt.WriteString("- Activities: none yet\n")
	}

	prompt.WriteString("\nUser message: " + message + "\n\n")

	prompt.WriteString("Respond with strictly valid JSON, no extra text:\n")
	prompt.WriteString(`{
  "text": "your conversational reply",
  "itemType": "flight" | "hotel" | "activity" | null,
  "suggestedItem": { ...the full item object matching the trip option shape... } | null
}`)
	prompt.WriteString("\nOnly include suggestedItem when you are proposing a single concrete alternative. ")
	prompt.WriteString("Its fields must match the shape used for that item type (flight, hotel, or activity).")

	return prompt.String()
}

func parseAssistantReply(raw string) (*response_models.ChatMessage, error) {
	jsonStr, err := utils.ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Text          string          `json:"text"`
		ItemType      string          `json:"itemType"`
		SuggestedItem json.RawMessage `json:"suggestedItem"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %v", err)
	}
	if parsed.Text == "" {
		return nil, fmt.Errorf("response missing text")
	}

	reply := &response_models.ChatMessage{Role: "ai", Text: parsed.Text}

	if len(parsed.SuggestedItem) == 0 || string(parsed.SuggestedItem) == "null" {
		return reply, nil
	}

	item := &response_models.SuggestedItem{Type: parsed.ItemType}
	switch parsed.ItemType {
	case response_models.SuggestionFlight:
		var flight response_models.Flight
		if err := json.Unmarshal(parsed.SuggestedItem, &flight); err != nil {
			return nil, fmt.Errorf("malformed suggested flight: %v", err)
		}
		item.Flight = &flight
	case response_models.SuggestionHotel:
		var hotel response_models.Hotel
		if err := json.Unmarshal(parsed.SuggestedItem, &hotel); err != nil {
			return nil, fmt.Errorf("malformed suggested hotel: %v", err)
		}
		item.Hotel = &hotel
	case response_models.SuggestionActivity:
		var activity response_models.Activity
		if err := json.Unmarshal(parsed.SuggestedItem, &activity); err != nil {
			return nil, fmt.Errorf("malformed suggested activity: %v", err)
		}
		item.Activity = &activity
	default:
		// An item with no usable type is dropped, the text still stands.
		return reply, nil
	}

	reply.SuggestedItem = item
	return reply, nil
}
