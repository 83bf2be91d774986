package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"nomadtrip/internal/models/request_models"
	"nomadtrip/internal/models/response_models"
	mem "nomadtrip/pkg/memcache"
	"nomadtrip/pkg/utils"
)

type TripOptionsServiceInterface interface {
	GenerateOptions(ctx context.Context, req request_models.TripPlanRequest) (*response_models.GenerateResponse, error)
}

type TripOptionsService struct {
	completion utils.CompletionClientInterface
	search     utils.TravelSearchInterface
	sessions   mem.PlanSessionStore
}

func NewTripOptionsService(
	completion utils.CompletionClientInterface,
	search utils.TravelSearchInterface,
	sessions mem.PlanSessionStore,
) TripOptionsServiceInterface {
	return &TripOptionsService{
		completion: completion,
		search:     search,
		sessions:   sessions,
	}
}

// GenerateOptions runs one completion call for the request and opens a fresh
// planning session around the parsed option set. There is no retry and no
// partial result: the caller either gets the full bundle or a generation
// error and stays on the form.
func (s *TripOptionsService) GenerateOptions(ctx context.Context, req request_models.TripPlanRequest) (*response_models.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()

	// Aggregator enrichment is best effort. Empty groundings just mean the
	// completion service fabricates plausible candidates.
	extFlights, err := s.search.SearchFlights(ctx, req.OriginCity, req.Destination, req.Dates, req.Duration, req.Travelers.Adults)
	if err != nil {
		log.Printf("Flight aggregator lookup failed: %v", err)
	}
	extHotels, err := s.search.SearchHotels(ctx, req.Destination, req.Dates, req.Duration, req.AccommodationLevel, req.Travelers.Adults)
	if err != nil {
		log.Printf("Hotel aggregator lookup failed: %v", err)
	}

	prompt := buildGenerationPrompt(req, extFlights, extHotels)

	raw, err := s.completion.CompleteText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	options, err := parseTripOptions(raw)
	if err != nil {
		log.Printf("Generation parse failure: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	rewriteOptionImages(options, req.Destination)

	log.Printf("Generated %d flights, %d hotels, %d activities in %s",
		len(options.FlightOptions), len(options.HotelOptions), len(options.Activities), time.Since(startTime))

	session := &mem.PlanSession{
		ID:        uuid.New().String(),
		Request:   req,
		Options:   *options,
		Stage:     mem.StageFlight,
		Messages: []response_models.ChatMessage{
			{Role: "ai", Text: "I've assembled your trip! You can ask me to find alternative flights, cheaper hotels, or different activities."},
		},
		CreatedAt: time.Now(),
	}
	s.sessions.Put(session)

	return &response_models.GenerateResponse{
		SessionID: session.ID,
		Options:   *options,
	}, nil
}

func buildGenerationPrompt(req request_models.TripPlanRequest, extFlights []response_models.Flight, extHotels []response_models.Hotel) string {
	var prompt strings.Builder

	prompt.WriteString("You are an expert travel agent for 'NomadTrip AI'.\n\n")
	prompt.WriteString("User Request:\n")
	prompt.WriteString(fmt.Sprintf("From %s to %s for %d days starting %s.\n",
		req.OriginCity, req.Destination, req.Duration, req.Dates))
	prompt.WriteString(fmt.Sprintf("Budget: $%.0f per person. Travelers: %d adults, %d children.\n",
		req.Budget, req.Travelers.Adults, req.Travelers.Children))
	prompt.WriteString(fmt.Sprintf("Vibe: %s. Accommodation level: %s.\n\n", req.TripType, req.AccommodationLevel))

	if len(extFlights) > 0 {
		prompt.WriteString("Real flight data to ground your options:\n")
		for _, f := range extFlights {
			prompt.WriteString(fmt.Sprintf("- %s %s, %s-%s, %s, $%.0f\n",
				f.Airline, f.FlightNumber, f.DepartureTime, f.ArrivalTime, f.Duration, f.Price))
		}
		prompt.WriteString("\n")
	}
	if len(extHotels) > 0 {
		prompt.WriteString("Real hotel data to ground your options:\n")
		for _, h := range extHotels {
			prompt.WriteString(fmt.Sprintf("- %s, %d stars, rated %.1f, $%.0f/night ($%.0f total)\n",
				h.Name, h.Stars, h.Rating, h.PricePerNight, h.TotalPrice))
		}
		prompt.WriteString("\n")
	}

	prompt.WriteString("Task:\n")
	prompt.WriteString("1. Generate exactly 3 distinct FLIGHT options (Economy, Business/Fastest, Premium).\n")
	prompt.WriteString("2. Generate exactly 3 distinct HOTEL options (Budget-friendly, Standard/Central, Luxury).\n")
	prompt.WriteString("3. Generate exactly 5 distinct ACTIVITIES suitable for the trip vibe.\n")
	prompt.WriteString("4. Provide visa information for the destination.\n\n")

	prompt.WriteString("Instructions:\n")
	prompt.WriteString("- Use realistic prices consistent with the budget.\n")
	prompt.WriteString("- For imageUrl fields, provide a short descriptive image prompt (e.g. \"Modern hotel room in Tokyo\").\n")
	prompt.WriteString("- Return strictly valid JSON, no extra text.\n\n")

	prompt.WriteString("JSON Structure:\n")
	prompt.WriteString(`{
  "flightOptions": [ { "id": "f1", "airline": "...", "flightNumber": "...", "departureTime": "HH:MM", "arrivalTime": "HH:MM", "duration": "...", "price": 0, "class": "Economy" } ],
  "hotelOptions": [ { "id": "h1", "name": "...", "stars": 4, "rating": 8.5, "address": "...", "pricePerNight": 0, "totalPrice": 0, "description": "...", "type": "Standard", "imageUrl": "..." } ],
  "activities": [ { "id": "a1", "name": "...", "description": "...", "price": 0, "duration": "...", "imageUrl": "..." } ],
  "visa": { "status": "Not Required", "description": "..." }
}`)

	return prompt.String()
}

// parseTripOptions is the dedicated parsing stage for generation responses:
// strip fences, cut the outermost object span, parse, check required keys.
func parseTripOptions(raw string) (*response_models.TripOptions, error) {
	jsonStr, err := utils.ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &keys); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %v", err)
	}
	for _, required := range []string{"flightOptions", "hotelOptions", "activities", "visa"} {
		if _, ok := keys[required]; !ok {
			return nil, fmt.Errorf("response missing required key %q", required)
		}
	}

	var options response_models.TripOptions
	if err := json.Unmarshal([]byte(jsonStr), &options); err != nil {
		return nil, fmt.Errorf("response does not match the option shape: %v", err)
	}
	return &options, nil
}

// rewriteOptionImages replaces every hotel and activity image reference with
// a deterministic image-by-prompt URL. The positional seed keeps imagery
// distinct without a second generation round trip.
func rewriteOptionImages(options *response_models.TripOptions, destination string) {
	for i := range options.HotelOptions {
		h := &options.HotelOptions[i]
		prompt := h.ImageURL
		if prompt == "" {
			prompt = h.Name + " hotel " + destination
		}
		h.ImageURL = utils.ImagePromptURL(prompt, i)
	}
	for i := range options.Activities {
		a := &options.Activities[i]
		prompt := a.ImageURL
		if prompt == "" {
			prompt = a.Name + " " + destination
		}
		a.ImageURL = utils.ImagePromptURL(prompt, 100+i)
	}
}
