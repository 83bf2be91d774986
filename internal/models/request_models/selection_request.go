package request_models

import "encoding/json"

type ChooseFlightRequest struct {
	FlightID string `json:"flight_id" binding:"required"`
}

type ChooseHotelRequest struct {
	HotelID string `json:"hotel_id" binding:"required"`
}

type ToggleActivityRequest struct {
	ActivityID string `json:"activity_id" binding:"required"`
}

type AssistantMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// ApplySuggestionRequest carries a previously suggested item back for
// acceptance. Item is decoded by the service according to Type.
type ApplySuggestionRequest struct {
	Type string          `json:"type" binding:"required,oneof=flight hotel activity"`
	Item json.RawMessage `json:"item" binding:"required"`
}

type CreateBookingRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
