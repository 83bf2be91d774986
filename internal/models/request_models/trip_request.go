package request_models

import "nomadtrip/pkg/utils"

type Travelers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
	Pets     int `json:"pets"`
}

type ContactInfo struct {
	Name          string `json:"name"`
	ContactMethod string `json:"contact_method"`
}

// TripPlanRequest carries the traveler preferences collected by the wizard.
type TripPlanRequest struct {
	OriginCountry      string      `json:"origin_country"`
	OriginCity         string      `json:"origin_city" binding:"required"`
	Destination        string      `json:"destination" binding:"required"`
	Dates              string      `json:"dates" binding:"required"` // YYYY-MM-DD
	Duration           int         `json:"duration" binding:"required,min=1"`
	Flexibility        int         `json:"flexibility"`
	Budget             float64     `json:"budget" binding:"required,min=1"`
	Travelers          Travelers   `json:"travelers"`
	AccommodationLevel string      `json:"accommodation_level" binding:"required,oneof=budget standard premium"`
	TripType           string      `json:"trip_type" binding:"required,oneof=beach excursion shopping active family"`
	Contact            ContactInfo `json:"contact"`
}

// Validate enforces the traveler-count invariants that binding tags cannot
// express: at least one adult, no negative counts.
func (r *TripPlanRequest) Validate() error {
	if r.OriginCity == "" || r.Destination == "" {
		return utils.ErrInvalidInput
	}
	if r.Duration < 1 {
		return utils.ErrInvalidInput
	}
	if r.Travelers.Adults < 1 {
		return utils.ErrInvalidInput
	}
	if r.Travelers.Children < 0 || r.Travelers.Infants < 0 || r.Travelers.Pets < 0 {
		return utils.ErrInvalidInput
	}
	return nil
}
