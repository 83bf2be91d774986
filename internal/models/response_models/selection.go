package response_models

const (
	SuggestionFlight   = "flight"
	SuggestionHotel    = "hotel"
	SuggestionActivity = "activity"
)

// TripSelection is the user's basket: at most one flight, at most one hotel,
// a set of activities distinct by id. Insertion order of activities is kept
// for display.
type TripSelection struct {
	SelectedFlight     *Flight    `json:"selectedFlight"`
	SelectedHotel      *Hotel     `json:"selectedHotel"`
	SelectedActivities []Activity `json:"selectedActivities"`
}

// TotalCost recomputes the basket price from scratch, treating missing
// components as zero.
func (s TripSelection) TotalCost() float64 {
	var total float64
	if s.SelectedFlight != nil {
		total += s.SelectedFlight.Price
	}
	if s.SelectedHotel != nil {
		total += s.SelectedHotel.TotalPrice
	}
	for _, a := range s.SelectedActivities {
		total += a.Price
	}
	return total
}

// HasActivity reports whether an activity with the given id is in the basket.
func (s TripSelection) HasActivity(id string) bool {
	for _, a := range s.SelectedActivities {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so a stored selection cannot be affected by later
// mutation of the live one.
func (s TripSelection) Clone() TripSelection {
	out := TripSelection{}
	if s.SelectedFlight != nil {
		f := *s.SelectedFlight
		out.SelectedFlight = &f
	}
	if s.SelectedHotel != nil {
		h := *s.SelectedHotel
		out.SelectedHotel = &h
	}
	if len(s.SelectedActivities) > 0 {
		out.SelectedActivities = make([]Activity, len(s.SelectedActivities))
		copy(out.SelectedActivities, s.SelectedActivities)
	}
	return out
}

type SuggestedItem struct {
	Type     string    `json:"type"` // flight | hotel | activity
	Flight   *Flight   `json:"flight,omitempty"`
	Hotel    *Hotel    `json:"hotel,omitempty"`
	Activity *Activity `json:"activity,omitempty"`
}

type ChatMessage struct {
	Role          string         `json:"role"` // user | ai
	Text          string         `json:"text"`
	SuggestedItem *SuggestedItem `json:"suggestedItem,omitempty"`
}
