package response_models

type Flight struct {
	ID            string  `json:"id"`
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flightNumber"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Price         float64 `json:"price"`
	Duration      string  `json:"duration"`
	LogoURL       string  `json:"logoUrl,omitempty"`
	Class         string  `json:"class"` // Economy | Business | First
}

type Hotel struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Stars         int     `json:"stars"`
	Rating        float64 `json:"rating"`
	Address       string  `json:"address"`
	PricePerNight float64 `json:"pricePerNight"`
	TotalPrice    float64 `json:"totalPrice"`
	ImageURL      string  `json:"imageUrl"`
	Description   string  `json:"description"`
	Type          string  `json:"type"` // Budget | Standard | Luxury
}

type Activity struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Included    bool    `json:"included,omitempty"`
}

type VisaInfo struct {
	Status      string `json:"status"` // Not Required | E-Visa | Visa Required
	Description string `json:"description"`
	ActionURL   string `json:"actionUrl,omitempty"`
}

// TripOptions is the generated bundle for one trip request. It is built once
// per generation call and never mutated afterwards.
type TripOptions struct {
	FlightOptions []Flight   `json:"flightOptions"`
	HotelOptions  []Hotel    `json:"hotelOptions"`
	Activities    []Activity `json:"activities"`
	Visa          VisaInfo   `json:"visa"`
}
