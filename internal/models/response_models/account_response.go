package response_models

type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type BookingResponse struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	Destination string        `json:"destination"`
	DateRange   string        `json:"dateRange"`
	TotalCost   float64       `json:"totalCost"`
	Status      string        `json:"status"` // confirmed | pending | cancelled
	BookedAt    string        `json:"bookedAt"`
	Image       string        `json:"image"`
	Details     TripSelection `json:"details"`
}
