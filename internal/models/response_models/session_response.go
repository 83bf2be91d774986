package response_models

type GenerateResponse struct {
	SessionID string      `json:"session_id"`
	Options   TripOptions `json:"options"`
}

type SessionState struct {
	SessionID string        `json:"session_id"`
	Stage     string        `json:"stage"` // flight | hotel | activity | done
	Selection TripSelection `json:"selection"`
	TotalCost float64       `json:"total_cost"`
}

// CitySuggestions echoes the caller's seq token unchanged, zero included, so
// a client firing overlapping lookups can match answers to queries.
type CitySuggestions struct {
	Seq    int      `json:"seq"`
	Query  string   `json:"query"`
	Cities []string `json:"cities"`
}
