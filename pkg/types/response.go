package types

// APIError is the wire shape every failing response carries. Details is only
// populated for validation failures (a field -> message map).
type APIError struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Health is the body of the liveness endpoints.
type Health struct {
	Status string `json:"status"`
}
