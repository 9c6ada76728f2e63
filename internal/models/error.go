package models

// ErrorEnvelope is the body of every non-2xx response.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
