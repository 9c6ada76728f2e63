package models

import "encoding/json"

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
	// Context is the caller's own history. It is echoed back untouched and never merged
	// into the server-side session.
	Context []json.RawMessage `json:"context"`
}

// TutorRequest is the payload sent to the tutor endpoint.
type TutorRequest struct {
	Message string `json:"message"`
}

// ChatContext is the request-scoped context echoed back by the chat endpoint.
type ChatContext struct {
	SystemPrompt string            `json:"system_prompt"`
	UserHistory  []json.RawMessage `json:"user_history"`
	CurrentModel string            `json:"current_model"`
}

type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role"`
}

type Candidate struct {
	Content Content `json:"content"`
}

// ResponseEnvelope mirrors the candidates shape of the Gemini REST API.
type ResponseEnvelope struct {
	Candidates []Candidate  `json:"candidates"`
	Context    *ChatContext `json:"context,omitempty"`
}

// NewResponseEnvelope wraps a single model reply.
func NewResponseEnvelope(text string) ResponseEnvelope {
	return ResponseEnvelope{
		Candidates: []Candidate{{
			Content: Content{
				Parts: []Part{{Text: text}},
				Role:  "model",
			},
		}},
	}
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string   `json:"status"`
	Version string   `json:"version"`
	Models  []string `json:"models"`
}
