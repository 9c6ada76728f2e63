// Package events publishes relay outcomes so that dashboards and the /api/ws stream can
// follow gateway traffic without touching the request path.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	GenerationCompleted Type = "generation.completed"
	GenerationFailed    Type = "generation.failed"
)

// Event describes one gateway call.
type Event struct {
	ID           uuid.UUID `json:"id"`
	Type         Type      `json:"type"`
	Mode         string    `json:"mode"`
	Model        string    `json:"model"`
	Kind         string    `json:"kind,omitempty"`
	LatencyMS    int64     `json:"latency_ms"`
	HistoryTurns int       `json:"history_turns,omitempty"`
	At           time.Time `json:"at"`
}

// Publisher delivers events. Implementations must not fail the caller: delivery problems
// are logged and dropped.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

// NopPublisher discards every event. Used when Redis is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}
