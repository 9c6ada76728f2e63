// Package gateway sends prompts to the generative model in one of two modes: interactive,
// which replays the shared Session, and one-shot, which sends the prompt alone.
package gateway

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"virtuzen-backend/internal/events"
)

type Mode int

const (
	Interactive Mode = iota
	OneShot
)

func (m Mode) String() string {
	switch m {
	case Interactive:
		return "interactive"
	case OneShot:
		return "one-shot"
	default:
		return "unknown"
	}
}

var errNoSession = errors.New("interactive generation requires a session")

// Request is what a Backend receives for a single call.
type Request struct {
	Mode    Mode
	Config  GenerationConfig
	History []Turn
	Prompt  string
}

// Backend is the external generation capability.
type Backend interface {
	Generate(ctx context.Context, req Request) (string, error)
}

type Gateway struct {
	backend   Backend
	publisher events.Publisher
	debug     bool
}

func New(backend Backend, publisher events.Publisher, debug bool) *Gateway {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Gateway{backend: backend, publisher: publisher, debug: debug}
}

// Generate sends prompt to the model. In Interactive mode the exchange is recorded in
// session once the model replies; a failed call leaves session untouched. Any failure is
// returned as *Error.
func (g *Gateway) Generate(ctx context.Context, session *Session, prompt string, cfg GenerationConfig, mode Mode) (string, error) {
	start := time.Now()

	var (
		reply string
		turns int
		err   error
	)
	switch mode {
	case Interactive:
		if session == nil {
			err = errNoSession
			break
		}
		reply, turns, err = session.exchange(ctx, prompt, func(history []Turn) (string, error) {
			if g.debug {
				log.Printf("gateway: %s call model=%s prompt=%d chars history=%d turns", mode, cfg.Model, len(prompt), len(history))
			}
			return g.backend.Generate(ctx, Request{Mode: mode, Config: cfg, History: history, Prompt: prompt})
		})
	default:
		if g.debug {
			log.Printf("gateway: %s call model=%s prompt=%d chars", mode, cfg.Model, len(prompt))
		}
		reply, err = g.backend.Generate(ctx, Request{Mode: mode, Config: cfg, Prompt: prompt})
	}

	event := events.Event{
		ID:           uuid.New(),
		Type:         events.GenerationCompleted,
		Mode:         mode.String(),
		Model:        cfg.Model,
		LatencyMS:    time.Since(start).Milliseconds(),
		HistoryTurns: turns,
		At:           time.Now().UTC(),
	}

	if err != nil {
		gerr := newError(err, mode, cfg.Model)
		event.Type = events.GenerationFailed
		event.Kind = string(gerr.Kind)
		g.publisher.Publish(context.WithoutCancel(ctx), event)
		return "", gerr
	}

	g.publisher.Publish(context.WithoutCancel(ctx), event)
	return reply, nil
}
