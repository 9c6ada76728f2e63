package gateway

import (
	"context"
	"slices"
	"sync"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one message of the accumulated conversation.
type Turn struct {
	Role string
	Text string
}

// Session is the conversation history behind the chat endpoint. A single Session is shared
// by every chat caller; it is not keyed by caller. Exchanges run one at a time so the
// history always alternates user/model turns.
type Session struct {
	// slot is a one-token semaphore held for a whole exchange; waiting on it honours ctx.
	slot chan struct{}

	mu    sync.Mutex
	turns []Turn
}

func NewSession() *Session {
	s := &Session{slot: make(chan struct{}, 1)}
	s.slot <- struct{}{}
	return s
}

// History returns a copy of the accumulated turns.
func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.turns)
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// acquire blocks until no other exchange is running or ctx is done.
func (s *Session) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-s.slot:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) release() {
	s.slot <- struct{}{}
}

// exchange hands the current history to send and, on success only, records the prompt and
// the reply. It returns the history length after the exchange.
func (s *Session) exchange(ctx context.Context, prompt string, send func(history []Turn) (string, error)) (string, int, error) {
	if err := s.acquire(ctx); err != nil {
		return "", s.Len(), err
	}
	defer s.release()

	reply, err := send(s.History())
	if err != nil {
		return "", s.Len(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns,
		Turn{Role: RoleUser, Text: prompt},
		Turn{Role: RoleModel, Text: reply},
	)
	return reply, len(s.turns), nil
}
