package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
)

// Kind tags the underlying cause of a gateway failure. It exists for logs and events only;
// every kind is reported to callers the same way.
type Kind string

const (
	KindTimeout  Kind = "timeout"
	KindCanceled Kind = "canceled"
	KindBlocked  Kind = "blocked"
	KindQuota    Kind = "quota"
	KindAuth     Kind = "auth"
	KindEmpty    Kind = "empty"
	KindUpstream Kind = "upstream"
)

// ErrEmptyResponse is returned when the model answers without any text part.
var ErrEmptyResponse = errors.New("model returned no text")

// Error wraps any failure raised while calling the model.
type Error struct {
	Kind  Kind
	Mode  Mode
	Model string
	Cause error
}

func (e *Error) Error() string { return e.Cause.Error() }

func (e *Error) Unwrap() error { return e.Cause }

func newError(cause error, mode Mode, model string) *Error {
	return &Error{Kind: classify(cause), Mode: mode, Model: model, Cause: cause}
}

func classify(err error) Kind {
	var blocked *genai.BlockedError
	var apiErr *googleapi.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, ErrEmptyResponse):
		return KindEmpty
	case errors.As(err, &blocked):
		return KindBlocked
	case errors.As(err, &apiErr):
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return KindQuota
		case http.StatusUnauthorized, http.StatusForbidden:
			return KindAuth
		}
	}
	return KindUpstream
}
