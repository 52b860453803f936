package llmclient

import (
	"context"
	"encoding/json"
	"errors"

	genai "google.golang.org/genai"
)

var (
	// ErrEmptyResponse means the model returned no usable candidate.
	ErrEmptyResponse = errors.New("llmclient: empty response from model")
)

// Request is one fully built model invocation. Contents carry the
// conversation turn-by-turn; Schema, when set, asks the model for JSON
// matching that shape; Thinking selects the deeper model variant with a
// larger computation budget hint.
type Request struct {
	Contents          []*genai.Content
	SystemInstruction string
	Schema            *genai.Schema
	Thinking          bool
}

// Client is the model invocation boundary. Implementations focus on
// the API call itself; cross-cutting concerns (retries, logging,
// caching) are applied via llm.Middleware.
type Client interface {
	Name() string
	// GenerateText performs one call and returns the response text.
	GenerateText(ctx context.Context, req Request) (string, error)
	// GenerateJSON performs one call constrained by req.Schema and
	// returns the raw JSON document.
	GenerateJSON(ctx context.Context, req Request) (json.RawMessage, error)
	Close() error
}

// PermanentError marks an error that will not resolve with retries.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}
