package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts text-generation providers for resume scoring.
type Client interface {
	ScoreResume(ctx context.Context, input ScoreInput) (json.RawMessage, error)
}

// ScoreInput carries the extracted candidate fields and the job description
// embedded into the scoring prompt.
type ScoreInput struct {
	JobDescription string
	Name           string
	Skills         []string
	Education      string
	Experience     string
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// ScoreResume returns ErrNotImplemented.
func (PlaceholderClient) ScoreResume(ctx context.Context, input ScoreInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotImplemented
}
