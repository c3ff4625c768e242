package llm

import (
	"context"
	"errors"
)

// ErrNoCandidates is returned when the provider answered but the response
// carries no generated text.
var ErrNoCandidates = errors.New("no candidates returned by model")

// TextGenerator is a minimal abstraction for text generation providers used by the domain.
// Generate returns the text of the first candidate.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
