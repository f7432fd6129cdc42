// Package advisory provides the optional text-classification collaborator
// consulted by the engine for untagged lines.
//
// An [Advisor] is a single-operation capability: classify one block of text
// into a delivery intent plus an anchor suggestion, with a confidence. The
// engine never talks to an Advisor directly; it goes through [Safe], which
// converts every fault (transport error, timeout, malformed reply, low
// confidence) into "no advice".
package advisory

import (
	"context"

	"github.com/tsawler/pagina/model"
)

// Advice is one classification suggestion.
type Advice struct {
	// Intent is the suggested delivery intent
	Intent model.Intent `json:"intent"`

	// IsAnchor suggests the text starts a new primary knowledge concept
	IsAnchor bool `json:"is_anchor"`

	// Confidence is the advisor's own confidence in [0,1]
	Confidence float64 `json:"confidence"`
}

// Advisor classifies a single block of text. Returning a nil Advice with a
// nil error means the advisor has no opinion.
type Advisor interface {
	Classify(ctx context.Context, text string) (*Advice, error)
}

// Nop is an Advisor that never has an opinion.
type Nop struct{}

// Classify implements Advisor.
func (Nop) Classify(context.Context, string) (*Advice, error) {
	return nil, nil
}

// Func adapts a plain function to the Advisor interface.
type Func func(ctx context.Context, text string) (*Advice, error)

// Classify implements Advisor.
func (f Func) Classify(ctx context.Context, text string) (*Advice, error) {
	return f(ctx, text)
}
