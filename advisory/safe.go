package advisory

import (
	"context"
	"time"

	"github.com/tsawler/pagina/model"
)

// DefaultTimeout bounds a single advisory call.
const DefaultTimeout = 2 * time.Second

// Safe wraps an Advisor so that no fault can reach the engine. Any error,
// timeout, out-of-range confidence or malformed reply degrades to
// (zero Advice, false).
type Safe struct {
	advisor       Advisor
	minConfidence float64
	timeout       time.Duration
}

// NewSafe builds the fail-safe wrapper. A nil advisor behaves like Nop.
func NewSafe(advisor Advisor, minConfidence float64) *Safe {
	return &Safe{
		advisor:       advisor,
		minConfidence: minConfidence,
		timeout:       DefaultTimeout,
	}
}

// WithTimeout overrides the per-call timeout and returns the wrapper.
func (s *Safe) WithTimeout(d time.Duration) *Safe {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// Consult asks the advisor about text. The second return is false whenever
// there is no usable advice, for any reason.
func (s *Safe) Consult(ctx context.Context, text string) (Advice, bool) {
	if s == nil || s.advisor == nil {
		return Advice{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	advice, err := s.advisor.Classify(ctx, text)
	if err != nil || advice == nil {
		return Advice{}, false
	}
	if advice.Confidence < s.minConfidence || advice.Confidence > 1 {
		return Advice{}, false
	}
	// Reject intents outside the fixed vocabulary.
	if _, ok := model.ParseIntent(advice.Intent.String()); !ok {
		return Advice{}, false
	}
	return *advice, true
}
