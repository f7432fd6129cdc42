// Package pagina provides a fluent API for turning lecture scripts into
// presentation page plans.
//
// Basic usage:
//
//	result, err := pagina.Script(text).Plan(ctx)
//	if err != nil {
//	    // handle error
//	}
//	for _, page := range result.Pages {
//	    fmt.Println(page.PageTag, page.Title)
//	}
//
// With options:
//
//	result, err := pagina.FromDocx("lecture.docx").
//	    WithRulesFile("rules.yaml").
//	    WithAdvisor(advisory.NewHTTPClient(url)).
//	    Plan(ctx)
//
// For advanced use cases, the lower-level engine package is also available.
package pagina

import (
	"context"
	"fmt"

	"github.com/tsawler/pagina/advisory"
	"github.com/tsawler/pagina/docx"
	"github.com/tsawler/pagina/engine"
	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/rules"
)

// Planner accumulates a script and its configuration for fluent use. Errors
// from intermediate steps are deferred to Plan.
type Planner struct {
	lines   []string
	rules   rules.Rules
	advisor advisory.Advisor
	err     error
}

// Script starts a plan from raw script text, one block per line.
func Script(text string) *Planner {
	return &Planner{
		lines: engine.SplitLines(text),
		rules: rules.Default(),
	}
}

// FromLines starts a plan from pre-split script lines.
func FromLines(lines []string) *Planner {
	return &Planner{
		lines: lines,
		rules: rules.Default(),
	}
}

// FromDocx starts a plan from a DOCX lecture script. Heading paragraphs
// become section pages; author page directives are stripped.
func FromDocx(filename string) *Planner {
	p := &Planner{rules: rules.Default()}

	r, err := docx.Open(filename)
	if err != nil {
		p.err = fmt.Errorf("opening script: %w", err)
		return p
	}
	defer r.Close()

	p.lines, _ = docx.StripDirectives(r.Script())
	return p
}

// WithRules replaces the rule set.
func (p *Planner) WithRules(r rules.Rules) *Planner {
	p.rules = r
	return p
}

// WithRulesFile loads the rule set from a YAML file.
func (p *Planner) WithRulesFile(path string) *Planner {
	r, err := rules.Load(path)
	if err != nil {
		p.err = err
		return p
	}
	p.rules = r
	return p
}

// WithAdvisor attaches a classification advisor. It is consulted through the
// fail-safe wrapper; a broken advisor never fails a plan.
func (p *Planner) WithAdvisor(a advisory.Advisor) *Planner {
	p.advisor = a
	return p
}

// Plan runs the engine and returns the finished page plan.
func (p *Planner) Plan(ctx context.Context) (*model.Result, error) {
	if p.err != nil {
		return nil, p.err
	}

	eng, err := engine.New(p.rules)
	if err != nil {
		return nil, err
	}
	if p.advisor != nil {
		eng = eng.WithAdvisor(p.advisor)
	}
	return eng.PaginateLines(ctx, p.lines)
}

// Must is a helper that wraps a call to a function returning (T, error) and
// panics if the error is non-nil. It is intended for use in scripts or tests
// where error handling would be cumbersome.
//
// Example:
//
//	result := pagina.Must(pagina.Script(text).Plan(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
