// Package engine turns a classified lecture script into a finalized page
// plan. The pipeline is a fixed sequence of passes over the page list:
// classify and paginate, assign layouts, break layout monotony, break
// presenter-page runs, repair cross-page cohesion, re-lay-out what moved,
// normalize, then number.
//
// The engine itself performs no I/O and never fails after construction; every
// anomaly is resolved deterministically and recorded in page evidence.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsawler/pagina/advisory"
	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/rules"
)

// Version identifies the pagination algorithm revision carried on results.
const Version = "2.3"

// Engine is the pagination engine. Construct it with New, optionally attach
// an advisor, then call Paginate. An Engine is safe for concurrent use.
type Engine struct {
	rules rules.Rules
	safe  *advisory.Safe
}

// New builds an engine over a validated rule set.
func New(r rules.Rules) (*Engine, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	return &Engine{rules: r}, nil
}

// WithAdvisor attaches a classification advisor behind the fail-safe wrapper
// and returns the engine.
func (e *Engine) WithAdvisor(a advisory.Advisor) *Engine {
	e.safe = advisory.NewSafe(a, e.rules.AdvisoryMinConfidence)
	return e
}

// Rules returns the engine's rule set.
func (e *Engine) Rules() rules.Rules {
	return e.rules
}

// Paginate plans pages for a whole script, one block per line.
func (e *Engine) Paginate(ctx context.Context, text string) (*model.Result, error) {
	return e.PaginateLines(ctx, SplitLines(text))
}

// PaginateLines plans pages for pre-split script lines.
func (e *Engine) PaginateLines(ctx context.Context, lines []string) (*model.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cls := NewClassifier(e.rules, e.safe)
	pages := newPaginator(e.rules, cls).run(ctx, lines)

	assignLayouts(pages, e.rules)
	enforceLayoutRunLimit(pages, e.rules)
	enforceNoConsecutiveTeacherOnly(pages)
	changed := repairCrossPageCohesion(pages, e.rules)
	reassignLayouts(pages, changed, e.rules)
	normalizeStructure(pages)
	numberPages(pages, e.rules)

	res := &model.Result{
		EngineVersion: Version,
		Pages:         pages,
	}
	res.ComputeStats(e.rules.MaxCharsPerPage)
	return res, nil
}

// numberPages assigns the 1-based page number and the combined page tag.
// This runs last; no pass may reorder pages afterwards.
func numberPages(pages []*model.Page, r rules.Rules) {
	for i, p := range pages {
		p.PageNo = i + 1
		p.PageTag = fmt.Sprintf("P%d%s", p.PageNo, layoutLabel(p.Layout, r))
	}
}

// layoutLabel maps a layout to its product label.
func layoutLabel(l model.Layout, r rules.Rules) string {
	switch l {
	case model.LayoutFullScreen:
		return rules.LabelFullScreen
	case model.LayoutSmallAvatar:
		return rules.LabelSmallAvatar
	case model.LayoutHalfScreen:
		return rules.LabelHalfScreen
	case model.LayoutTeacherOnly:
		return r.LabelTeacherOnly
	case model.LayoutSection:
		return r.LabelSectionPage
	case model.LayoutTitle:
		return r.LabelTitlePage
	default:
		return rules.LabelHalfScreen
	}
}

// SplitLines breaks raw script text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}
