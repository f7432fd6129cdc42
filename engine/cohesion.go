package engine

import (
	"strings"

	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/rules"
)

// leadinEnders are trailing marks that leave a bullet visibly unfinished.
const leadinEnders = "，,、：:—"

// leadinMaxLen bounds how long a connector-based lead-in may be.
const leadinMaxLen = 18

// repairCrossPageCohesion moves a dangling lead-in bullet from the end of a
// page to the head of its successor, page pair by page pair. The move is
// atomic: it is rolled back unless both pages stay within the character
// budget. Structural and presenter pages are never touched.
//
// The returned set holds every page whose content changed.
func repairCrossPageCohesion(pages []*model.Page, r rules.Rules) map[*model.Page]bool {
	changed := make(map[*model.Page]bool)

	for i := 0; i+1 < len(pages); i++ {
		a, b := pages[i], pages[i+1]
		if !movablePair(a, b) {
			continue
		}
		if len(a.Bullets) < 2 {
			// Moving the only bullet would leave an empty content page.
			continue
		}
		last := a.Bullets[len(a.Bullets)-1]
		if !looksLeadin(last, r) {
			continue
		}

		text, intent := a.PopBullet()
		b.PrependBullet(text, intent)
		a.Finalize()
		b.Finalize()

		if a.CharCount <= r.MaxCharsPerPage && b.CharCount <= r.MaxCharsPerPage {
			a.AddSignal("leadin_moved_out")
			b.AddSignal("leadin_moved_in")
			b.AddSplitReason("leadin_cohesion")
			changed[a] = true
			changed[b] = true
			continue
		}

		// Rollback: the budget is a harder constraint than cohesion.
		moved, movedIntent := b.ShiftBullet()
		a.AddBullet(moved, movedIntent)
		a.Finalize()
		b.Finalize()
	}
	return changed
}

func movablePair(a, b *model.Page) bool {
	for _, p := range []*model.Page{a, b} {
		if p.Type.IsStructural() || p.Type == model.PageTypeTeacherOnly {
			return false
		}
	}
	return true
}

// looksLeadin reports whether a bullet reads as an unfinished lead-in: it
// ends with open punctuation, or it is short and built around a connector.
func looksLeadin(text string, r rules.Rules) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	runes := []rune(trimmed)
	if strings.ContainsRune(leadinEnders, runes[len(runes)-1]) {
		return true
	}
	if len(runes) <= leadinMaxLen {
		for _, c := range r.LeadinConnectors {
			if c != "" && strings.Contains(trimmed, c) {
				return true
			}
		}
	}
	return false
}
