package engine

import (
	"fmt"
	"testing"

	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/rules"
)

func contentPage(bullets int, layout model.Layout) *model.Page {
	p := model.NewPage("知识点", model.PageTypeKnowledge, "")
	for i := 0; i < bullets; i++ {
		p.AddBullet(fmt.Sprintf("要点%d", i+1), model.IntentShow)
	}
	p.Layout = layout
	return p.Finalize()
}

func TestEnforceLayoutRunLimit_BreaksFifthPage(t *testing.T) {
	r := rules.Default()

	var pages []*model.Page
	for i := 0; i < 5; i++ {
		pages = append(pages, contentPage(2, model.LayoutHalfScreen))
	}

	enforceLayoutRunLimit(pages, r)

	for i := 0; i < 4; i++ {
		if pages[i].Layout != model.LayoutHalfScreen {
			t.Errorf("page %d layout changed to %v", i+1, pages[i].Layout)
		}
	}
	fifth := pages[4]
	if fifth.Layout != model.LayoutSmallAvatar {
		t.Errorf("fifth page layout = %v, want small_avatar", fifth.Layout)
	}
	if !hasSignal(fifth, "layout_run_break") {
		t.Errorf("fifth page missing layout_run_break: %v", fifth.Evidence.Signals)
	}
	if !hasSplitReason(fifth, "layout_run>4") {
		t.Errorf("fifth page missing split reason: %v", fifth.Evidence.SplitReason)
	}
}

func TestEnforceLayoutRunLimit_RestartsAfterSwap(t *testing.T) {
	r := rules.Default()

	// Ten half-screen pages: only the fifth and the tenth exceed a run.
	var pages []*model.Page
	for i := 0; i < 10; i++ {
		pages = append(pages, contentPage(2, model.LayoutHalfScreen))
	}

	enforceLayoutRunLimit(pages, r)

	swapped := 0
	for _, p := range pages {
		if p.Layout == model.LayoutSmallAvatar {
			swapped++
		}
	}
	if swapped != 2 {
		t.Errorf("swapped %d pages, want 2", swapped)
	}
}

func TestEnforceLayoutRunLimit_PresenterPagesResetTheRun(t *testing.T) {
	r := rules.Default()

	var pages []*model.Page
	for i := 0; i < 4; i++ {
		pages = append(pages, contentPage(2, model.LayoutHalfScreen))
	}
	teacher := model.NewPage("老师出镜", model.PageTypeTeacherOnly, "")
	teacher.Layout = model.LayoutTeacherOnly
	pages = append(pages, teacher.Finalize())
	for i := 0; i < 4; i++ {
		pages = append(pages, contentPage(2, model.LayoutHalfScreen))
	}

	enforceLayoutRunLimit(pages, r)

	for i, p := range pages {
		if p.Type == model.PageTypeTeacherOnly {
			continue
		}
		if p.Layout != model.LayoutHalfScreen {
			t.Errorf("page %d layout = %v, want half_screen kept", i+1, p.Layout)
		}
	}
}

func TestEnforceLayoutRunLimit_NoAlternativeAvailable(t *testing.T) {
	r := rules.Default()

	// Pages outside every bullet band offer no alternate layout.
	var pages []*model.Page
	for i := 0; i < 5; i++ {
		pages = append(pages, contentPage(0, model.LayoutHalfScreen))
	}

	enforceLayoutRunLimit(pages, r)

	fifth := pages[4]
	if fifth.Layout != model.LayoutHalfScreen {
		t.Errorf("fifth page layout = %v, want unchanged", fifth.Layout)
	}
	if !hasSignal(fifth, "layout_run_break_failed") {
		t.Errorf("fifth page missing layout_run_break_failed: %v", fifth.Evidence.Signals)
	}
}
