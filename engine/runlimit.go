package engine

import (
	"fmt"

	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/rules"
)

// enforceLayoutRunLimit breaks monotonous stretches of one visual layout.
// Only the three visual templates count toward a run; structural and
// presenter pages reset it. A page pushing a run past the limit is swapped
// to an alternate layout its bullet count still permits.
func enforceLayoutRunLimit(pages []*model.Page, r rules.Rules) {
	var runLayout model.Layout
	runLen := 0

	for _, p := range pages {
		if !p.Layout.IsVisual() || p.Type.IsStructural() || p.Type == model.PageTypeTeacherOnly {
			runLen = 0
			continue
		}

		if runLen > 0 && p.Layout == runLayout {
			runLen++
		} else {
			runLayout = p.Layout
			runLen = 1
		}
		if runLen <= r.MaxLayoutRun {
			continue
		}

		alt, ok := alternateLayout(p.Layout, len(p.Bullets), r)
		if !ok {
			p.AddSignal("layout_run_break_failed")
			continue
		}
		p.Layout = alt
		p.AddSignal("layout_run_break")
		p.AddSplitReason(fmt.Sprintf("layout_run>%d", r.MaxLayoutRun))
		runLayout = alt
		runLen = 1
	}
}

// alternateLayout returns a different visual layout still valid for the
// bullet count, or false when the band offers no alternative.
func alternateLayout(cur model.Layout, bulletCount int, r rules.Rules) (model.Layout, bool) {
	for _, cand := range bandLayouts(bulletCount, r) {
		if cand != cur {
			return cand, true
		}
	}
	return cur, false
}

// bandLayouts lists the visual layouts acceptable for a bullet count, in
// preference order.
func bandLayouts(bulletCount int, r rules.Rules) []model.Layout {
	switch {
	case bulletCount >= r.FullScreenMin:
		return []model.Layout{model.LayoutFullScreen, model.LayoutSmallAvatar}
	case bulletCount >= r.SmallAvatarMin && bulletCount <= r.SmallAvatarMax:
		return []model.Layout{model.LayoutSmallAvatar, model.LayoutHalfScreen}
	case bulletCount >= r.HalfScreenMin && bulletCount <= r.HalfScreenMax:
		return []model.Layout{model.LayoutHalfScreen, model.LayoutSmallAvatar}
	default:
		return nil
	}
}
