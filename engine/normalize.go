package engine

import "github.com/tsawler/pagina/model"

// normalizeStructure is the final consistency pass. Any layout outside the
// known vocabulary is coerced to half screen, and pages rendering as title or
// section carry no slide content.
func normalizeStructure(pages []*model.Page) {
	for _, p := range pages {
		if !p.Layout.Valid() {
			p.Layout = model.LayoutHalfScreen
			p.AddSignal("layout_coerced")
		}
		if p.Layout == model.LayoutTitle || p.Layout == model.LayoutSection {
			p.ClearContent()
		}
	}
}
