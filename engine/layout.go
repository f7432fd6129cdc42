package engine

import (
	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/rules"
)

// ChooseLayout picks the visual template for a page from its type and bullet
// count. Structural and presenter pages map to their fixed templates; quote
// pages always render half screen; content pages fall into the configured
// bullet-count bands.
func ChooseLayout(pt model.PageType, bulletCount int, r rules.Rules) model.Layout {
	switch pt {
	case model.PageTypeSection:
		return model.LayoutSection
	case model.PageTypeTitle:
		return model.LayoutTitle
	case model.PageTypeTeacherOnly:
		return model.LayoutTeacherOnly
	case model.PageTypeQuote:
		return model.LayoutHalfScreen
	}

	switch {
	case bulletCount == 0:
		return model.LayoutTeacherOnly
	case bulletCount >= r.FullScreenMin:
		return model.LayoutFullScreen
	case bulletCount >= r.SmallAvatarMin && bulletCount <= r.SmallAvatarMax:
		return model.LayoutSmallAvatar
	case bulletCount >= r.HalfScreenMin && bulletCount <= r.HalfScreenMax:
		return model.LayoutHalfScreen
	default:
		return model.LayoutHalfScreen
	}
}

// assignLayouts sets the layout for every page in sequence.
func assignLayouts(pages []*model.Page, r rules.Rules) {
	for _, p := range pages {
		p.Layout = ChooseLayout(p.Type, len(p.Bullets), r)
	}
}

// reassignLayouts recomputes layouts only for pages whose content changed in
// a repair pass. Pages pinned by an earlier pass keep their layout.
func reassignLayouts(pages []*model.Page, changed map[*model.Page]bool, r rules.Rules) {
	for _, p := range pages {
		if !changed[p] || hasSignal(p, signalDowngrade) {
			continue
		}
		p.Layout = ChooseLayout(p.Type, len(p.Bullets), r)
	}
}

func hasSignal(p *model.Page, s string) bool {
	for _, sig := range p.Evidence.Signals {
		if sig == s {
			return true
		}
	}
	return false
}
