package engine

import "github.com/tsawler/pagina/model"

const signalDowngrade = "downgrade_from_teacher_only"

// enforceNoConsecutiveTeacherOnly breaks runs of presenter pages. The second
// of two adjacent teacher pages is downgraded to a half-screen knowledge page
// when it has content to show; an empty one keeps its type, since there is
// nothing to promote onto a slide.
func enforceNoConsecutiveTeacherOnly(pages []*model.Page) {
	for i := 1; i < len(pages); i++ {
		prev, cur := pages[i-1], pages[i]
		if prev.Type != model.PageTypeTeacherOnly || cur.Type != model.PageTypeTeacherOnly {
			continue
		}

		if cur.HasContent() {
			cur.Type = model.PageTypeKnowledge
			cur.Layout = model.LayoutHalfScreen
			cur.AddSignal(signalDowngrade)
			cur.AddSplitReason("no_consecutive_teacher_only")
		} else {
			cur.Layout = model.LayoutTeacherOnly
			cur.AddSignal("teacher_only_keep_empty")
		}
	}
}
