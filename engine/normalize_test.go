package engine

import (
	"testing"

	"github.com/tsawler/pagina/model"
)

func TestNormalizeStructure(t *testing.T) {
	title := model.NewPage("课程标题", model.PageTypeTitle, "")
	title.AddBullet("不该出现的内容", model.IntentShow)
	title.Layout = model.LayoutTitle
	title.Finalize()

	broken := model.NewPage("知识点", model.PageTypeKnowledge, "")
	broken.AddBullet("要点。", model.IntentShow)
	broken.Layout = model.Layout(99)
	broken.Finalize()

	normalizeStructure([]*model.Page{title, broken})

	if title.HasContent() || title.Content != "" || title.CharCount != 0 {
		t.Errorf("title page still carries content %q", title.Content)
	}
	if broken.Layout != model.LayoutHalfScreen {
		t.Errorf("layout = %v, want coerced to half_screen", broken.Layout)
	}
	if !hasSignal(broken, "layout_coerced") {
		t.Errorf("missing layout_coerced signal: %v", broken.Evidence.Signals)
	}
	if !broken.HasContent() {
		t.Errorf("content page was cleared")
	}
}
