package model

import (
	"encoding/json"
	"testing"
)

func TestPageType_String(t *testing.T) {
	tests := []struct {
		pt   PageType
		want string
	}{
		{PageTypeTeacherOnly, "teacher_only"},
		{PageTypeKnowledge, "knowledge"},
		{PageTypeQuote, "quote"},
		{PageTypeSection, "section"},
		{PageTypeTitle, "title"},
		{PageType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.pt.String(); got != tt.want {
				t.Errorf("PageType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLayout_Roundtrip(t *testing.T) {
	for _, l := range []Layout{
		LayoutHalfScreen, LayoutSmallAvatar, LayoutFullScreen,
		LayoutTeacherOnly, LayoutSection, LayoutTitle,
	} {
		text, err := l.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", l, err)
		}
		var back Layout
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if back != l {
			t.Errorf("round trip %v -> %s -> %v", l, text, back)
		}
	}

	var bad Layout
	if err := bad.UnmarshalText([]byte("cinema")); err == nil {
		t.Errorf("expected an error for an unknown layout")
	}
}

func TestParseIntent(t *testing.T) {
	tests := []struct {
		in   string
		want Intent
		ok   bool
	}{
		{"SHOW", IntentShow, true},
		{"SUPPORT", IntentSupport, true},
		{"SAY", IntentSay, true},
		{"show", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseIntent(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseIntent(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPage_FinalizeComputesRuneCount(t *testing.T) {
	p := NewPage("知识点", PageTypeKnowledge, "建安")
	p.AddBullet("建安风骨", IntentShow)
	p.AddQuote("老骥伏枥", IntentSupport)
	p.Finalize()

	if p.Content != "建安风骨\n老骥伏枥" {
		t.Errorf("Content = %q", p.Content)
	}
	// 9 runes, not bytes.
	if p.CharCount != 9 {
		t.Errorf("CharCount = %d, want 9", p.CharCount)
	}
}

func TestPage_PopBulletKeepsIntent(t *testing.T) {
	p := NewPage("知识点", PageTypeKnowledge, "")
	p.AddBullet("第一点", IntentShow)
	p.AddBullet("例如这样", IntentSupport)

	text, intent := p.PopBullet()
	if text != "例如这样" || intent != IntentSupport {
		t.Errorf("PopBullet() = (%q, %v)", text, intent)
	}
	if len(p.Bullets) != 1 || len(p.Items) != 1 {
		t.Errorf("page left with %d bullets, %d items", len(p.Bullets), len(p.Items))
	}

	if text, _ = p.PopBullet(); text != "第一点" {
		t.Errorf("second pop = %q", text)
	}
	if text, _ = p.PopBullet(); text != "" {
		t.Errorf("pop on empty page = %q, want empty", text)
	}
}

func TestPage_ShiftBullet(t *testing.T) {
	p := NewPage("知识点", PageTypeKnowledge, "")
	p.AddBullet("头部", IntentSupport)
	p.AddBullet("尾部", IntentShow)

	text, intent := p.ShiftBullet()
	if text != "头部" || intent != IntentSupport {
		t.Errorf("ShiftBullet() = (%q, %v)", text, intent)
	}
	if len(p.Bullets) != 1 || p.Bullets[0] != "尾部" {
		t.Errorf("remaining bullets = %v", p.Bullets)
	}
}

func TestPage_PrependBullet(t *testing.T) {
	p := NewPage("知识点", PageTypeKnowledge, "")
	p.AddBullet("原有", IntentShow)
	p.PrependBullet("插入", IntentSupport)

	if p.Bullets[0] != "插入" || p.Items[0].Intent != IntentSupport {
		t.Errorf("prepend did not land at the head: %v", p.Bullets)
	}
}

func TestPage_ClearContent(t *testing.T) {
	p := NewPage("章节", PageTypeSection, "背景")
	p.AddBullet("残留", IntentShow)
	p.Finalize()
	p.ClearContent()

	if p.HasContent() || p.Content != "" || p.CharCount != 0 || len(p.Items) != 0 {
		t.Errorf("ClearContent left residue: %+v", p)
	}
}

func TestPage_JSONShape(t *testing.T) {
	p := NewPage("知识点", PageTypeKnowledge, "建安")
	p.AddBullet("要点", IntentShow)
	p.Finalize()
	p.Layout = LayoutHalfScreen
	p.PageNo = 1
	p.PageTag = "P1半屏"

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if m["page_type"] != "knowledge" {
		t.Errorf("page_type = %v", m["page_type"])
	}
	if m["layout"] != "half_screen" {
		t.Errorf("layout = %v", m["layout"])
	}
	if m["page_tag"] != "P1半屏" {
		t.Errorf("page_tag = %v", m["page_tag"])
	}
	if _, ok := m["char_count"]; !ok {
		t.Errorf("char_count missing from JSON: %s", data)
	}
}

func TestResult_ComputeStats(t *testing.T) {
	r := &Result{Pages: []*Page{}}
	r.ComputeStats(150)
	if r.Stats.TotalPages != 0 || r.Stats.AvgChars != 0 {
		t.Errorf("empty stats = %+v", r.Stats)
	}

	a := NewPage("a", PageTypeKnowledge, "")
	a.AddBullet("一二三四五", IntentShow)
	b := NewPage("b", PageTypeKnowledge, "")
	b.AddBullet("一二", IntentShow)
	r = &Result{Pages: []*Page{a.Finalize(), b.Finalize()}}
	r.ComputeStats(150)

	if r.Stats.TotalPages != 2 {
		t.Errorf("TotalPages = %d", r.Stats.TotalPages)
	}
	if r.Stats.MaxCharsPerPage != 150 {
		t.Errorf("MaxCharsPerPage = %d", r.Stats.MaxCharsPerPage)
	}
	// (5 + 2) / 2 = 3.5
	if r.Stats.AvgChars != 3.5 {
		t.Errorf("AvgChars = %v, want 3.5", r.Stats.AvgChars)
	}
}
