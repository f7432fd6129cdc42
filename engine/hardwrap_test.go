package engine

import (
	"strings"
	"testing"
)

func TestSplitLongText_ShortTextUntouched(t *testing.T) {
	got := splitLongText("短文本", 150)
	if len(got) != 1 || got[0] != "短文本" {
		t.Errorf("splitLongText() = %v, want the original text alone", got)
	}
}

func TestSplitLongText_PrefersPunctuationCut(t *testing.T) {
	// 11 runes with a comma at position 5: the cut lands after the comma,
	// not at the raw limit of 8.
	text := "一二三四，五六七八九十"
	got := splitLongText(text, 8)
	if len(got) != 2 {
		t.Fatalf("expected 2 chunks, got %v", got)
	}
	if got[0] != "一二三四，" {
		t.Errorf("first chunk = %q, want cut after the comma", got[0])
	}
	if strings.Join(got, "") != text {
		t.Errorf("chunks do not concatenate back to the original")
	}
}

func TestSplitLongText_NoPunctuation(t *testing.T) {
	// Punctuation-free text of length 10 at limit 4 yields ceil(10/4) = 3
	// chunks, each within the limit, concatenating exactly.
	text := "甲乙丙丁戊己庚辛壬癸"
	got := splitLongText(text, 4)
	if len(got) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %v", len(got), got)
	}
	for i, c := range got {
		if runeLen(c) > 4 {
			t.Errorf("chunk %d has %d runes, limit is 4", i, runeLen(c))
		}
	}
	if strings.Join(got, "") != text {
		t.Errorf("chunks = %v, do not concatenate back to the original", got)
	}
}

func TestSplitLongText_ExtendsPastQuoteCloser(t *testing.T) {
	// The raw limit of 8 falls inside the quotation. The chunk extends to
	// just past the closer instead of tearing the quote.
	text := "他说“老骥伏枥志在千里”然后继续讲课"
	got := splitLongText(text, 8)
	if len(got) < 2 {
		t.Fatalf("expected a split, got %v", got)
	}
	if !strings.HasSuffix(got[0], "”") {
		t.Errorf("first chunk = %q, want it to end at the quote closer", got[0])
	}
	if strings.Join(got, "") != text {
		t.Errorf("chunks do not concatenate back to the original")
	}
}

func TestSplitLongText_CutsBeforeQuoteOpener(t *testing.T) {
	// The closer is too far ahead to reach, but punctuation precedes the
	// opener: the cut retreats to before the quote starts.
	text := "第一点，他说“" + strings.Repeat("引", 20) + "”结束"
	got := splitLongText(text, 8)
	if len(got) < 2 {
		t.Fatalf("expected a split, got %v", got)
	}
	if got[0] != "第一点，" {
		t.Errorf("first chunk = %q, want cut before the quote opener", got[0])
	}
	if strings.Join(got, "") != text {
		t.Errorf("chunks do not concatenate back to the original")
	}
}

func TestSplitLongText_AlwaysMakesProgress(t *testing.T) {
	// A quote opener at the very start with no closer in reach: the wrapper
	// still cuts at the limit rather than looping.
	text := "“" + strings.Repeat("引", 30)
	got := splitLongText(text, 8)
	if strings.Join(got, "") != text {
		t.Errorf("chunks do not concatenate back to the original")
	}
	for i, c := range got {
		if c == "" {
			t.Errorf("chunk %d is empty", i)
		}
	}
}
