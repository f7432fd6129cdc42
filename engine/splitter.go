package engine

import (
	"strings"
	"unicode/utf8"
)

// maxBulletsPerBlock caps how many bullets one input line may yield.
const maxBulletsPerBlock = 5

// longBlockThreshold is the rune length past which a block with no sentence
// punctuation falls back to comma splitting.
const longBlockThreshold = 80

// sentenceEnders are the primary bullet boundaries.
const sentenceEnders = "。！？!?；;"

// clauseEnders are the fallback boundaries for long unpunctuated blocks.
const clauseEnders = "，,、"

// splitBullets breaks one block of text into display bullets. A block that
// encloses a balanced curly quotation is kept whole so the quote is never
// torn apart.
func splitBullets(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if hasBalancedQuote(text) {
		return []string{text}
	}

	parts := splitOnRunes(text, sentenceEnders)
	if len(parts) <= 1 && utf8.RuneCountInString(text) > longBlockThreshold {
		parts = splitOnRunes(text, clauseEnders)
	}
	if len(parts) == 0 {
		return []string{text}
	}
	if len(parts) > maxBulletsPerBlock {
		parts = parts[:maxBulletsPerBlock]
	}
	return parts
}

// hasBalancedQuote reports whether text contains an opening curly quote with
// a matching closer after it, with content in between.
func hasBalancedQuote(text string) bool {
	open := strings.Index(text, "“")
	if open < 0 {
		return false
	}
	rest := text[open+len("“"):]
	close := strings.Index(rest, "”")
	return close > 0
}

// splitOnRunes splits text at any of the given delimiter runes, keeping each
// delimiter attached to the fragment it terminates, then trims and drops
// empty fragments.
func splitOnRunes(text, delims string) []string {
	var parts []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if strings.ContainsRune(delims, r) {
			if p := strings.TrimSpace(b.String()); p != "" {
				parts = append(parts, p)
			}
			b.Reset()
		}
	}
	if p := strings.TrimSpace(b.String()); p != "" {
		parts = append(parts, p)
	}
	return parts
}
