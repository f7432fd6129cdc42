package engine

import (
	"strings"
	"unicode/utf8"
)

// wrapPunct is the set of characters a hard wrap may cut after.
const wrapPunct = "。！？!?；;，,、：:…"

// splitLongText chops text into chunks of at most max runes, preferring to
// cut just after punctuation and refusing to strand an unclosed curly quote
// at a chunk boundary. Chunks concatenate back to the original text exactly.
//
// A chunk may exceed max only when extending it is the sole way to keep a
// quotation closed; the overrun is bounded by one extra window.
func splitLongText(text string, max int) []string {
	if max <= 0 {
		return []string{text}
	}
	runes := []rune(text)
	if len(runes) <= max {
		return []string{text}
	}

	var chunks []string
	i := 0
	for i < len(runes) {
		if len(runes)-i <= max {
			chunks = append(chunks, string(runes[i:]))
			break
		}

		window := runes[i : i+max]
		cut := 0 // relative to i; 0 means undecided

		if open := unclosedQuoteAt(window); open >= 0 {
			// Cutting inside the quotation is the worst outcome. First try
			// to extend past the closer within one extra window.
			if ext := findCloser(runes, i+max, max); ext > 0 {
				cut = ext - i
			} else if back := lastPunct(window[:open]); back > 0 {
				// No closer in reach: cut before the quote opens.
				cut = back
			}
		} else if back := lastPunct(window); back > 0 {
			cut = back
		}

		if cut <= 0 {
			cut = max
		}
		chunks = append(chunks, string(runes[i:i+cut]))
		i += cut
	}
	return chunks
}

// unclosedQuoteAt returns the index of the last opening curly quote in window
// that has no closer after it, or -1 if the window is balanced.
func unclosedQuoteAt(window []rune) int {
	open := -1
	for k, r := range window {
		switch r {
		case '“':
			open = k
		case '”':
			open = -1
		}
	}
	return open
}

// findCloser scans runes from position start for a closing curly quote within
// lookahead runes, returning the absolute position just past it, or 0.
func findCloser(runes []rune, start, lookahead int) int {
	end := start + lookahead
	if end > len(runes) {
		end = len(runes)
	}
	for j := start; j < end; j++ {
		if runes[j] == '”' {
			return j + 1
		}
	}
	return 0
}

// lastPunct returns the position just past the last wrap punctuation in
// window, or 0 when none exists. A cut of 0 runes is never proposed.
func lastPunct(window []rune) int {
	for b := len(window) - 1; b >= 1; b-- {
		if strings.ContainsRune(wrapPunct, window[b]) {
			return b + 1
		}
	}
	return 0
}

// runeLen is shorthand for the rune length of a string.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
