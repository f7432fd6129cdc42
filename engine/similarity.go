package engine

import "unicode"

// bigrams returns the set of 2-rune windows of s after whitespace removal.
// A text shorter than 2 runes contributes itself as the single member, so
// single-character fragments still compare.
func bigrams(s string) map[string]struct{} {
	runes := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		runes = append(runes, r)
	}

	set := make(map[string]struct{})
	if len(runes) == 0 {
		return set
	}
	if len(runes) < 2 {
		set[string(runes)] = struct{}{}
		return set
	}
	for i := 0; i+1 < len(runes); i++ {
		set[string(runes[i:i+2])] = struct{}{}
	}
	return set
}

// jaccard computes the Jaccard similarity of two bigram sets. Either set
// empty yields 0.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for g := range a {
		if _, ok := b[g]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// topicSimilarity scores a candidate bullet against the tail of the page's
// existing bullets, averaging the pairwise similarity over the last three.
// A page with no bullets scores 1 so the candidate always joins it.
func topicSimilarity(candidate string, bullets []string) float64 {
	if len(bullets) == 0 {
		return 1
	}
	tail := bullets
	if len(tail) > 3 {
		tail = tail[len(tail)-3:]
	}

	cg := bigrams(candidate)
	sum := 0.0
	for _, b := range tail {
		sum += jaccard(cg, bigrams(b))
	}
	return sum / float64(len(tail))
}
