package segmenter

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Segmenter splits s into an ordered list of grapheme-cluster strings.
type Segmenter func(s string) []string

// Default groups each base rune with any combining marks that immediately
// follow it, after NFC-normalizing s so precomposed and decomposed
// representations of the same visible character segment identically. The
// clusters concatenate to the NFC form of s, which differs from s when s
// holds decomposed sequences.
func Default(s string) []string {
	normalized := norm.NFC.String(s)
	runes := []rune(normalized)

	var clusters []string
	i := 0
	for i < len(runes) {
		j := i + 1
		for j < len(runes) && isCombiningMark(runes[j]) {
			j++
		}
		clusters = append(clusters, string(runes[i:j]))
		i = j
	}
	return clusters
}

func isCombiningMark(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Me, r)
}
