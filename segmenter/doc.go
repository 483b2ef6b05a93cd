// Package segmenter splits a string into the unit boundaries that
// construct.GraphemeClusters groups into Token leaves.
//
// Default is an approximation of UAX #29 extended grapheme clusters: it
// NFC-normalizes the input, then groups each base rune with any
// immediately-following combining marks. It does not implement the full
// UAX #29 rule set (Hangul syllable composition, regional indicators,
// emoji ZWJ sequences, and the other special cases are not handled) — no
// conformant grapheme-cluster library was available to build on, so this
// package documents the gap rather than silently mishandling it.
package segmenter
