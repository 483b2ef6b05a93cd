package trainer

import (
	"github.com/sign-language-processing/complex-tokenization-go/ids"
	"github.com/sign-language-processing/complex-tokenization-go/merge"
)

// RenderedMerge is a Merge's pair of human-readable string forms, as they
// would be written out by a CLI: each element of the candidate
// and the resulting Token, both decoded from their byte serializations with
// U+FFFD substitution for ill-formed UTF-8.
type RenderedMerge struct {
	Elements []string
	Token    string
}

// RenderMerges converts each Merge to its RenderedMerge form. When dict is
// non-nil and a string form (of an element or of the Token) is itself a
// registered IDS string, the canonical Han character for that IDS is
// substituted in its place. A nil dict disables the substitution entirely.
func RenderMerges(merges []Merge, dict ids.Dictionary) []RenderedMerge {
	out := make([]RenderedMerge, len(merges))
	for i, m := range merges {
		out[i] = RenderedMerge{
			Elements: renderCandidate(m.Candidate, dict),
			Token:    renderString(m.Token.String(), dict),
		}
	}
	return out
}

func renderCandidate(c merge.Candidate, dict ids.Dictionary) []string {
	elems := make([]string, len(c.Elements))
	for i, e := range c.Elements {
		elems[i] = renderString(e.String(), dict)
	}
	return elems
}

func renderString(s string, dict ids.Dictionary) string {
	if dict == nil {
		return s
	}
	if char, ok := dict.CharacterForIDS(s); ok {
		return char
	}
	return s
}
