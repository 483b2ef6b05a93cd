package trainer

import (
	"bytes"
	"iter"

	"github.com/samber/lo"

	"github.com/sign-language-processing/complex-tokenization-go/merge"
	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

// collectTally enumerates every candidate in cfg's admissible set over
// graph, dropping non-Token-only candidates when onlyTokens is set, and
// returns a frequency tally keyed by candidate identity. It consumes the lazy Enumerate sequence in a single pass, never
// materializing the candidate list.
func collectTally(seq iter.Seq[merge.Candidate], onlyTokens bool) map[string]*tally {
	tallies := make(map[string]*tally)
	for c := range seq {
		if onlyTokens && !allTokens(c) {
			continue
		}
		key := c.Key()
		if e, ok := tallies[key]; ok {
			e.freq++
		} else {
			tallies[key] = &tally{candidate: c, freq: 1}
		}
	}
	return tallies
}

func allTokens(c merge.Candidate) bool {
	for _, e := range c.Elements {
		if _, ok := e.(*vertex.Token); !ok {
			return false
		}
	}
	return true
}

// selectBest picks the highest-scoring candidate, applying the mandatory
// deterministic tie-break: greater frequency, then longer arity, then
// lexicographically smaller concatenated byte serialization.
func selectBest(tallies map[string]*tally) (*tally, bool) {
	values := lo.Values(tallies)
	if len(values) == 0 {
		return nil, false
	}
	best := lo.MaxBy(values, func(a *tally, b *tally) bool {
		return better(a, b)
	})
	return best, true
}

// better reports whether a should be preferred over b under the
// score-then-tie-break ordering.
func better(a, b *tally) bool {
	if sa, sb := a.score(), b.score(); sa != sb {
		return sa > sb
	}
	if a.freq != b.freq {
		return a.freq > b.freq
	}
	if la, lb := a.candidate.Len(), b.candidate.Len(); la != lb {
		return la > lb
	}
	return bytes.Compare(a.candidate.Bytes(), b.candidate.Bytes()) < 0
}
