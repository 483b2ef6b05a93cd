package trainer

import (
	"github.com/sign-language-processing/complex-tokenization-go/merge"
	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

// Merge is one recorded training step: the Token synthesized for Candidate,
// and the Candidate itself.
type Merge struct {
	Token     *vertex.Token
	Candidate merge.Candidate
}

// tally accumulates one candidate's frequency and score during a single
// training iteration.
type tally struct {
	candidate merge.Candidate
	freq      int
}

func (e tally) score() int {
	return (e.candidate.Len() - 1) * e.freq
}
