package trainer

import (
	"context"

	"github.com/sign-language-processing/complex-tokenization-go/intern"
	"github.com/sign-language-processing/complex-tokenization-go/merge"
	"github.com/sign-language-processing/complex-tokenization-go/rewrite"
	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

// Trainer runs the merge-selection loop against a single graph, keeping
// the graph's evolving state between calls to Train. It does not keep the
// Merges: each Train call returns only the Merges made during that call.
//
// The zero value is not usable; construct one with New.
type Trainer struct {
	opts  Options
	graph vertex.Vertex
	table *intern.Table
}

// New returns a Trainer that starts training from graph with the given
// Options. When opts.Config.UseSingletons is set, every synthesized Token
// is canonicalized through a private intern.Table before being substituted
// into the graph; this never changes which merges are chosen, only
// whether equal Tokens share a single allocation.
func New(graph vertex.Vertex, opts Options) *Trainer {
	tr := &Trainer{opts: opts, graph: graph}
	if opts.Config.UseSingletons {
		tr.table = intern.New()
	}
	return tr
}

// Graph returns the Trainer's current graph state.
func (tr *Trainer) Graph() vertex.Vertex { return tr.graph }

// Train runs up to k iterations, appending one Merge per iteration:
// enumerate every admissible candidate over the current graph, tally
// frequency, score by (|M|-1)*f(M), break ties deterministically,
// synthesize the winning candidate's Token, rewrite the graph, and record
// the Merge. It stops early, returning fewer than k Merges, the moment an
// iteration's candidate tally is empty — there is nothing left to merge,
// and that is not an error.
//
// ctx is checked once per iteration, before enumeration; a caller-supplied
// stop predicate cancels between iterations, never mid-iteration.
func (tr *Trainer) Train(ctx context.Context, k int) ([]Merge, error) {
	merges := make([]Merge, 0, k)
	for i := 0; i < k; i++ {
		if err := ctx.Err(); err != nil {
			return merges, err
		}

		seq := merge.Enumerate(tr.graph, tr.opts.Config)
		tallies := collectTally(seq, tr.opts.OnlyTokens)
		best, ok := selectBest(tallies)
		if !ok {
			break
		}

		token := vertex.Concat(best.candidate.Elements...)
		if tr.table != nil {
			token = tr.table.Intern(token).(*vertex.Token)
		}

		tr.graph = rewrite.Rewrite(tr.graph, best.candidate, token)
		merges = append(merges, Merge{Token: token, Candidate: best.candidate})
	}
	return merges, nil
}
