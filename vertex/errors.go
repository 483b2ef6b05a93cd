package vertex

import "errors"

// Sentinel errors for Vertex construction. Both are raised only at
// construction time, never from inside the trainer loop.
var (
	// ErrTooFewChildren indicates a Sequence or Forest was constructed with
	// fewer than two children. A singleton collapses to its sole child
	// instead; callers should use that child directly rather than wrapping
	// it (see NewSequence, NewForest).
	ErrTooFewChildren = errors.New("vertex: sequence/forest requires at least 2 children")

	// ErrNoChildren indicates a Tree was constructed with zero children. An
	// arity-0 "tree" collapses to its root.
	ErrNoChildren = errors.New("vertex: tree requires at least 1 child")
)
