// Package merge defines a merge Candidate and the lazy enumerator that
// produces every admissible candidate for a vertex.Vertex under a given
// Config.
//
// Config replaces three process-wide flags (MAX_MERGE_SIZE,
// ONLY_MINIMAL_MERGES, USE_SINGLETONS) with an explicit, immutable value
// built through functional options, the same functional-options pattern
// used elsewhere in this module. Enumerate is a Go 1.23 range-over-func
// iterator: callers that only need a frequency tally (the trainer) consume
// it in a single pass without ever materializing the full candidate list.
package merge
