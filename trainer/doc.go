// Package trainer implements the outer training loop: enumerate candidates,
// tally their frequency, score, select the single most compressive merge,
// rewrite the graph, and record the merge — for K iterations or until no
// candidates remain.
//
// The loop is single-threaded and synchronous by contract: it
// never blocks or yields internally. A caller that wants coarse
// cancellation threads a context.Context through Train; the loop checks
// it once per iteration, applying any external stop predicate between
// iterations rather than mid-iteration.
//
// Score is (|M|-1)*f(M), the number of Vertices eliminated by applying the
// merge everywhere — the compression gain. The alternative |M|*f(M) scoring
// overcounts by one vertex per occurrence and is not used here.
package trainer
