// Package rewrite implements the single operation that distinguishes a
// trained merge from an enumerated candidate: substituting every
// non-overlapping, left-to-right occurrence of a merge candidate with its
// synthesized Token.
//
// Rewrite never mutates its input; it allocates new Vertices only where a
// replacement changed something. A subtree that contains no occurrence of the candidate and whose children
// are themselves unchanged is returned by the same pointer it came in
// with, so a rewrite over a graph where only one branch touched the chosen
// merge reallocates only that branch's spine.
package rewrite
