// Package vertex defines the heterogeneous graph data model shared by every
// other package in this module: Token, Sequence, Tree, and Forest, the four
// variants of the Vertex interface.
//
// A Vertex is immutable and value-like: two Vertices compare Equal iff they
// have the same variant and their constituent children are pairwise Equal
// (Token equality is by byte value). Hashing mirrors equality and is cached
// lazily on every non-Token Vertex, since repeated candidate tallying over a
// large graph would otherwise re-walk the same subtrees on every comparison.
//
// Construction never fails silently: a Sequence or Forest built with fewer
// than two children, or a Tree built with no children, returns a sentinel
// error rather than a degenerate Vertex (see errors.go). Rewriting (package
// rewrite) builds new Vertices only where something changed and reuses the
// rest; nothing in this package mutates an existing value in place.
package vertex
