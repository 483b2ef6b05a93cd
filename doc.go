// Package complextokenization is the root of a graph-rewriting token
// generalization toolkit: given a heterogeneous graph of Tokens,
// Sequences, Trees, and Forests, it enumerates admissible merge
// candidates, scores them by compression gain, and rewrites the graph one
// merge at a time to train a byte-pair/byte-n-gram-style merge list.
//
// The model lives in package vertex; candidate enumeration in package
// merge; graph rewriting in package rewrite; the outer training loop in
// package trainer. Packages construct, segmenter, pretokenize, ids, and
// corpus bridge raw input (bytes, text, Chinese character decompositions,
// corpora) into the graph the trainer consumes. Package intern provides
// optional structural-sharing canonicalization, and package dot renders a
// graph as Graphviz source for inspection.
//
//	go get github.com/sign-language-processing/complex-tokenization-go
package complextokenization
