// Package dot renders a Vertex graph as Graphviz DOT source text, a
// supplementary visualization feature for inspecting a graph's structure
// during development. Shelling out to a graphviz binary for PNG or GIF
// rendering is left to the caller; this package stops at DOT text.
package dot
