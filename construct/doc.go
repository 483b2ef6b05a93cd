// Package construct bridges the external collaborators — byte encoding,
// grapheme segmentation, word pretokenization, and IDS parsing — into the
// graph core's Vertex model. Every exported function is a pure builder:
// given the collaborator's output, it returns the Vertex a trainer can
// start folding merges into.
package construct
