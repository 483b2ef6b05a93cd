// Package pretokenize splits text into word-like pieces before cluster
// construction, supplementing the pretokenizer collaborator the training
// contract consumes but does not implement.
//
// Default reproduces the pattern used by a widely deployed tokenizer
// family: contractions, letter runs (optionally led by one non-letter/
// non-digit character), 1-3 digit numeric runs, punctuation runs, and
// whitespace, with a trailing negative lookahead that keeps a run of
// whitespace from swallowing the single space that starts the next word.
// The lookahead is why this package depends on github.com/dlclark/regexp2
// rather than the standard library's RE2-based regexp, which has no
// lookaround support.
package pretokenize
