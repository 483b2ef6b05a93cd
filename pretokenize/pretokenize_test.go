package pretokenize_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sign-language-processing/complex-tokenization-go/pretokenize"
)

func TestDefaultSplitsSimpleSentence(t *testing.T) {
	pieces := pretokenize.Default("the teacher teaches")
	require.Equal(t, []string{"the", " teacher", " teaches"}, pieces)
}

func TestDefaultHandlesContractions(t *testing.T) {
	pieces := pretokenize.Default("it's")
	require.Equal(t, []string{"it's"}, pieces)
}

func TestDefaultHandlesNumericRuns(t *testing.T) {
	pieces := pretokenize.Default("room 123456")
	require.Contains(t, pieces, "123")
	require.Contains(t, pieces, "456")
}

func TestDefaultRoundTripsExactly(t *testing.T) {
	text := "Hello, world!\nNew line here."
	pieces := pretokenize.Default(text)
	require.Equal(t, text, strings.Join(pieces, ""))
}

func TestDefaultPunctuationRun(t *testing.T) {
	pieces := pretokenize.Default("wait...")
	require.Equal(t, []string{"wait", "..."}, pieces)
}
