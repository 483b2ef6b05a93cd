package segmenter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sign-language-processing/complex-tokenization-go/segmenter"
)

func TestDefaultSplitsPlainASCII(t *testing.T) {
	clusters := segmenter.Default("abc")
	require.Equal(t, []string{"a", "b", "c"}, clusters)
}

func TestDefaultGroupsCombiningMarks(t *testing.T) {
	// 'e' + COMBINING ACUTE ACCENT (U+0301), decomposed form.
	decomposed := string([]rune{'e', 0x0301})
	clusters := segmenter.Default(decomposed)
	require.Len(t, clusters, 1)
	require.Equal(t, string(rune(0x00E9)), clusters[0])
}

func TestDefaultRoundTripsToNFCForm(t *testing.T) {
	s := string([]rune{'c', 'a', 'f', 'e', 0x0301})
	clusters := segmenter.Default(s)
	require.Equal(t, string([]rune{'c', 'a', 'f', 0x00E9}), strings.Join(clusters, ""))
}

func TestDefaultEmptyString(t *testing.T) {
	require.Empty(t, segmenter.Default(""))
}
