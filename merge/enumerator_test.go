package merge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sign-language-processing/complex-tokenization-go/merge"
	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

func tok(s string) *vertex.Token { return vertex.NewToken([]byte(s)) }

func byteSeq(t *testing.T, s string) vertex.Vertex {
	t.Helper()
	children := make([]vertex.Vertex, len(s))
	for i := 0; i < len(s); i++ {
		children[i] = tok(string(s[i]))
	}
	return vertex.Wrap(children)
}

func tally(t *testing.T, v vertex.Vertex, cfg merge.Config) map[string]int {
	t.Helper()
	counts := make(map[string]int)
	for c := range merge.Enumerate(v, cfg) {
		counts[string(c.Bytes())]++
	}
	return counts
}

// Spec §8.2 scenario 4.
func TestLalalandMaxMergeSize2(t *testing.T) {
	cfg, err := merge.NewConfig(merge.WithMaxMergeSize(2))
	require.NoError(t, err)

	counts := tally(t, byteSeq(t, "lalaland"), cfg)
	require.Equal(t, map[string]int{
		"la": 3,
		"al": 2,
		"an": 1,
		"nd": 1,
	}, counts)
}

// Spec §8.2 scenario 5.
func TestLalalandMaxMergeSize3(t *testing.T) {
	cfg, err := merge.NewConfig(merge.WithMaxMergeSize(3))
	require.NoError(t, err)

	counts := tally(t, byteSeq(t, "lalaland"), cfg)
	require.Len(t, counts, 8)
	require.Equal(t, map[string]int{
		"la":  3,
		"al":  2,
		"an":  1,
		"nd":  1,
		"lal": 2,
		"ala": 2,
		"lan": 1,
		"and": 1,
	}, counts)
}

func TestMinimalityGateStopsAtNonToken(t *testing.T) {
	cfg, err := merge.NewConfig(merge.WithMaxMergeSize(100), merge.WithOnlyMinimalMerges(true))
	require.NoError(t, err)

	inner, err := vertex.NewSequence([]vertex.Vertex{tok("x"), tok("y")})
	require.NoError(t, err)
	outer, err := vertex.NewSequence([]vertex.Vertex{tok("a"), inner, tok("b")})
	require.NoError(t, err)

	var cands []merge.Candidate
	for c := range merge.Enumerate(outer, cfg) {
		cands = append(cands, c)
	}

	// "a" starts a run but cannot extend through the non-Token inner
	// Sequence; "inner" itself is not a Token so it never starts a run;
	// "b" is a single Token with nothing to its right.
	for _, c := range cands {
		require.True(t, len(c.Elements) == 1 || isToken(c.Elements[0]))
	}
	// No candidate ever spans from "a" across "inner" into "b".
	for _, c := range cands {
		if len(c.Elements) >= 2 {
			require.True(t, string(c.Bytes()) == "xy")
		}
	}
}

func isToken(v vertex.Vertex) bool {
	_, ok := v.(*vertex.Token)
	return ok
}

func TestNonMinimalGateAllowsCrossingStructure(t *testing.T) {
	cfg, err := merge.NewConfig(merge.WithMaxMergeSize(100), merge.WithOnlyMinimalMerges(false))
	require.NoError(t, err)

	inner, err := vertex.NewSequence([]vertex.Vertex{tok("x"), tok("y")})
	require.NoError(t, err)
	outer, err := vertex.NewSequence([]vertex.Vertex{tok("a"), inner, tok("b")})
	require.NoError(t, err)

	found := false
	for c := range merge.Enumerate(outer, cfg) {
		if len(c.Elements) == 3 && string(c.Bytes()) == "axyb" {
			found = true
		}
	}
	require.True(t, found, "non-minimal enumeration should admit the full span")
}

func TestTokenYieldsNoCandidates(t *testing.T) {
	cfg, err := merge.NewConfig()
	require.NoError(t, err)
	count := 0
	for range merge.Enumerate(tok("a"), cfg) {
		count++
	}
	require.Zero(t, count)
}

func TestTreeYieldsFullTupleAtEachLevel(t *testing.T) {
	cfg, err := merge.NewConfig()
	require.NoError(t, err)

	// Tree(⿱, [十, Tree(⿱, [乛, 头])]).
	inner, err := vertex.NewTree(tok("⿱"), []vertex.Vertex{tok("乛"), tok("头")})
	require.NoError(t, err)
	outer, err := vertex.NewTree(tok("⿱"), []vertex.Vertex{tok("十"), inner})
	require.NoError(t, err)

	var sawOuterTuple, sawInnerTuple bool
	for c := range merge.Enumerate(outer, cfg) {
		if len(c.Elements) != 3 {
			continue
		}
		if _, ok := c.Elements[2].(*vertex.Tree); ok {
			// Outer level: (⿱, 十, inner-Tree).
			require.Equal(t, "⿱", c.Elements[0].String())
			require.Equal(t, "十", c.Elements[1].String())
			sawOuterTuple = true
			continue
		}
		if c.Elements[0].String() == "⿱" && c.Elements[1].String() == "乛" && c.Elements[2].String() == "头" {
			sawInnerTuple = true
		}
	}
	require.True(t, sawOuterTuple, "outer level should yield (root, 十, inner)")
	require.True(t, sawInnerTuple, "inner level should yield (⿱, 乛, 头)")
}

func TestForestNeverCrossesSubgraphs(t *testing.T) {
	cfg, err := merge.NewConfig(merge.WithMaxMergeSize(10), merge.WithOnlyMinimalMerges(false))
	require.NoError(t, err)

	f, err := vertex.NewForest([]vertex.Vertex{byteSeq(t, "ab"), byteSeq(t, "cd")})
	require.NoError(t, err)

	for c := range merge.Enumerate(f, cfg) {
		b := string(c.Bytes())
		require.NotContains(t, []string{"bc", "abcd", "abc", "bcd"}, b)
	}
}
