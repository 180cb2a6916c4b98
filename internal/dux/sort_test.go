package dux

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}

	return out
}

func TestSortSiblings_DirectoriesFirst(t *testing.T) {
	children := []*Node{
		{Name: "huge", Kind: KindFile, Size: 1 << 40},
		{Name: "tiny", Kind: KindDir},
	}

	sortSiblings(children)

	assert.Equal(t, []string{"tiny", "huge"}, names(children),
		"directories precede files regardless of size")
}

func TestSortSiblings_LargerTotalsFirst(t *testing.T) {
	children := []*Node{
		{Name: "small", Kind: KindFile, Size: 1},
		{Name: "big", Kind: KindFile, Size: 100},
		{Name: "mid", Kind: KindFile, Size: 50},
	}

	sortSiblings(children)

	assert.Equal(t, []string{"big", "mid", "small"}, names(children))
}

func TestSortSiblings_DirectoryTotalIncludesAggregate(t *testing.T) {
	children := []*Node{
		{Name: "deep", Kind: KindDir, Size: 10, Aggregate: 1000},
		{Name: "flat", Kind: KindDir, Size: 500},
	}

	sortSiblings(children)

	assert.Equal(t, []string{"deep", "flat"}, names(children))
}

func TestSortSiblings_NameBreaksTies(t *testing.T) {
	// Two files of equal size: the lexicographically smaller name wins.
	children := []*Node{
		{Name: "b", Kind: KindFile, Size: 10},
		{Name: "a", Kind: KindFile, Size: 10},
	}

	sortSiblings(children)

	assert.Equal(t, []string{"a", "b"}, names(children))
}

func TestSortSiblings_HugeSizesDoNotOverflow(t *testing.T) {
	children := []*Node{
		{Name: "one", Kind: KindFile, Size: 1},
		{Name: "max", Kind: KindFile, Size: math.MaxInt64},
	}

	sortSiblings(children)

	assert.Equal(t, []string{"max", "one"}, names(children))
}

func TestSortSiblings_Deterministic(t *testing.T) {
	build := func() []*Node {
		return []*Node{
			{Name: "z", Kind: KindFile, Size: 10},
			{Name: "dir2", Kind: KindDir, Size: 0, Aggregate: 5},
			{Name: "a", Kind: KindFile, Size: 10},
			{Name: "dir1", Kind: KindDir, Size: 0, Aggregate: 5},
			{Name: "m", Kind: KindFile, Size: 20},
		}
	}

	first := build()
	sortSiblings(first)

	want := []string{"dir1", "dir2", "m", "a", "z"}
	require.Equal(t, want, names(first))

	// Re-running on an identical input yields the identical order.
	second := build()
	sortSiblings(second)
	sortSiblings(second)

	assert.Equal(t, want, names(second))
}
