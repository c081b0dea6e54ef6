package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/allrgb/gridgraph"
)

func spanned(t *testing.T, rows, cols int, seed int64) *gridgraph.Graph {
	t.Helper()
	g, err := gridgraph.NewSpanningTree(rows, cols, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return g
}

// positions inverts a traversal and fails unless it is a permutation.
func positions(t *testing.T, g *gridgraph.Graph, order []int) []int {
	t.Helper()
	require.Len(t, order, g.Len())
	pos := make([]int, g.Len())
	for i := range pos {
		pos[i] = -1
	}
	for i, v := range order {
		require.True(t, v >= 0 && v < g.Len(), "index %d out of range", v)
		require.Equal(t, -1, pos[v], "node %d visited twice", v)
		pos[v] = i
	}
	return pos
}

// subtreeSizes counts nodes per subtree by walking a preorder backwards.
func subtreeSizes(g *gridgraph.Graph, pre []int) []int {
	size := make([]int, g.Len())
	for i := len(pre) - 1; i >= 0; i-- {
		v := pre[i]
		size[v]++
		if p, ok := g.Parent(v); ok {
			size[p] += size[v]
		}
	}
	return size
}

//----------------------------------------------------------------------------//
// Errors and dispatch
//----------------------------------------------------------------------------//

func TestTraversals_NotSpanned(t *testing.T) {
	g, err := gridgraph.New(4, 4)
	require.NoError(t, err)

	_, err = g.DFS()
	assert.ErrorIs(t, err, gridgraph.ErrNotSpanned)
	_, err = g.SDFS()
	assert.ErrorIs(t, err, gridgraph.ErrNotSpanned)
	_, err = g.BFS()
	assert.ErrorIs(t, err, gridgraph.ErrNotSpanned)
	_, err = g.SubtreeHeights()
	assert.ErrorIs(t, err, gridgraph.ErrNotSpanned)
	_, err = g.Depths()
	assert.ErrorIs(t, err, gridgraph.ErrNotSpanned)
	_, err = g.Traverse(gridgraph.BreadthFirst)
	assert.ErrorIs(t, err, gridgraph.ErrNotSpanned)
}

func TestTraverse_Dispatch(t *testing.T) {
	g := spanned(t, 9, 11, 3)

	dfs, err := g.DFS()
	require.NoError(t, err)
	sdfs, err := g.SDFS()
	require.NoError(t, err)
	bfs, err := g.BFS()
	require.NoError(t, err)

	for o, want := range map[gridgraph.Order][]int{
		gridgraph.PreorderDFS:      dfs,
		gridgraph.ShortestFirstDFS: sdfs,
		gridgraph.BreadthFirst:     bfs,
	} {
		got, err := g.Traverse(o)
		require.NoError(t, err)
		assert.Equal(t, want, got, "order %v", o)
	}

	_, err = g.Traverse(gridgraph.Order(99))
	assert.ErrorIs(t, err, gridgraph.ErrUnknownOrder)
}

func TestParseOrder(t *testing.T) {
	for s, want := range map[string]gridgraph.Order{
		"sdfs":  gridgraph.ShortestFirstDFS,
		"dfs":   gridgraph.PreorderDFS,
		" BFS ": gridgraph.BreadthFirst,
	} {
		got, err := gridgraph.ParseOrder(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got)
		back, err := gridgraph.ParseOrder(got.String())
		require.NoError(t, err)
		assert.Equal(t, got, back)
	}
	_, err := gridgraph.ParseOrder("zigzag")
	assert.ErrorIs(t, err, gridgraph.ErrUnknownOrder)
	assert.Equal(t, gridgraph.ShortestFirstDFS, gridgraph.Order(0))
}

//----------------------------------------------------------------------------//
// Orders
//----------------------------------------------------------------------------//

func TestTraversals_SingleCell(t *testing.T) {
	g := spanned(t, 1, 1, 1)
	for _, o := range []gridgraph.Order{gridgraph.PreorderDFS, gridgraph.ShortestFirstDFS, gridgraph.BreadthFirst} {
		order, err := g.Traverse(o)
		require.NoError(t, err)
		assert.Equal(t, []int{0}, order, "order %v", o)
	}
}

// TestDFS_Preorder checks that each subtree occupies a contiguous run
// starting at its root, which is exactly the preorder property.
func TestDFS_Preorder(t *testing.T) {
	for _, o := range []gridgraph.Order{gridgraph.PreorderDFS, gridgraph.ShortestFirstDFS} {
		g := spanned(t, 24, 31, 17)
		order, err := g.Traverse(o)
		require.NoError(t, err)
		pos := positions(t, g, order)
		assert.Equal(t, g.Root(), order[0])

		size := subtreeSizes(g, order)
		assert.Equal(t, g.Len(), size[g.Root()])
		for v := 0; v < g.Len(); v++ {
			p, ok := g.Parent(v)
			if !ok {
				continue
			}
			require.Less(t, pos[p], pos[v], "%v: parent after child", o)
			require.LessOrEqual(t, pos[v]+size[v], pos[p]+size[p], "%v: subtree of %d escapes its parent", o, v)
		}
	}
}

func TestDFS_LastChildFirst(t *testing.T) {
	g := spanned(t, 12, 12, 8)
	order, err := g.DFS()
	require.NoError(t, err)
	pos := positions(t, g, order)

	for v := 0; v < g.Len(); v++ {
		kids := g.Children(v)
		for i := 1; i < len(kids); i++ {
			assert.Greater(t, pos[kids[i-1]], pos[kids[i]], "node %d", v)
		}
	}
}

func TestSubtreeHeights(t *testing.T) {
	g := spanned(t, 15, 10, 21)
	h, err := g.SubtreeHeights()
	require.NoError(t, err)
	require.Len(t, h, g.Len())

	for v := 0; v < g.Len(); v++ {
		kids := g.Children(v)
		if len(kids) == 0 {
			assert.Zero(t, h[v], "leaf %d", v)
			continue
		}
		var tallest int32
		for _, c := range kids {
			tallest = max(tallest, h[c])
		}
		assert.Equal(t, tallest+1, h[v], "node %d", v)
	}
}

// TestSDFS_ShortestFirst checks that siblings are entered in order of
// non-decreasing subtree height.
func TestSDFS_ShortestFirst(t *testing.T) {
	g := spanned(t, 30, 30, 4)
	order, err := g.SDFS()
	require.NoError(t, err)
	pos := positions(t, g, order)
	h, err := g.SubtreeHeights()
	require.NoError(t, err)

	checked := 0
	for v := 0; v < g.Len(); v++ {
		kids := g.Children(v)
		if len(kids) < 2 {
			continue
		}
		checked++
		// sort by visit position
		for i := 1; i < len(kids); i++ {
			for j := i; j > 0 && pos[kids[j]] < pos[kids[j-1]]; j-- {
				kids[j], kids[j-1] = kids[j-1], kids[j]
			}
		}
		for i := 1; i < len(kids); i++ {
			assert.LessOrEqual(t, h[kids[i-1]], h[kids[i]], "node %d", v)
		}
	}
	assert.Positive(t, checked, "tree has no branching node")
}

func TestBFS_DepthNonDecreasing(t *testing.T) {
	g := spanned(t, 20, 25, 6)
	order, err := g.BFS()
	require.NoError(t, err)
	pos := positions(t, g, order)
	depth, err := g.Depths()
	require.NoError(t, err)

	assert.Equal(t, g.Root(), order[0])
	assert.Zero(t, depth[g.Root()])
	for i := 1; i < len(order); i++ {
		require.LessOrEqual(t, depth[order[i-1]], depth[order[i]], "position %d", i)
	}
	for v := 0; v < g.Len(); v++ {
		if p, ok := g.Parent(v); ok {
			assert.Equal(t, depth[p]+1, depth[v])
			assert.Less(t, pos[p], pos[v])
		}
	}
}

func TestTraversals_SameNodeSet(t *testing.T) {
	g := spanned(t, 17, 13, 99)
	for _, o := range []gridgraph.Order{gridgraph.PreorderDFS, gridgraph.ShortestFirstDFS, gridgraph.BreadthFirst} {
		order, err := g.Traverse(o)
		require.NoError(t, err)
		positions(t, g, order)
	}
}

func TestTraversals_Repeatable(t *testing.T) {
	g := spanned(t, 10, 10, 12)
	a, err := g.SDFS()
	require.NoError(t, err)
	b, err := g.SDFS()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
