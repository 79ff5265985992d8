package morris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/inorder/tree"
)

func threads[T any](root *tree.Node[T]) map[*tree.Node[T]]*tree.Node[T] {
	out := make(map[*tree.Node[T]]*tree.Node[T])
	for n := range snapshot(root) {
		out[n] = n.Thread
	}
	return out
}

func TestThread(t *testing.T) {
	s := tree.Sample()
	before := snapshot(s)

	Thread(s)
	assert.Equal(t, before, snapshot(s), "shape changed")

	// D -> H -> B -> E -> A -> F -> C -> I -> G -> J
	d, h, b, e := s.Left.Left, s.Left.Left.Right, s.Left, s.Left.Right
	c, f, g := s.Right, s.Right.Left, s.Right.Right
	i, j := g.Left, g.Right
	assert.Same(t, h, d.Thread)
	assert.Same(t, b, h.Thread)
	assert.Same(t, e, b.Thread)
	assert.Same(t, s, e.Thread)
	assert.Same(t, f, s.Thread)
	assert.Same(t, c, f.Thread)
	assert.Same(t, i, c.Thread)
	assert.Same(t, g, i.Thread)
	assert.Same(t, j, g.Thread)
	assert.Nil(t, j.Thread)

	assert.Equal(t, tree.SampleInOrder, ThreadedInOrder(s))
	assert.Equal(t, tree.SampleInOrder, ThreadedInOrder(s), "threaded traversal is repeatable")
}

func TestThread_Idempotent(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		root := tree.BuildRandom(100, seed)

		Thread(root)
		once := threads(root)
		Thread(root)
		assert.Equal(t, once, threads(root), "seed %d", seed)
		assert.Equal(t, tree.InOrder(root), ThreadedInOrder(root), "seed %d", seed)
	}
}

func TestThread_AfterMutation(t *testing.T) {
	root := tree.NewLinked(2, tree.Leaf(1), nil)
	Thread(root)
	require.Equal(t, []int{1, 2}, ThreadedInOrder(root))

	// stale threads until Thread runs again
	root.Right = tree.Leaf(3)
	assert.Equal(t, []int{1, 2}, ThreadedInOrder(root))

	Thread(root)
	assert.Equal(t, []int{1, 2, 3}, ThreadedInOrder(root))

	// the old last node is no longer last
	root.Right = nil
	Thread(root)
	assert.Nil(t, root.Thread)
	assert.Equal(t, []int{1, 2}, ThreadedInOrder(root))
}

func TestThreadedInOrder_Unthreaded(t *testing.T) {
	// documented: without Thread, only the leftmost value comes out
	assert.Equal(t, []string{"D"}, ThreadedInOrder(tree.Sample()))
}

func TestThreadedInOrder_Edges(t *testing.T) {
	Thread[string](nil)
	assert.Equal(t, []string{}, ThreadedInOrder[string](nil))

	one := tree.Leaf("A")
	Thread(one)
	assert.Nil(t, one.Thread)
	assert.Equal(t, []string{"A"}, ThreadedInOrder(one))
}

func TestThreads(t *testing.T) {
	tests := []struct {
		name   string
		create func() *tree.Node[string]
		want   []string
	}{
		{
			name:   "empty",
			create: func() *tree.Node[string] { return nil },
		},
		{
			name:   "one",
			create: func() *tree.Node[string] { return tree.Leaf("A") },
			want:   []string{"A"},
		},
		{
			name:   "sample",
			create: tree.Sample,
			want:   tree.SampleInOrder,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := tt.create()
			Thread(root)

			var got []string
			i := NewThreads(root)
			for i.Next() {
				got = append(got, i.Item())
			}
			assert.Equal(t, tt.want, got)
			assert.False(t, i.Next(), "exhausted iterator")
		})
	}
}

func TestThreads_Deep(t *testing.T) {
	const depth = 100000
	root := tree.BuildDegenerate(depth, tree.LeanLeft)
	Thread(root)

	count := 0
	i := NewThreads(root)
	for i.Next() {
		require.Equal(t, count, i.Item())
		count++
	}
	assert.Equal(t, depth, count)
}
