package morris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/inorder/tree"
)

type links[T any] struct {
	left, right, parent *tree.Node[T]
}

// snapshot records every node's Left, Right and Parent pointers,
// so that pointer-for-pointer restoration can be checked.
func snapshot[T any](root *tree.Node[T]) map[*tree.Node[T]]links[T] {
	out := make(map[*tree.Node[T]]links[T])
	pending := []*tree.Node[T]{root}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if n == nil {
			continue
		}
		out[n] = links[T]{n.Left, n.Right, n.Parent}
		pending = append(pending, n.Left, n.Right)
	}
	return out
}

func TestRightmost(t *testing.T) {
	s := tree.Sample()
	b, e := s.Left, s.Left.Right

	assert.Same(t, e, rightmost(b, s))
	e.Right = s
	assert.Same(t, e, rightmost(b, s), "stops at sentinel")
	e.Right = nil

	j := s.Right.Right.Right
	assert.Same(t, j, rightmost(s, nil))
}

func TestLeftmost(t *testing.T) {
	s := tree.Sample()
	assert.Nil(t, leftmost[string](nil))
	assert.Same(t, s.Left.Left, leftmost(s))
	assert.Same(t, s.Right.Left, leftmost(s.Right))
}

func TestInOrder(t *testing.T) {
	tests := []struct {
		name   string
		create func() *tree.Node[string]
		want   []string
	}{
		{
			name:   "empty",
			create: func() *tree.Node[string] { return nil },
			want:   []string{},
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
		{
			name: "left only",
			create: func() *tree.Node[string] {
				return tree.New("C", tree.New("B", tree.Leaf("A"), nil), nil)
			},
			want: []string{"A", "B", "C"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := tt.create()
			before := snapshot(root)
			assert.Equal(t, tt.want, InOrder(root))
			assert.Equal(t, before, snapshot(root), "tree was not restored")
		})
	}
}

func TestInOrder_Random(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		root := tree.BuildRandom(200, seed)
		orig := tree.Clone(root)
		before := snapshot(root)

		require.Equal(t, tree.InOrder(root), InOrder(root), "seed %d", seed)
		require.Equal(t, before, snapshot(root), "seed %d", seed)
		require.True(t, tree.EqualShape(orig, root), "seed %d", seed)
	}
}

func TestInOrder_Deep(t *testing.T) {
	const depth = 100000
	for _, dir := range []tree.Direction{tree.LeanLeft, tree.LeanRight} {
		got := InOrder(tree.BuildDegenerate(depth, dir))
		require.Len(t, got, depth)
		assert.Equal(t, depth-1, got[depth-1])
	}
}

func TestWalk_StopRestores(t *testing.T) {
	s := tree.Sample()
	before := snapshot(s)

	var got []string
	calls := 0
	Walk(s, func(v string) bool {
		calls++
		got = append(got, v)
		return v != "B"
	})

	assert.Equal(t, []string{"D", "H", "B"}, got)
	assert.Equal(t, 3, calls, "f called after it returned false")
	assert.Equal(t, before, snapshot(s), "tree was not restored")
}

func TestHeight(t *testing.T) {
	assert.Equal(t, 0, Height[int](nil))
	assert.Equal(t, 1, Height(tree.Leaf(1)))
	assert.Equal(t, 4, Height(tree.Sample()))
	assert.Equal(t, 1000, Height(tree.BuildDegenerate(1000, tree.LeanLeft)))
	assert.Equal(t, 1000, Height(tree.BuildDegenerate(1000, tree.LeanRight)))

	var height func(n *tree.Node[int]) int
	height = func(n *tree.Node[int]) int {
		if n == nil {
			return 0
		}
		l, r := height(n.Left), height(n.Right)
		if l > r {
			return l + 1
		}
		return r + 1
	}

	for seed := int64(0); seed < 20; seed++ {
		root := tree.BuildRandom(100, seed)
		before := snapshot(root)
		require.Equal(t, height(root), Height(root), "seed %d", seed)
		require.Equal(t, before, snapshot(root), "seed %d", seed)
	}
}
