package must

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/inorder/tree"
)

func Test2(t *testing.T) {
	var root *tree.Node[int]

	assert.PanicsWithError(t, tree.ErrLengthMismatch.Error(), func() {
		root = Must2(tree.FromPreAndInOrder([]int{1, 2}, []int{1}))
	})

	assert.Nil(t, root)

	root = Must2(tree.FromPreAndInOrder([]int{2, 1}, []int{1, 2}))

	assert.Equal(t, 2, root.Value)
	assert.Equal(t, 1, root.Left.Value)
}
