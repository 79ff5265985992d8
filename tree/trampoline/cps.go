package trampoline

import (
	"go.lepak.sg/inorder/tree"
)

// InOrderCPS returns the values of the tree in order, in plain
// continuation-passing style with no trampoline. It is the form the
// other traversals in this package are derived from.
//
// Every call is made from inside the previous one, so the goroutine
// stack grows with the size of the tree, not just its height. Go
// grows stacks on demand, so this works until the stack limit
// (runtime/debug.SetMaxStack) is hit, after which the program dies
// without a chance to recover.
func InOrderCPS[T any](root *tree.Node[T]) []T {
	acc := make([]T, 0)
	cps(root, &acc, func() {})
	return acc
}

func cps[T any](n *tree.Node[T], acc *[]T, k func()) {
	if n == nil {
		k()
		return
	}
	cps(n.Left, acc, func() {
		*acc = append(*acc, n.Value)
		cps(n.Right, acc, k)
	})
}
