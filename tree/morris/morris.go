// Package morris traverses trees in order with O(1) extra memory,
// by temporarily pointing the empty Right link of each in-order
// predecessor back at its successor (Morris, "Traversing binary trees
// simply and cheaply", 1979).
//
// The transient form (InOrder, Walk) removes every such link before it
// returns. The persistent form (Thread, ThreadedInOrder) records the
// successors in the separate Thread field, so that later traversals
// are a simple linked list walk.
//
// None of these functions are safe to call on a tree that is being
// read or written by anything else at the same time, including a
// read-only traversal: the Right links are rewritten while walking.
package morris

import (
	"go.lepak.sg/inorder/tree"
)

// rightmost follows Right links from n until it finds a node whose
// Right is nil or sentinel. That node is the in-order predecessor of
// sentinel when n is sentinel's left child.
func rightmost[T any](n, sentinel *tree.Node[T]) *tree.Node[T] {
	for n.Right != nil && n.Right != sentinel {
		n = n.Right
	}
	return n
}

// leftmost follows Left links from n and returns the last node found,
// or nil for the empty tree.
func leftmost[T any](n *tree.Node[T]) *tree.Node[T] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// walk is the Morris traversal. visit is called with each node as it
// is finished, in order. Right links are only borrowed: every link
// installed on the way down is removed on the way back up.
func walk[T any](n *tree.Node[T], visit func(*tree.Node[T])) {
	for n != nil {
		if n.Left == nil {
			// can't go left, so emit and go right
			visit(n)
			n = n.Right
			continue
		}

		pred := rightmost(n.Left, n)
		if pred.Right == n {
			// we came back up through the link we installed,
			// so the left subtree is done
			pred.Right = nil
			visit(n)
			n = n.Right
		} else {
			// first visit: remember the way back, then go left
			pred.Right = n
			n = n.Left
		}
	}
}

// Walk applies f to each value in the tree in-order.
// If f returns false, f is not called again, but the walk still runs
// to the end so that the tree is restored to its original shape.
//
// If f panics, the tree is left with some Right links pointing back
// up the tree and must be considered corrupted.
func Walk[T any](root *tree.Node[T], f func(T) bool) {
	emitting := true
	walk(root, func(n *tree.Node[T]) {
		if emitting {
			emitting = f(n.Value)
		}
	})
}

// InOrder returns the values of the tree in order. The tree is
// modified during the traversal, and restored before InOrder returns.
func InOrder[T any](root *tree.Node[T]) []T {
	out := make([]T, 0)
	walk(root, func(n *tree.Node[T]) {
		out = append(out, n.Value)
	})
	return out
}

// Height returns the height of the tree (0 for the empty tree, 1 for
// a single node) using a Morris walk, so without recursion or a stack.
func Height[T any](root *tree.Node[T]) int {
	depth, height := 0, 0
	n := root
	for n != nil {
		if n.Left == nil {
			n = n.Right
			depth++
			if depth > height {
				height = depth
			}
			continue
		}

		// delta is how far pred sits below n
		pred, delta := n.Left, 1
		for pred.Right != nil && pred.Right != n {
			pred = pred.Right
			delta++
		}

		if pred.Right == nil {
			pred.Right = n
			n = n.Left
			depth++
			if depth > height {
				height = depth
			}
		} else {
			pred.Right = nil
			n = n.Right
			depth -= delta
		}
	}
	return height
}
