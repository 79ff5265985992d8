package trampoline

import (
	"go.lepak.sg/inorder/tree"
)

// InOrder returns the values of the tree in order. Values are
// appended to one shared slice by the continuations, and the slice is
// handed to the final continuation when the traversal finishes.
func InOrder[T any](root *tree.Node[T]) []T {
	acc := make([]T, 0)
	return Run(accumulate(root, &acc, func() Bounce[[]T] {
		return Done(acc)
	}))
}

// accumulate traverses n, then calls k. The traversal itself is
// deferred to a thunk so that the caller's frame can return first.
func accumulate[T any](n *tree.Node[T], acc *[]T, k Thunk[[]T]) Bounce[[]T] {
	return More(func() Bounce[[]T] {
		if n == nil {
			return k()
		}
		return accumulate(n.Left, acc, accumulateAfterLeft(n, acc, k))
	})
}

// accumulateAfterLeft makes the continuation for when n's left subtree
// is done: record n, then traverse the right subtree straight into k.
func accumulateAfterLeft[T any](n *tree.Node[T], acc *[]T, k Thunk[[]T]) Thunk[[]T] {
	return func() Bounce[[]T] {
		*acc = append(*acc, n.Value)
		return accumulate(n.Right, acc, k)
	}
}

// Cont is a continuation receiving the values of a finished subtree.
type Cont[T any] func(values []T) Bounce[[]T]

// InOrderConcat returns the values of the tree in order. No state is
// shared between continuations: each subtree's values are passed to
// its continuation, which joins left, node and right and passes the
// result on. Every slice is passed on exactly once, so joining may
// reuse the left slice's storage.
//
// Joining copies each value once per level above it, so this takes
// O(n * height) time, against O(n) for InOrder.
func InOrderConcat[T any](root *tree.Node[T]) []T {
	return Run(concat(root, func(values []T) Bounce[[]T] {
		if values == nil {
			values = make([]T, 0)
		}
		return Done(values)
	}))
}

func concat[T any](n *tree.Node[T], k Cont[T]) Bounce[[]T] {
	return More(func() Bounce[[]T] {
		if n == nil {
			return k(nil)
		}
		return concat(n.Left, concatAfterLeft(n, k))
	})
}

// concatAfterLeft captures the node and the continuation to run after
// the right subtree.
func concatAfterLeft[T any](n *tree.Node[T], k Cont[T]) Cont[T] {
	return func(left []T) Bounce[[]T] {
		left = append(left, n.Value)
		return More(func() Bounce[[]T] {
			return concat(n.Right, concatAfterRight(left, k))
		})
	}
}

func concatAfterRight[T any](left []T, k Cont[T]) Cont[T] {
	return func(right []T) Bounce[[]T] {
		return More(func() Bounce[[]T] {
			return k(append(left, right...))
		})
	}
}
