// Package parent traverses parent-linked trees in order without a
// stack, by following Parent links back up the tree.
//
// The traversal is a pure state machine: Step maps one State to the
// next, optionally emitting a value. Only the State pair is kept
// between steps, and the tree is never modified.
package parent

import (
	"go.lepak.sg/inorder/chops"
	"go.lepak.sg/inorder/tree"
)

// State is the position of a traversal. If Descending is true, the
// traversal may still go left from Node. Once it has come back up to
// Node from its left subtree, Descending is false.
// The zero State is terminal.
type State[T any] struct {
	Descending bool
	Node       *tree.Node[T]
}

// Start returns the initial state of a traversal of the tree rooted
// at root.
func Start[T any](root *tree.Node[T]) State[T] {
	return State[T]{
		Descending: true,
		Node:       root,
	}
}

// Done returns true if there are no more steps to take.
func (s State[T]) Done() bool {
	return s.Node == nil
}

// Step takes one step of the traversal. If the step emits a value,
// emitted is true and value holds it.
// Stepping a Done state returns the same state and emits nothing.
func Step[T any](s State[T]) (next State[T], value T, emitted bool) {
	n := s.Node
	switch {
	case n == nil:
		return s, value, false

	case s.Descending && n.Left != nil:
		// go left as far as we can before emitting anything
		return State[T]{true, n.Left}, value, false

	case n.Right != nil:
		// left is done (or absent): emit, then start over
		// in the right subtree
		return State[T]{true, n.Right}, n.Value, true

	default:
		// A leaf, or a node whose left subtree is done and that has no
		// right subtree. Either way this subtree is finished. Climb as
		// long as we are a right child: those ancestors were emitted
		// already. The next ancestor is reached from its left.
		value = n.Value
		for n.Parent != nil && n.Parent.Right == n {
			n = n.Parent
		}
		return State[T]{false, n.Parent}, value, true
	}
}

// Walk applies f to each value in the tree in-order.
// If f returns false, the traversal is stopped early.
func Walk[T any](root *tree.Node[T], f func(T) bool) {
	s := Start(root)
	for !s.Done() {
		var v T
		var ok bool
		s, v, ok = Step(s)
		if ok && !f(v) {
			return
		}
	}
}

// InOrder returns the values of the tree in order.
func InOrder[T any](root *tree.Node[T]) []T {
	out := make([]T, 0)
	Walk(root, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

var _ chops.Iterator[int] = (*Iterator[int])(nil)

// Iterator is an iterator object over a parent-linked tree.
// The usage should be pretty familiar:
//
//	i := parent.NewIterator(root)
//	for i.Next() {
//		v := i.Item()
//		... do stuff with v, or break ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type Iterator[T any] struct {
	state State[T]
	item  T
}

// NewIterator returns a new Iterator over the tree rooted at root.
func NewIterator[T any](root *tree.Node[T]) *Iterator[T] {
	return &Iterator[T]{
		state: Start(root),
	}
}

// Next returns true if there is a next value to yield with Item.
// Next must always be called before Item.
func (i *Iterator[T]) Next() bool {
	for !i.state.Done() {
		var ok bool
		i.state, i.item, ok = Step(i.state)
		if ok {
			return true
		}
	}
	return false
}

// Item returns the value found by the last call to Next.
func (i *Iterator[T]) Item() T {
	return i.item
}
