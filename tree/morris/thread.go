package morris

import (
	"go.lepak.sg/inorder/chops"
	"go.lepak.sg/inorder/tree"
)

// Thread sets the Thread link of every node in the tree to its
// in-order successor. The last node's Thread is set to nil.
// Left and Right are borrowed during the walk exactly as in InOrder,
// and are restored before Thread returns.
//
// Running Thread again on a tree that hasn't changed produces the same
// links. After the tree's shape changes, Thread must be run again
// before ThreadedInOrder is meaningful.
func Thread[T any](root *tree.Node[T]) {
	var prev *tree.Node[T]
	walk(root, func(n *tree.Node[T]) {
		if prev != nil {
			prev.Thread = n
		}
		prev = n
	})
	if prev != nil {
		prev.Thread = nil
	}
}

// ThreadedInOrder returns the values of a threaded tree in order by
// following Thread links from the leftmost node. It doesn't modify the
// tree and may be called any number of times.
//
// Thread must have been called on the tree first. This is not checked:
// on an unthreaded tree, only the leftmost value is returned.
func ThreadedInOrder[T any](root *tree.Node[T]) []T {
	out := make([]T, 0)
	for n := leftmost(root); n != nil; n = n.Thread {
		out = append(out, n.Value)
	}
	return out
}

var _ chops.Iterator[int] = (*Threads[int])(nil)

// Threads is an iterator over a tree that has been prepared with
// Thread. Like ThreadedInOrder, it is only a walk down a linked list.
// The iterator may be abandoned at any time.
type Threads[T any] struct {
	root, at *tree.Node[T]
	started  bool
}

// NewThreads returns a new Threads iterator over the tree rooted at
// root, which must already be threaded.
func NewThreads[T any](root *tree.Node[T]) *Threads[T] {
	return &Threads[T]{
		root: root,
	}
}

// Next returns true if there is a next value to yield with Item.
// Next must always be called before Item.
func (i *Threads[T]) Next() bool {
	if !i.started {
		i.started = true
		i.at = leftmost(i.root)
	} else if i.at != nil {
		i.at = i.at.Thread
	}
	return i.at != nil
}

// Item returns the current value of the iterator.
func (i *Threads[T]) Item() T {
	return i.at.Value
}
