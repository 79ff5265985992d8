package trampoline

import (
	"go.lepak.sg/inorder/chops"
	"go.lepak.sg/inorder/tree"
)

// step is one bounce of the lazy trampoline. It may carry a value,
// which the driver yields before calling next. A nil *step means the
// traversal is finished.
type step[T any] struct {
	value T
	ok    bool
	next  func() *step[T]
}

func lazy[T any](n *tree.Node[T], k func() *step[T]) *step[T] {
	if n == nil {
		return k()
	}
	return &step[T]{
		next: func() *step[T] {
			return lazy(n.Left, lazyAfterLeft(n, k))
		},
	}
}

// lazyAfterLeft emits n's value. Only on the bounce after that does
// the traversal move into the right subtree.
func lazyAfterLeft[T any](n *tree.Node[T], k func() *step[T]) func() *step[T] {
	return func() *step[T] {
		return &step[T]{
			value: n.Value,
			ok:    true,
			next: func() *step[T] {
				return lazy(n.Right, lazyAfterRight(k))
			},
		}
	}
}

// lazyAfterRight only needs to know where to go next.
func lazyAfterRight[T any](k func() *step[T]) func() *step[T] {
	return func() *step[T] {
		return &step[T]{
			next: k,
		}
	}
}

func lazyFinish[T any]() *step[T] {
	return nil
}

var _ chops.Iterator[int] = (*Lazy[int])(nil)

// Lazy is an iterator that runs the CPS traversal only as far as
// needed to produce the next value. Nothing is computed until the
// first call to Next.
//
//	i := trampoline.NewLazy(root)
//	for i.Next() {
//		v := i.Item()
//		... do stuff with v, or break ...
//	}
//
// The iterator may be abandoned at any time; it holds nothing but
// closures.
type Lazy[T any] struct {
	next func() *step[T]
	item T
}

// NewLazy returns a new Lazy iterator over the tree rooted at root.
func NewLazy[T any](root *tree.Node[T]) *Lazy[T] {
	return &Lazy[T]{
		next: func() *step[T] {
			return lazy(root, lazyFinish[T])
		},
	}
}

// Next returns true if there is a next value to yield with Item.
// Next must always be called before Item.
func (l *Lazy[T]) Next() bool {
	for l.next != nil {
		th := l.next
		l.next = nil // thunks are single use

		s := th()
		if s == nil {
			return false
		}

		l.next = s.next
		if s.ok {
			l.item = s.value
			return true
		}
	}
	return false
}

// Item returns the value found by the last call to Next.
func (l *Lazy[T]) Item() T {
	return l.item
}

// Walk applies f to each value in the tree in-order.
// If f returns false, the traversal is stopped early and the rest of
// the tree is never visited.
func Walk[T any](root *tree.Node[T], f func(T) bool) {
	l := NewLazy(root)
	for l.Next() {
		if !f(l.Item()) {
			return
		}
	}
}

// Collect returns the values of the tree in order, using Lazy.
func Collect[T any](root *tree.Node[T]) []T {
	out := make([]T, 0)
	Walk(root, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
