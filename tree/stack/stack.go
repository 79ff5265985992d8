// Package stack traverses trees in order with an explicit work list
// instead of the call stack.
//
// Recursive in order traversal looks like this:
//
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)
//		f(n)
//		visit(n.Right, f)
//	}
//
// Each call to visit becomes a Traverse frame, and each call to f
// becomes an Emit frame. Expanding a Traverse frame pushes the body of
// visit in reverse, so that popping runs it forwards.
package stack

import (
	"go.lepak.sg/inorder/chops"
	"go.lepak.sg/inorder/tree"
)

// Op is what to do with the node in a Frame.
type Op int

const (
	// Traverse expands the subtree rooted at the node.
	Traverse Op = iota
	// Emit yields the node's value.
	Emit
)

func (o Op) String() string {
	switch o {
	case Traverse:
		return "Traverse"
	case Emit:
		return "Emit"
	default:
		return "<invalid stack.Op>"
	}
}

// Frame is one entry of the work list. Node may be nil for Traverse.
type Frame[T any] struct {
	Op   Op
	Node *tree.Node[T]
}

// Machine is the work list and the loop that consumes it.
// The zero Machine has nothing to do.
type Machine[T any] struct {
	frames []Frame[T]
}

// NewMachine returns a Machine ready to traverse the tree rooted at
// root. If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewMachine[T any](root *tree.Node[T], heightHint int) *Machine[T] {
	// The work list holds at most two frames per level, plus one.
	m := &Machine[T]{
		frames: make([]Frame[T], 0, 2*heightHint+1),
	}
	m.push(Traverse, root)
	return m
}

func (m *Machine[T]) push(op Op, n *tree.Node[T]) {
	m.frames = append(m.frames, Frame[T]{op, n})
}

// Len returns the number of frames waiting on the work list.
func (m *Machine[T]) Len() int {
	return len(m.frames)
}

// Step pops one frame and runs it. If the frame emitted a value,
// emitted is true and value holds it. more is false once the work list
// is empty, after which Step does nothing.
func (m *Machine[T]) Step() (value T, emitted, more bool) {
	if len(m.frames) == 0 {
		return value, false, false
	}

	f := m.frames[len(m.frames)-1]
	m.frames[len(m.frames)-1] = Frame[T]{}
	m.frames = m.frames[:len(m.frames)-1]

	switch f.Op {
	case Emit:
		value, emitted = f.Node.Value, true
	case Traverse:
		if f.Node != nil {
			m.push(Traverse, f.Node.Right)
			m.push(Emit, f.Node)
			m.push(Traverse, f.Node.Left)
		}
	default:
		panic("unhandled op " + f.Op.String())
	}

	return value, emitted, len(m.frames) > 0
}

// Walk applies f to each value in the tree in-order.
// If f returns false, the traversal is stopped early.
func Walk[T any](root *tree.Node[T], f func(T) bool) {
	m := NewMachine(root, 0)
	for more := true; more; {
		var v T
		var ok bool
		v, ok, more = m.Step()
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

// Iterator is an iterator object over a binary tree. It is
// functionally equivalent to parent.Iterator, but this does not rely
// on the node parent pointer, instead keeping a Machine.
// The iterator may be abandoned at any time.
type Iterator[T any] struct {
	m    *Machine[T]
	item T
}

// NewIterator creates a new in-order iterator.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewIterator[T any](root *tree.Node[T], heightHint int) *Iterator[T] {
	return &Iterator[T]{
		m: NewMachine(root, heightHint),
	}
}

// Next returns true if there is a next value to yield with Item.
// Next must always be called before Item.
func (i *Iterator[T]) Next() bool {
	for i.m.Len() > 0 {
		v, ok, _ := i.m.Step()
		if ok {
			i.item = v
			return true
		}
	}
	return false
}

// Item returns the value found by the last call to Next.
func (i *Iterator[T]) Item() T {
	return i.item
}
