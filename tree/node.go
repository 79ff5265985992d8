// Package tree provides the binary tree node shared by all
// traversal packages, along with builders and a reference
// (recursive) in-order traversal to test them against.
package tree

// Node is a binary tree node. A nil *Node is the empty tree.
//
// Parent and Thread are auxiliary, non-owning links:
//   - Parent is only set for parent-linked trees (see NewLinked
//     and LinkParents). It always points back up, never down.
//   - Thread is nil until morris.Thread installs in-order successor
//     links. It is never used by anything except threaded traversal.
//
// The tree is owned by its Left and Right links. A well-formed tree
// has no node reachable twice through Left/Right, and exactly one
// node (the root) has no Parent if the tree is parent-linked.
// None of this is checked.
type Node[T any] struct {
	Value               T
	Left, Right, Parent *Node[T]
	Thread              *Node[T]
}

// New creates a plain node with optional children.
// Children are not modified, so their Parent links are left alone.
func New[T any](v T, left, right *Node[T]) *Node[T] {
	return &Node[T]{
		Value: v,
		Left:  left,
		Right: right,
	}
}

// Leaf creates a childless node.
func Leaf[T any](v T) *Node[T] {
	return &Node[T]{
		Value: v,
	}
}

// NewLinked creates a parent-linked node. Any supplied children
// get their Parent set to the new node.
func NewLinked[T any](v T, left, right *Node[T]) *Node[T] {
	n := New(v, left, right)
	if left != nil {
		left.Parent = n
	}
	if right != nil {
		right.Parent = n
	}
	return n
}

// LinkParents sets the Parent link of every node under root, and
// clears the root's Parent. It returns root.
func LinkParents[T any](root *Node[T]) *Node[T] {
	if root == nil {
		return nil
	}

	root.Parent = nil
	pending := []*Node[T]{root}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if n.Left != nil {
			n.Left.Parent = n
			pending = append(pending, n.Left)
		}
		if n.Right != nil {
			n.Right.Parent = n
			pending = append(pending, n.Right)
		}
	}

	return root
}

// Sample returns a fresh parent-linked copy of the tree
//
//	A(B(D(_,H),E), C(F, G(I,J)))
//
// whose in-order traversal is D H B E A F C I G J.
func Sample() *Node[string] {
	return NewLinked("A",
		NewLinked("B",
			NewLinked("D", nil, Leaf("H")),
			Leaf("E")),
		NewLinked("C",
			Leaf("F"),
			NewLinked("G", Leaf("I"), Leaf("J"))),
	)
}

// SampleInOrder is the in-order traversal of Sample.
var SampleInOrder = []string{"D", "H", "B", "E", "A", "F", "C", "I", "G", "J"}
