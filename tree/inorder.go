package tree

// InOrder returns the values of the tree in order, using plain
// recursion. This is the definition every other traversal is
// checked against, so it is kept as simple as possible. Very deep
// trees will grow the goroutine stack accordingly.
func InOrder[T any](root *Node[T]) []T {
	out := make([]T, 0)
	visitInOrder(root, &out)
	return out
}

func visitInOrder[T any](n *Node[T], out *[]T) {
	if n == nil {
		return
	}
	visitInOrder(n.Left, out)
	*out = append(*out, n.Value)
	visitInOrder(n.Right, out)
}

// Len returns the number of nodes in the tree.
func Len[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}

	count := 0
	pending := []*Node[T]{root}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		count++

		if n.Left != nil {
			pending = append(pending, n.Left)
		}
		if n.Right != nil {
			pending = append(pending, n.Right)
		}
	}

	return count
}

type clonePair[T any] struct {
	from, to *Node[T]
}

// Clone returns a deep copy of the Left/Right structure of the tree.
// Parent links in the copy are always set, whether or not the
// original was parent-linked. Thread links are not copied.
func Clone[T any](root *Node[T]) *Node[T] {
	if root == nil {
		return nil
	}

	out := Leaf(root.Value)
	pending := []clonePair[T]{{root, out}}
	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if p.from.Left != nil {
			p.to.Left = Leaf(p.from.Left.Value)
			p.to.Left.Parent = p.to
			pending = append(pending, clonePair[T]{p.from.Left, p.to.Left})
		}
		if p.from.Right != nil {
			p.to.Right = Leaf(p.from.Right.Value)
			p.to.Right.Parent = p.to
			pending = append(pending, clonePair[T]{p.from.Right, p.to.Right})
		}
	}

	return out
}

// EqualShape reports whether a and b have the same shape (following
// Left and Right only) and the same value at every position.
func EqualShape[T comparable](a, b *Node[T]) bool {
	pending := []clonePair[T]{{a, b}}
	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		switch {
		case p.from == nil && p.to == nil:
			continue
		case p.from == nil || p.to == nil:
			return false
		case p.from.Value != p.to.Value:
			return false
		}

		pending = append(pending,
			clonePair[T]{p.from.Left, p.to.Left},
			clonePair[T]{p.from.Right, p.to.Right})
	}

	return true
}
