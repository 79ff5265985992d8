package tree

import (
	"errors"
	"math/rand"

	"golang.org/x/exp/constraints"
)

var (
	ErrEmpty          = errors.New("nothing to build")
	ErrLengthMismatch = errors.New("pre- and in-order traversals have different lengths")
	ErrDuplicate      = errors.New("duplicated value")
	ErrNotFound       = errors.New("pre-order value not found in in-order traversal")
)

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// insert places v into the search tree rooted at root, keeping
// parent links, and returns the (possibly new) root.
// Duplicates are dropped.
func insert[T constraints.Ordered](root *Node[T], v T) *Node[T] {
	if root == nil {
		return Leaf(v)
	}

	n, p := root, (*Node[T])(nil)
	var cmp Order
	for n != nil {
		cmp = Compare(v, n.Value)
		switch cmp {
		case Less:
			n, p = n.Left, n
		case Greater:
			n, p = n.Right, n
		case Equal:
			return root
		default:
			panic("unreachable")
		}
	}

	newnode := Leaf(v)
	newnode.Parent = p
	if cmp == Less {
		p.Left = newnode
	} else {
		p.Right = newnode
	}

	return root
}

// BuildRandom builds a parent-linked tree with num nodes.
// Node values are in the range [0, num) and are inserted in a random
// order, so the in-order traversal is always 0, 1, ..., num-1 while the
// shape varies. The seed makes the shape repeatable.
func BuildRandom(num int, seed int64) *Node[int] {
	rd := rand.New(rand.NewSource(seed))

	values := make([]int, num)
	for i := 0; i < num; i++ {
		values[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	var root *Node[int]
	for _, v := range values {
		root = insert(root, v)
	}

	return root
}

// Direction selects which way BuildDegenerate leans.
type Direction bool

const (
	LeanLeft  Direction = true
	LeanRight Direction = false
)

// BuildDegenerate builds a parent-linked chain of num nodes, which is
// a tree of height num. The in-order traversal is 0, 1, ..., num-1.
func BuildDegenerate(num int, dir Direction) *Node[int] {
	var root *Node[int]
	for i := 0; i < num; i++ {
		if dir == LeanLeft {
			// each new node is larger than everything below it
			root = NewLinked(i, root, nil)
		} else {
			root = NewLinked(num-1-i, nil, root)
		}
	}
	return root
}

// FromPreAndInOrder iteratively builds a parent-linked tree from its
// pre- and in-order traversals. Values must be unique.
func FromPreAndInOrder[S ~[]T, T comparable](pre, in S) (*Node[T], error) {
	// Time O(N^2) Space O(N) (1x nodes, 1x the inOrderMap)
	if len(in) == 0 {
		return nil, ErrEmpty
	}

	if len(in) != len(pre) {
		return nil, ErrLengthMismatch
	}

	inOrderMap := make(map[T]int)
	for i, v := range in {
		if _, ok := inOrderMap[v]; ok {
			return nil, ErrDuplicate
		}
		inOrderMap[v] = i
	}

	if _, ok := inOrderMap[pre[0]]; !ok {
		return nil, ErrNotFound
	}

	root := Leaf(pre[0])

	for _, toInsert := range pre[1:] {
		toInsertIdx, ok := inOrderMap[toInsert]
		if !ok {
			return nil, ErrNotFound
		}

		// walk down the tree to find where toInsert should go
		current, parent := root, (*Node[T])(nil)
		var result Order
		for current != nil {
			// previous values in the pre-order traversal
			// are already in the tree, so this can't miss
			result = Compare(toInsertIdx, inOrderMap[current.Value])
			switch result {
			case Less:
				current, parent = current.Left, current
			case Greater:
				current, parent = current.Right, current
			default:
				return nil, ErrDuplicate
			}
		}

		newnode := Leaf(toInsert)
		newnode.Parent = parent

		switch result {
		case Less:
			parent.Left = newnode
		case Greater:
			parent.Right = newnode
		default:
			panic("unreachable")
		}
	}

	return root, nil
}

// PreOrder returns the values of the tree in pre-order. Together with
// InOrder, this is enough to rebuild the tree with FromPreAndInOrder.
func PreOrder[T any](root *Node[T]) []T {
	out := make([]T, 0)
	if root == nil {
		return out
	}

	pending := []*Node[T]{root}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		out = append(out, n.Value)

		if n.Right != nil {
			pending = append(pending, n.Right)
		}
		if n.Left != nil {
			pending = append(pending, n.Left)
		}
	}

	return out
}
