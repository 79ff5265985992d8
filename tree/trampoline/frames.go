package trampoline

import (
	"go.lepak.sg/inorder/tree"
)

// label names the code a frame resumes. Together with the node, it is
// everything a closure in accumulate would have captured.
type label int

const (
	labelTraverse label = iota
	labelAfterLeft
)

type frame[T any] struct {
	fn   label
	node *tree.Node[T]
}

// InOrderFrames returns the values of the tree in order. It is the
// same trampoline as InOrder, with each closure replaced by a frame
// on an explicit stack: calling a function with a continuation pushes
// the continuation and then the call. The right subtree is a tail
// call, so it needs no continuation of its own.
func InOrderFrames[T any](root *tree.Node[T]) []T {
	out := make([]T, 0)
	frames := []frame[T]{{labelTraverse, root}}

	for len(frames) > 0 {
		f := frames[len(frames)-1]
		frames = frames[:len(frames)-1]

		switch f.fn {
		case labelTraverse:
			if f.node != nil {
				frames = append(frames,
					frame[T]{labelAfterLeft, f.node},
					frame[T]{labelTraverse, f.node.Left})
			}
		case labelAfterLeft:
			out = append(out, f.node.Value)
			frames = append(frames, frame[T]{labelTraverse, f.node.Right})
		default:
			panic("unreachable")
		}
	}

	return out
}
