// Package check runs every traversal in this module against the
// recursive definition in tree.InOrder and reports the first
// disagreement.
package check

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"

	"go.lepak.sg/inorder/tree"
	"go.lepak.sg/inorder/tree/morris"
	"go.lepak.sg/inorder/tree/parent"
	"go.lepak.sg/inorder/tree/stack"
	"go.lepak.sg/inorder/tree/trampoline"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var ErrShapeChanged = errors.New("traversal changed the shape of the tree")

// Algorithm is a named in-order traversal.
// Mutates is true if the traversal writes to the tree while it runs,
// in which case its tree is checked for damage afterwards.
type Algorithm[T any] struct {
	Name    string
	Run     func(root *tree.Node[T]) []T
	Mutates bool
}

func threaded[T any](root *tree.Node[T]) []T {
	morris.Thread(root)
	return morris.ThreadedInOrder(root)
}

// Algorithms returns every traversal in the module.
func Algorithms[T any]() []Algorithm[T] {
	return []Algorithm[T]{
		{Name: "parent", Run: parent.InOrder[T]},
		{Name: "morris", Run: morris.InOrder[T], Mutates: true},
		{Name: "morris-threaded", Run: threaded[T], Mutates: true},
		{Name: "stack", Run: stack.InOrder[T]},
		{Name: "cps", Run: trampoline.InOrderCPS[T]},
		{Name: "trampoline", Run: trampoline.InOrder[T]},
		{Name: "trampoline-concat", Run: trampoline.InOrderConcat[T]},
		{Name: "trampoline-lazy", Run: trampoline.Collect[T]},
		{Name: "trampoline-frames", Run: trampoline.InOrderFrames[T]},
	}
}

// MismatchError is returned when an Algorithm doesn't produce the
// reference sequence.
type MismatchError[T any] struct {
	Algorithm string
	Want, Got []T
}

func (e *MismatchError[T]) Error() string {
	return fmt.Sprintf("%s: want %v, got %v", e.Algorithm, e.Want, e.Got)
}

// Tree checks every Algorithm on the tree rooted at root. Each one
// runs on its own clone, so root is never modified.
func Tree[T comparable](root *tree.Node[T]) error {
	return run(root, Algorithms[T]())
}

func run[T comparable](root *tree.Node[T], algs []Algorithm[T]) error {
	want := tree.InOrder(root)

	for _, alg := range algs {
		c := tree.Clone(root)
		got := alg.Run(c)
		if !slices.Equal(want, got) {
			return &MismatchError[T]{
				Algorithm: alg.Name,
				Want:      want,
				Got:       got,
			}
		}
		if alg.Mutates && !tree.EqualShape(root, c) {
			return fmt.Errorf("%s: %w", alg.Name, ErrShapeChanged)
		}
	}

	return nil
}

// Config controls Random.
type Config struct {
	// Rounds is the number of random trees to check.
	Rounds int
	// Size is the number of nodes in each tree.
	Size int
	// Seed derives the seed of each tree.
	Seed int64
	// Workers is the most trees checked at once.
	// If it is 0, runtime.GOMAXPROCS(0) is used.
	Workers int
}

// Random builds cfg.Rounds random trees and runs Tree on each of them,
// checking up to cfg.Workers trees at once. Each tree is only ever
// touched by one goroutine. The first error stops the remaining work
// and is returned; if ctx is canceled first, its error is returned.
func Random(ctx context.Context, cfg Config) error {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	seedrd := rand.New(rand.NewSource(cfg.Seed))
	seeds := make([]int64, cfg.Rounds)
	for i := range seeds {
		seeds[i] = seedrd.Int63()
	}

	eg, egctx := errgroup.WithContext(ctx)
	sema := semaphore.NewWeighted(int64(workers))

	for _, seed := range seeds {
		if err := sema.Acquire(egctx, 1); err != nil {
			// ctx was canceled, either by the caller or
			// because a check failed
			break
		}

		seed := seed
		eg.Go(func() error {
			defer sema.Release(1)
			if err := egctx.Err(); err != nil {
				return err
			}
			if err := Tree(tree.BuildRandom(cfg.Size, seed)); err != nil {
				return fmt.Errorf("size=%d seed=%d: %w", cfg.Size, seed, err)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
