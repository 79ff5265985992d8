// Package fact computes factorials in the same styles the tree
// packages traverse in: direct recursion, tail recursion,
// continuation passing, trampolined continuation passing, and a loop.
// Fib and FibTrampolined do the same for Fibonacci numbers, whose
// two recursive calls mirror the two subtrees of a node.
//
// Results overflow N silently, like any integer arithmetic in Go.
// All functions panic if n is negative.
package fact

import (
	"fmt"

	"go.lepak.sg/inorder/tree/trampoline"
	"golang.org/x/exp/constraints"
)

func checkNonNegative[N constraints.Integer](n N) {
	if n < 0 {
		panic(fmt.Sprintf("factorial of negative number %d", n))
	}
}

// Direct recurses once per factor.
func Direct[N constraints.Integer](n N) N {
	checkNonNegative(n)
	if n <= 1 {
		return 1
	}
	return n * Direct(n-1)
}

// TailRecursive carries the product in an accumulator. Go doesn't
// eliminate the tail call, so this still uses one frame per factor.
func TailRecursive[N constraints.Integer](n N) N {
	checkNonNegative(n)
	return tailRecursive(n, 1)
}

func tailRecursive[N constraints.Integer](n, acc N) N {
	if n <= 1 {
		return acc
	}
	return tailRecursive(n-1, n*acc)
}

// CPS passes the rest of the computation as a continuation. The
// continuations nest, so this uses two frames per factor.
func CPS[N constraints.Integer](n N) N {
	checkNonNegative(n)
	return cps(n, func(r N) N { return r })
}

func cps[N constraints.Integer](n N, k func(N) N) N {
	if n <= 1 {
		return k(1)
	}
	return cps(n-1, func(r N) N { return k(n * r) })
}

// Trampolined is CPS where every call is bounced through
// trampoline.Run, so the stack depth doesn't depend on n.
func Trampolined[N constraints.Integer](n N) N {
	checkNonNegative(n)
	return trampoline.Run(bounce(n, trampoline.Done[N]))
}

func bounce[N constraints.Integer](n N, k func(N) trampoline.Bounce[N]) trampoline.Bounce[N] {
	return trampoline.More(func() trampoline.Bounce[N] {
		if n <= 1 {
			return k(1)
		}
		return bounce(n-1, func(r N) trampoline.Bounce[N] {
			return trampoline.More(func() trampoline.Bounce[N] {
				return k(n * r)
			})
		})
	})
}

// Loop multiplies 1 through n.
func Loop[N constraints.Integer](n N) N {
	checkNonNegative(n)
	acc := N(1)
	for i := N(2); i <= n; i++ {
		acc *= i
	}
	return acc
}
