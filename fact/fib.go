package fact

import (
	"fmt"

	"go.lepak.sg/inorder/tree/trampoline"
	"golang.org/x/exp/constraints"
)

// Fib returns the n-th Fibonacci number by direct double recursion.
// It takes time exponential in n.
func Fib[N constraints.Integer](n N) N {
	if n < 0 {
		panic(fmt.Sprintf("fibonacci of negative number %d", n))
	}
	return fib(n)
}

func fib[N constraints.Integer](n N) N {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}

// FibTrampolined is Fib in trampolined CPS. Each call has two
// recursive calls, so it needs two continuations: one for after the
// first call returns, which starts the second, and one for after the
// second, which adds them up. This is the shape of an in-order tree
// traversal with the node's value in place of the sum.
func FibTrampolined[N constraints.Integer](n N) N {
	if n < 0 {
		panic(fmt.Sprintf("fibonacci of negative number %d", n))
	}
	return trampoline.Run(fibBounce(n, trampoline.Done[N]))
}

func fibBounce[N constraints.Integer](n N, k func(N) trampoline.Bounce[N]) trampoline.Bounce[N] {
	return trampoline.More(func() trampoline.Bounce[N] {
		if n < 2 {
			return k(n)
		}
		return fibBounce(n-1, fibAfterFirst(n, k))
	})
}

func fibAfterFirst[N constraints.Integer](n N, k func(N) trampoline.Bounce[N]) func(N) trampoline.Bounce[N] {
	return func(first N) trampoline.Bounce[N] {
		return fibBounce(n-2, fibAfterSecond(first, k))
	}
}

func fibAfterSecond[N constraints.Integer](first N, k func(N) trampoline.Bounce[N]) func(N) trampoline.Bounce[N] {
	return func(second N) trampoline.Bounce[N] {
		return trampoline.More(func() trampoline.Bounce[N] {
			return k(first + second)
		})
	}
}
