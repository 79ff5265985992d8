// Package trampoline traverses trees in order in continuation-passing
// style, without growing the call stack.
//
// Written directly, a CPS traversal recurses once per node and once
// per continuation call, so its stack depth grows with the size of the
// tree, not just its height. Go does not eliminate tail calls, so
// instead each function that would make a call returns a Thunk that
// makes it, and Run calls the thunks one at a time in a loop: the
// stack stays a few frames deep, and the pending work lives on the
// heap as a chain of closures. InOrderCPS is the direct form, kept
// for comparison.
//
// InOrder and InOrderConcat return the whole sequence at once. Lazy
// produces values one at a time and can be abandoned part way.
// InOrderFrames does the same job as InOrder without closures.
package trampoline

// Thunk is a deferred computation. Each Thunk is called at most once.
type Thunk[R any] func() Bounce[R]

// Bounce is the result of one step of a trampoline: either Done with
// a result, or More work to do by calling a Thunk.
type Bounce[R any] struct {
	next   Thunk[R]
	result R
}

// Done returns a final Bounce holding r.
func Done[R any](r R) Bounce[R] {
	return Bounce[R]{
		result: r,
	}
}

// More returns a Bounce that continues with th.
func More[R any](th Thunk[R]) Bounce[R] {
	if th == nil {
		panic("cannot bounce to nil thunk")
	}
	return Bounce[R]{
		next: th,
	}
}

// Pending returns true if b is not Done yet.
func (b Bounce[R]) Pending() bool {
	return b.next != nil
}

// Run bounces until it reaches a Done, and returns its result.
func Run[R any](b Bounce[R]) R {
	for b.next != nil {
		b = b.next()
	}
	return b.result
}
