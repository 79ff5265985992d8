// Package chops provides the iterator interface shared by the
// traversal packages, a way to consume any such iterator over a
// channel, and the channel operations needed to test that.
package chops

// Status represents the result of a non-blocking channel
// operation. It can be Ok, Closed, or Blocked.
type Status int

func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case Closed:
		return "Closed"
	case Blocked:
		return "Blocked"
	default:
		return "<invalid chops.Status>"
	}
}

const (
	// The channel delivered a value without blocking.
	Ok Status = iota
	// The channel is closed and drained.
	Closed
	// The channel is open but has nothing to receive right now.
	Blocked
)

// Result is the outcome of TryRecv.
type Result[T any] struct {
	value  T
	status Status
}

// Get returns the result of the receive:
// If the return Status is Ok, the returned T is the channel element.
// Otherwise the returned T is the zero value of T.
func (r Result[T]) Get() (T, Status) {
	return r.value, r.status
}

// Match performs an exhaustive match on the Result.
func (r Result[T]) Match(ok func(T), closed, blocked func()) {
	switch r.status {
	case Ok:
		ok(r.value)
	case Closed:
		closed()
	case Blocked:
		blocked()
	default:
		panic("unhandled case in Match")
	}
}

// TryRecv attempts a non-blocking receive from a channel.
func TryRecv[T any](ch <-chan T) Result[T] {
	select {
	case x, ok := <-ch:
		if ok {
			return Result[T]{
				value:  x,
				status: Ok,
			}
		}
		return Result[T]{
			status: Closed,
		}
	default:
		return Result[T]{
			status: Blocked,
		}
	}
}
