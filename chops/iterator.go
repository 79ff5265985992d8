package chops

// Iterator describes the common interface for the tree iterators
// (parent.Iterator, morris.Threads, stack.Iterator, trampoline.Lazy).
// Next must always be called before Item, even for the first round of
// iteration. If Next returns false, Item must not be called.
// The iterator must not require closing at the end of iteration,
// as it may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := stack.NewIterator(root, 0)
//	for i.Next() {
//		v := i.Item()
//		... do stuff with v, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Take advances it at most k times and returns the values it
// yielded. The iterator may be used again afterwards.
func Take[T any](it Iterator[T], k int) []T {
	out := make([]T, 0, k)
	for len(out) < k && it.Next() {
		out = append(out, it.Item())
	}
	return out
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns a channel on which the items from the iterator
// will be sent. It is closed when the iterator is exhausted or
// soon after Stop is called.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
// Items already taken from the iterator but not yet received may
// still arrive after Stop.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	co := CoIterate[T](trampoline.NewLazy(root))
//	for v := range co.Items() {
//		... do stuff with v ...
//		if v meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// The iterator is only advanced as fast as Items is received from, so
// a lazy iterator does no more work than the consumer asks for (plus
// one item in flight).
//
// If you might pass a typed nil pointer into CoIterate,
// make sure your underlying type's methods can handle
// being called with a nil receiver.
//
// Note: CoIterate starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
//
// The iterator is used only by that goroutine, so the tree under it
// must not be touched by anything else until the goroutine exits.
func CoIterate[T any](iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, i Iterator[T]) {
		defer close(out)
		for i.Next() {
			select {
			case out <- i.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, iterator)

	return co
}
