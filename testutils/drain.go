package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/inorder/chops"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects to receive data in order from ch, then expects
// ch to be closed.
// The channel must already be filled with the expected data.
// This will not work if the producer is still sending
// when this is called; use DrainBlocking for that.
func Drain[T any](t TestT, data []T, ch <-chan T) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		chops.TryRecv(ch).Match(
			func(el T) {
				assert.Equal(t, datum, el)
			},
			func() {
				t.Errorf("channel closed early, expecting %v", datum)
			},
			func() {
				t.Errorf("channel was empty, expecting i=%d %v", i, datum)
			},
		)
	}

	chops.TryRecv(ch).Match(
		func(el T) {
			t.Errorf("channel should be closed, but received: %v", el)
		},
		func() {},
		func() {
			t.Error("at the end of draining, channel was empty but unclosed")
		},
	)
}

// DrainBlocking is like Drain, but waits up to timeout for each
// element and for the final close, so the producer may still be
// running.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting %v", datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-time.After(timeout):
			t.Errorf("timed out, expecting i=%d %v", i, datum)
			return
		}
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-time.After(timeout):
		t.Error("at the end of draining, channel was not closed")
	}
}
