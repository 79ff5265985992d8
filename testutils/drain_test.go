package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder stands in for *testing.T so failures can be inspected.
type recorder struct {
	errors []string
}

func (r *recorder) Log(...any) {}

func (r *recorder) Logf(string, ...any) {}

func (r *recorder) Error(args ...any) {
	r.errors = append(r.errors, fmt.Sprint(args...))
}

func (r *recorder) Errorf(f string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(f, args...))
}

func filled(data ...int) chan int {
	ch := make(chan int, len(data))
	for _, d := range data {
		ch <- d
	}
	return ch
}

func TestDrain(t *testing.T) {
	tests := []struct {
		name       string
		data       []int
		ch         func() chan int
		wantErrors int
	}{
		{
			name: "ok",
			data: []int{1, 2},
			ch: func() chan int {
				ch := filled(1, 2)
				close(ch)
				return ch
			},
		},
		{
			name: "unclosed",
			data: []int{1},
			ch: func() chan int {
				return filled(1)
			},
			wantErrors: 1,
		},
		{
			name: "closed early",
			data: []int{1, 2},
			ch: func() chan int {
				ch := filled(1)
				close(ch)
				return ch
			},
			wantErrors: 1,
		},
		{
			name: "extra",
			data: []int{1},
			ch: func() chan int {
				ch := filled(1, 2)
				close(ch)
				return ch
			},
			wantErrors: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			Drain(r, tt.data, tt.ch())
			assert.Len(t, r.errors, tt.wantErrors, "%v", r.errors)
		})
	}
}

func TestDrainBlocking(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 0; i < 3; i++ {
			ch <- i
		}
	}()
	DrainBlocking(t, []int{0, 1, 2}, ch, time.Second)

	r := &recorder{}
	DrainBlocking(r, []int{0}, make(chan int), 10*time.Millisecond)
	assert.Len(t, r.errors, 1)
}
