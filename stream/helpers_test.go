// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Jussi Maki

package stream

import (
	"errors"
	"testing"
)

//
// Test helpers
//

var errTest = errors.New("test error")

func assertSlice[T comparable](t *testing.T, what string, expected []T, actual []T) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("assertSlice[%s]: expected %d items, got %d (%v)", what, len(expected), len(actual), actual)
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Fatalf("assertSlice[%s]: at index %d, expected %v, got %v", what, i, expected[i], actual[i])
		}
	}
}

// assertEvents checks the exact sequence of calls recorded by 'r'.
func assertEvents[V, E comparable](t *testing.T, what string, r *Recorder[V, E], expected ...Event[V, E]) {
	t.Helper()
	assertSlice(t, what, expected, r.Events())
}

func assertPanics(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected a panic", what)
		}
	}()
	f()
}

func next[V, E any](v V) Event[V, E] { return Event[V, E]{Kind: KindNext, Value: v} }

func fail[V, E any](err E) Event[V, E] { return Event[V, E]{Kind: KindError, Err: err} }

func complete[V, E any]() Event[V, E] { return Event[V, E]{Kind: KindComplete} }

// alternating forwards every second value, starting with the first, doubled.
type alternating struct {
	Forwarder[int, error]
	skip bool
}

func (a *alternating) Next(x int) {
	if !a.skip {
		a.Downstream().Next(2 * x)
	}
	a.skip = !a.skip
}
