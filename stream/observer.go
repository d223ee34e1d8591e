// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Jussi Maki

package stream

// Observer consumes the events pushed by an Observable.
//
// For a single subscription the calls arrive sequentially on the goroutine
// that called Subscribe(): zero or more Next() calls, at most one Error(),
// and Complete() last. Observers therefore need not be thread-safe.
type Observer[V, E any] interface {
	// Next is called for each emitted value.
	Next(value V)

	// Error is called with the producer's error payload. It is followed by
	// Complete().
	Error(err E)

	// Complete signals the end of the subscription. No further calls follow.
	Complete()
}

// FuncObserver wraps callbacks into an Observer. Convenience when declaring
// a struct to implement Observer is overkill. Nil callbacks are skipped.
type FuncObserver[V, E any] struct {
	OnNext     func(V)
	OnError    func(E)
	OnComplete func()
}

func (f FuncObserver[V, E]) Next(value V) {
	if f.OnNext != nil {
		f.OnNext(value)
	}
}

func (f FuncObserver[V, E]) Error(err E) {
	if f.OnError != nil {
		f.OnError(err)
	}
}

func (f FuncObserver[V, E]) Complete() {
	if f.OnComplete != nil {
		f.OnComplete()
	}
}

// TransformObserver is the transform stage used by Map. It observes the
// upstream observable and forwards a transformed or filtered version of
// the events to the downstream observer it is bound to.
//
// Bind is called by the mapped observable when it is subscribed, before any
// of the Observer methods.
type TransformObserver[V, E any] interface {
	Observer[V, E]

	// Bind sets the downstream observer to forward to.
	Bind(downstream Observer[V, E])
}
