// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Jussi Maki

package stream

import (
	"slices"
)

// Observable is a producer of values of type V that may fail with an error
// of type E. What a subscription emits is decided by the strategy the
// observable was constructed with, see Of, From, ThrowError and Map.
//
// Subscribe runs the whole emission synchronously before returning. An
// observable built with Of, From or ThrowError emits only once: after its
// first subscription it is exhausted and further subscriptions emit nothing.
//
// Observables are not safe for concurrent use. Concurrent subscriptions must
// be serialized by the caller.
type Observable[V, E any] struct {
	strategy  strategy[V, E]
	exhausted bool
}

// strategy is the sealed set of things an observable can do when subscribed.
type strategy[V, E any] interface {
	isStrategy()
}

type single[V, E any] struct {
	value V
}

type sequence[V, E any] struct {
	values []V
}

type failing[V, E any] struct {
	err E
}

type mapped[V, E any] struct {
	upstream *Observable[V, E]
	newStage func() TransformObserver[V, E]
}

func (*single[V, E]) isStrategy()   {}
func (*sequence[V, E]) isStrategy() {}
func (*failing[V, E]) isStrategy()  {}
func (*mapped[V, E]) isStrategy()   {}

//
// Sources, e.g. functions that create new observables.
//

// Of creates an observable that emits 'value' and then completes.
func Of[V, E any](value V) *Observable[V, E] {
	return &Observable[V, E]{strategy: &single[V, E]{value: value}}
}

// From creates an observable that emits each of 'values' in order and then
// completes. The slice is copied.
func From[V, E any](values []V) *Observable[V, E] {
	return &Observable[V, E]{strategy: &sequence[V, E]{values: slices.Clone(values)}}
}

// ThrowError creates an observable that emits 'err' and then completes.
// Error does not suppress the completion signal.
func ThrowError[V, E any](err E) *Observable[V, E] {
	return &Observable[V, E]{strategy: &failing[V, E]{err: err}}
}

//
// Composition
//

// Map creates an observable that emits the events of 'o' as forwarded by
// 'stage'. Nothing is subscribed until the returned observable is.
//
// The returned observable owns 'stage' and binds the same instance on every
// subscription, so any private state of the stage carries over between
// subscriptions. Use MapFunc for a fresh stage per subscription.
func (o *Observable[V, E]) Map(stage TransformObserver[V, E]) *Observable[V, E] {
	if stage == nil {
		panic("stream: Map called with nil stage")
	}
	return o.MapFunc(func() TransformObserver[V, E] { return stage })
}

// MapFunc is like Map, but calls 'newStage' on each subscription to get the
// stage that sits between 'o' and the subscribing observer.
func (o *Observable[V, E]) MapFunc(newStage func() TransformObserver[V, E]) *Observable[V, E] {
	if newStage == nil {
		panic("stream: MapFunc called with nil stage constructor")
	}
	return &Observable[V, E]{strategy: &mapped[V, E]{upstream: o, newStage: newStage}}
}

// Exhausted returns true if the observable has already run to completion
// and will emit nothing further. A mapped observable is exhausted when its
// upstream is.
func (o *Observable[V, E]) Exhausted() bool {
	if m, ok := o.strategy.(*mapped[V, E]); ok {
		return m.upstream.Exhausted()
	}
	return o.exhausted
}

// Subscribe runs the observable against 'observer' and returns once the
// emission has finished. Subscribing to an exhausted observable makes no
// calls to 'observer' and returns an already disposed Subscription.
func (o *Observable[V, E]) Subscribe(observer Observer[V, E]) Subscription {
	if observer == nil {
		panic("stream: Subscribe called with nil Observer")
	}

	if m, ok := o.strategy.(*mapped[V, E]); ok {
		return m.subscribe(observer)
	}

	if o.exhausted {
		return disposedSubscription()
	}

	switch s := o.strategy.(type) {
	case *single[V, E]:
		observer.Next(s.value)
	case *sequence[V, E]:
		for _, v := range s.values {
			observer.Next(v)
		}
	case *failing[V, E]:
		observer.Error(s.err)
	default:
		panic("stream: Observable not created with Of, From, ThrowError or Map")
	}
	observer.Complete()
	o.exhausted = true

	return newSubscription(o.release)
}

// release drops the payload retained by an exhausted observable.
func (o *Observable[V, E]) release() {
	switch s := o.strategy.(type) {
	case *single[V, E]:
		var zero V
		s.value = zero
	case *sequence[V, E]:
		s.values = nil
	case *failing[V, E]:
		var zero E
		s.err = zero
	}
}

func (m *mapped[V, E]) subscribe(observer Observer[V, E]) Subscription {
	stage := m.newStage()
	if stage == nil {
		panic("stream: stage constructor returned nil")
	}
	stage.Bind(observer)
	upstream := m.upstream.Subscribe(stage)
	if upstream.Disposed() {
		return upstream
	}
	return newSubscription(upstream.Unsubscribe)
}
