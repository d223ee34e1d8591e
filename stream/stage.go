// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Jussi Maki

package stream

//
// Transform stages: observers that forward to a bound downstream observer.
//

// Forwarder is the building block for hand-written transform stages. It
// implements Bind and forwards every event unmodified. Embed it and
// override the methods that need to do something else:
//
//	type doubler struct {
//		stream.Forwarder[int, error]
//	}
//
//	func (d *doubler) Next(x int) { d.Downstream().Next(2 * x) }
type Forwarder[V, E any] struct {
	downstream Observer[V, E]
}

func (f *Forwarder[V, E]) Bind(downstream Observer[V, E]) {
	f.downstream = downstream
}

// Downstream returns the bound downstream observer. Panics if the stage has
// not been bound.
func (f *Forwarder[V, E]) Downstream() Observer[V, E] {
	if f.downstream == nil {
		panic("stream: transform stage used before being bound to a downstream observer")
	}
	return f.downstream
}

func (f *Forwarder[V, E]) Next(value V) {
	f.Downstream().Next(value)
}

func (f *Forwarder[V, E]) Error(err E) {
	f.Downstream().Error(err)
}

func (f *Forwarder[V, E]) Complete() {
	f.Downstream().Complete()
}

type funcStage[V, E any] struct {
	Forwarder[V, E]
	onNext func(V, func(V))
}

func (s *funcStage[V, E]) Next(value V) {
	s.onNext(value, s.Downstream().Next)
}

// Stage creates a transform stage from a function that is called for each
// upstream value. 'emit' forwards a value downstream and may be called any
// number of times. Errors and completion are forwarded unmodified.
func Stage[V, E any](onNext func(value V, emit func(V))) TransformObserver[V, E] {
	return &funcStage[V, E]{onNext: onNext}
}

// Mapping creates a transform stage that applies 'apply' to each value.
func Mapping[V, E any](apply func(V) V) TransformObserver[V, E] {
	return Stage[V, E](func(v V, emit func(V)) { emit(apply(v)) })
}

// Filtering creates a transform stage that keeps only the values for which
// 'keep' returns true.
func Filtering[V, E any](keep func(V) bool) TransformObserver[V, E] {
	return Stage[V, E](func(v V, emit func(V)) {
		if keep(v) {
			emit(v)
		}
	})
}
