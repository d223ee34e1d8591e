// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Jussi Maki

package stream

import (
	"fmt"
	"slices"
)

//
// Sinks: observers that collect what an observable emits.
//

// Kind is the type of an observed event.
type Kind int

const (
	KindNext Kind = iota
	KindError
	KindComplete
)

func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindError:
		return "error"
	case KindComplete:
		return "complete"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a single call made on an observer. Value is set for KindNext
// and Err for KindError.
type Event[V, E any] struct {
	Kind  Kind
	Value V
	Err   E
}

func (ev Event[V, E]) String() string {
	switch ev.Kind {
	case KindNext:
		return fmt.Sprintf("next(%v)", ev.Value)
	case KindError:
		return fmt.Sprintf("error(%v)", ev.Err)
	}
	return ev.Kind.String()
}

// Recorder is an Observer that records every call made on it in order.
type Recorder[V, E any] struct {
	events []Event[V, E]
}

func (r *Recorder[V, E]) Next(value V) {
	r.events = append(r.events, Event[V, E]{Kind: KindNext, Value: value})
}

func (r *Recorder[V, E]) Error(err E) {
	r.events = append(r.events, Event[V, E]{Kind: KindError, Err: err})
}

func (r *Recorder[V, E]) Complete() {
	r.events = append(r.events, Event[V, E]{Kind: KindComplete})
}

// Events returns a copy of the recorded events.
func (r *Recorder[V, E]) Events() []Event[V, E] {
	return slices.Clone(r.events)
}

// Values returns the values of the recorded Next calls.
func (r *Recorder[V, E]) Values() []V {
	values := make([]V, 0)
	for _, ev := range r.events {
		if ev.Kind == KindNext {
			values = append(values, ev.Value)
		}
	}
	return values
}

// Errors returns the payloads of the recorded Error calls.
func (r *Recorder[V, E]) Errors() []E {
	errs := make([]E, 0)
	for _, ev := range r.events {
		if ev.Kind == KindError {
			errs = append(errs, ev.Err)
		}
	}
	return errs
}

// Completions returns the number of recorded Complete calls.
func (r *Recorder[V, E]) Completions() int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == KindComplete {
			n++
		}
	}
	return n
}

// Reset forgets the recorded events.
func (r *Recorder[V, E]) Reset() {
	r.events = nil
}

// ToSlice subscribes to 'src' and returns the emitted values and errors.
func ToSlice[V, E any](src *Observable[V, E]) (values []V, errs []E) {
	var r Recorder[V, E]
	src.Subscribe(&r).Unsubscribe()
	return r.Values(), r.Errors()
}
