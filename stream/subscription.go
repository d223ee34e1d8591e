// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Jussi Maki

package stream

import (
	"go.uber.org/atomic"
)

// Subscription is the handle returned by Subscribe.
type Subscription interface {
	// Unsubscribe disposes the resources held for the subscription.
	// Only the first call has an effect.
	Unsubscribe()

	// Disposed is true after Unsubscribe has been called.
	Disposed() bool
}

// subscription is safe to dispose from any goroutine: a handle may outlive
// the synchronous emission and be passed elsewhere, and the flag guarantees
// the teardown runs exactly once.
type subscription struct {
	disposed atomic.Bool
	teardown func()
}

// newSubscription returns an active subscription that runs 'teardown'
// once on the first Unsubscribe. 'teardown' may be nil.
func newSubscription(teardown func()) *subscription {
	return &subscription{teardown: teardown}
}

// disposedSubscription returns a subscription that has already been disposed.
func disposedSubscription() *subscription {
	s := &subscription{}
	s.disposed.Store(true)
	return s
}

func (s *subscription) Unsubscribe() {
	if !s.disposed.CompareAndSwap(false, true) {
		return
	}
	if s.teardown != nil {
		s.teardown()
		s.teardown = nil
	}
}

func (s *subscription) Disposed() bool {
	return s.disposed.Load()
}
