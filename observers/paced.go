// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Jussi Maki

package observers

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/joamaki/syncobs/stream"
)

type pacedObserver[V, E any] struct {
	ctx        context.Context
	limiter    *rate.Limiter
	downstream stream.Observer[V, E]
}

// Paced returns an observer that forwards to 'downstream' at most at the
// rate allowed by 'limiter', blocking in Next until a value may pass.
// Error and Complete are forwarded immediately.
//
// Once 'ctx' is done the values are forwarded without waiting, so
// 'downstream' always sees the complete sequence of events. A nil limiter
// disables pacing.
func Paced[V, E any](ctx context.Context, limiter *rate.Limiter, downstream stream.Observer[V, E]) stream.Observer[V, E] {
	return &pacedObserver[V, E]{ctx: ctx, limiter: limiter, downstream: downstream}
}

func (o *pacedObserver[V, E]) Next(value V) {
	if o.limiter != nil && o.ctx.Err() == nil {
		// Error means the context was cancelled or the wait would outlast
		// its deadline. Either way stop pacing and forward.
		_ = o.limiter.Wait(o.ctx)
	}
	o.downstream.Next(value)
}

func (o *pacedObserver[V, E]) Error(err E) {
	o.downstream.Error(err)
}

func (o *pacedObserver[V, E]) Complete() {
	o.downstream.Complete()
}

// PerSecond returns a limiter that lets through 'n' events per second, or
// nil if 'n' is not positive.
func PerSecond(n float64) *rate.Limiter {
	if n <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(n), 1)
}
