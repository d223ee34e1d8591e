// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Jussi Maki

package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/joamaki/syncobs/observers"
	"github.com/joamaki/syncobs/stream"
)

type intObservable = stream.Observable[int, error]

// everyOther forwards every second value, starting with the first one,
// doubled.
type everyOther struct {
	stream.Forwarder[int, error]
	skip bool
}

func newEveryOther() stream.TransformObserver[int, error] {
	return &everyOther{}
}

func (s *everyOther) Next(x int) {
	if !s.skip {
		s.Downstream().Next(2 * x)
	}
	s.skip = !s.skip
}

type scenario struct {
	name  string
	short string
	build func(cfg config) *intObservable
}

var scenarios = []scenario{
	{
		name:  "of",
		short: "Subscribe to an observable of a single value",
		build: func(cfg config) *intObservable {
			return stream.Of[int, error](cfg.Value)
		},
	},
	{
		name:  "from",
		short: "Subscribe to an observable of a series of values",
		build: func(cfg config) *intObservable {
			return stream.From[int, error](cfg.Series)
		},
	},
	{
		name:  "map",
		short: "Subscribe to a series mapped to every second value doubled",
		build: func(cfg config) *intObservable {
			return stream.From[int, error](cfg.Series).MapFunc(newEveryOther)
		},
	},
	{
		name:  "throw",
		short: "Subscribe to an observable that emits an error",
		build: func(cfg config) *intObservable {
			return stream.ThrowError[int](errors.New(cfg.Error))
		},
	},
}

// run subscribes twice to the scenario's observable and then unsubscribes.
// The second subscription emits nothing as the observable has completed.
func (sc scenario) run(ctx context.Context, log zerolog.Logger, cfg config) {
	log = log.With().Str("scenario", sc.name).Logger()
	observer := observers.Paced[int, error](
		ctx,
		observers.PerSecond(cfg.Pace),
		observers.Logger[int, error](log, cfg.ID))

	src := sc.build(cfg)

	log.Info().Msg("subscribing")
	sub := src.Subscribe(observer)

	log.Info().Bool("exhausted", src.Exhausted()).Msg("subscribing a second time")
	sub = src.Subscribe(observer)

	log.Info().Bool("disposed", sub.Disposed()).Msg("unsubscribing")
	sub.Unsubscribe()
}
