// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Jussi Maki

package observers

import (
	"github.com/rs/zerolog"

	"github.com/joamaki/syncobs/stream"
)

type logObserver[V, E any] struct {
	log zerolog.Logger
}

// Logger returns an observer that logs each event it receives, tagged with
// 'id'. Values and completion are logged at info level, errors at error
// level.
func Logger[V, E any](log zerolog.Logger, id string) stream.Observer[V, E] {
	return &logObserver[V, E]{
		log: log.With().Str("observer", id).Logger(),
	}
}

func (o *logObserver[V, E]) Next(value V) {
	o.log.Info().Interface("value", value).Msg("next")
}

func (o *logObserver[V, E]) Error(err E) {
	ev := o.log.Error()
	if e, ok := any(err).(error); ok {
		ev = ev.AnErr("error", e)
	} else {
		ev = ev.Interface("error", err)
	}
	ev.Msg("error")
}

func (o *logObserver[V, E]) Complete() {
	o.log.Info().Msg("complete")
}
