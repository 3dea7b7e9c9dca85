// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package mapview

import (
	"context"
	"errors"

	"github.com/tomtom215/festmap/internal/logging"
)

// DefaultLoopBuffer is the event queue capacity used when NewLoop is given
// a non-positive size.
const DefaultLoopBuffer = 64

// ErrLoopFull is returned by TryPost when the event queue is full.
var ErrLoopFull = errors.New("map event loop full")

// Event is a unit of work run against the Map on the loop goroutine.
type Event func(ctx context.Context, m *Map)

// ShutdownReason describes why the loop stopped.
type ShutdownReason string

const (
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Loop serializes every interaction with a Map onto one goroutine. Events
// run in the order they were posted, each to completion.
//
// Loop implements suture.Service.
type Loop struct {
	m       *Map
	events  chan Event
	handled uint64
}

// NewLoop returns a Loop for m with an event queue of buffer entries.
func NewLoop(m *Map, buffer int) *Loop {
	if buffer <= 0 {
		buffer = DefaultLoopBuffer
	}
	return &Loop{
		m:      m,
		events: make(chan Event, buffer),
	}
}

// Post queues ev, blocking while the queue is full. It fails only when ctx
// ends first.
func (l *Loop) Post(ctx context.Context, ev Event) error {
	select {
	case l.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPost queues ev without blocking.
func (l *Loop) TryPost(ev Event) error {
	select {
	case l.events <- ev:
		return nil
	default:
		logging.Warn().Int("capacity", cap(l.events)).Msg("map event loop full, dropping event")
		return ErrLoopFull
	}
}

// Do runs fn on the loop goroutine and waits for it to finish.
func (l *Loop) Do(ctx context.Context, fn func(ctx context.Context, m *Map)) error {
	done := make(chan struct{})
	err := l.Post(ctx, func(ctx context.Context, m *Map) {
		defer close(done)
		fn(ctx, m)
	})
	if err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Serve processes events until ctx is canceled. Shutdown takes priority over
// queued events.
func (l *Loop) Serve(ctx context.Context) error {
	ctx = logging.ContextWithMountID(ctx, l.m.MountID())
	for {
		select {
		case <-ctx.Done():
			l.logShutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case <-ctx.Done():
			l.logShutdown(ctx)
			return ctx.Err()
		case ev := <-l.events:
			ev(ctx, l.m)
			l.handled++
		}
	}
}

// String names the service in supervisor logs.
func (l *Loop) String() string {
	return "map-event-loop"
}

func (l *Loop) logShutdown(ctx context.Context) {
	reason := ShutdownReasonContextCanceled
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		reason = ShutdownReasonContextDeadline
	}
	logging.Ctx(ctx).Info().
		Str("component", "map-event-loop").
		Str("reason", string(reason)).
		Uint64("events_handled", l.handled).
		Int("events_pending", len(l.events)).
		Msg("map event loop stopped")
}
