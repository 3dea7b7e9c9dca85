// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package mapview

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/festmap/internal/models"
)

func startLoop(t *testing.T, l *Loop) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- l.Serve(ctx) }()
	t.Cleanup(cancel)
	return cancel, errCh
}

func TestLoop_RunsEventsInOrder(t *testing.T) {
	t.Parallel()

	var rec recorder
	m, r := newTestMap(t, Options{Handlers: rec.handlers()}, stageA(), standB())
	l := NewLoop(m, 0)
	startLoop(t, l)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := []Event{
		func(ctx context.Context, m *Map) { m.MapReady(ctx) },
		func(ctx context.Context, m *Map) { m.TapCategory(ctx, models.CategoryFood) },
		func(ctx context.Context, m *Map) { m.TapMarker(ctx, "B") },
	}
	for _, ev := range events {
		if err := l.Post(ctx, ev); err != nil {
			t.Fatalf("Post() error = %v", err)
		}
	}

	var visible []string
	if err := l.Do(ctx, func(_ context.Context, m *Map) { visible = poiIDs(m.VisibleSet()) }); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if !reflect.DeepEqual(visible, []string{"B"}) {
		t.Errorf("visible = %v, want [B]", visible)
	}
	if len(rec.selected) != 1 || rec.selected[0].ID != "B" {
		t.Errorf("OnPOISelect calls = %v, want [B]", poiIDs(rec.selected))
	}
	if len(r.Flights()) != 1 {
		t.Errorf("FlyTo calls = %d, want 1", len(r.Flights()))
	}
}

func TestLoop_ServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	m, _ := newTestMap(t, Options{})
	l := NewLoop(m, 1)
	cancel, errCh := startLoop(t, l)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

func TestLoop_TryPostFull(t *testing.T) {
	t.Parallel()

	m, _ := newTestMap(t, Options{})
	l := NewLoop(m, 1)
	noop := func(context.Context, *Map) {}

	if err := l.TryPost(noop); err != nil {
		t.Fatalf("first TryPost() error = %v", err)
	}
	if err := l.TryPost(noop); !errors.Is(err, ErrLoopFull) {
		t.Errorf("second TryPost() error = %v, want ErrLoopFull", err)
	}
}

func TestLoop_PostHonorsContext(t *testing.T) {
	t.Parallel()

	m, _ := newTestMap(t, Options{})
	l := NewLoop(m, 1)
	noop := func(context.Context, *Map) {}
	_ = l.TryPost(noop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Post(ctx, noop); !errors.Is(err, context.Canceled) {
		t.Errorf("Post() error = %v, want context.Canceled", err)
	}
}

func TestLoop_String(t *testing.T) {
	t.Parallel()

	m, _ := newTestMap(t, Options{})
	if got := NewLoop(m, 0).String(); got != "map-event-loop" {
		t.Errorf("String() = %q", got)
	}
}
