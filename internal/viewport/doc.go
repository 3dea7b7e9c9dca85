// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

/*
Package viewport wraps the map renderer's camera behind a readiness gate.

# Lifecycle

A Controller is created once per map mount in the not-ready state. The host
calls MarkReady when the renderer reports that it finished loading; the
transition happens exactly once and never reverts while mounted. Dispose ends
the mount.

# Commands

FlyTo and FitBounds are forwarded to the Renderer only while the controller
is ready and not disposed. Commands issued at any other time are dropped (not
queued), counted in festmap_camera_commands_dropped_total and logged at debug
level. A later FlyTo supersedes an earlier one; interpolation is the
renderer's job.

Both commands carry an explicit animation duration. FitBounds defaults to
DefaultFitDuration rather than inheriting a duration from elsewhere.

# Reads

GetCenter and GetZoom never fail. When the renderer is not ready, returns an
error, or reports a non-finite value, they answer with the last value the
renderer reported, or with the configured initial value if it never reported
one. They block only as long as the renderer read does; cancellation belongs
to the caller's context.

# Example

	vp := viewport.New(renderer, viewport.Options{
	    InitialCenter: orb.Point{-2.5857, 51.1044},
	    InitialZoom:   15,
	})
	cam := vp.Camera()

	cam.FlyTo(ctx, stage.Location.Point())     // dropped: not ready yet
	vp.MarkReady(ctx)
	cam.FlyTo(ctx, stage.Location.Point(), viewport.WithZoom(17))
	cam.FitBounds(ctx, orb.Bound{Min: sw, Max: ne}, viewport.WithPadding(80))
*/
package viewport
