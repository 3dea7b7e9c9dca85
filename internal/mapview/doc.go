// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

/*
Package mapview assembles the festival map engine for one map mount.

A Map owns the POI collection snapshot, the category filter, the marker
presenter, the viewport controller and the selection coordinator, and keeps
the renderer's marker layer in sync with them:

	POIs ──► filter ──► visible set ──► presenter ──► MarkerLayer
	tap ──► selection ──► viewport.FlyTo (when ready)
	    └─► presenter (restyle selected marker)

# Threading

Map is single-threaded: every method must be called from one goroutine, and
each call runs to completion before the next. Hosts that receive events on
several goroutines (renderer callbacks, UI taps, data refreshes) post them
through a Loop, which processes them one at a time in arrival order. Loop
implements suture.Service so it can run under the supervisor tree.

# Errors

POI collections are validated on SetPOIs; an invalid collection is rejected
as a whole and the previous one stays on screen. If a configuration defect
still reaches the presenter, a strict Map (development) panics and a
non-strict Map logs it and leaves the previous markers in place. Failures to
open external links are logged and otherwise ignored.
*/
package mapview
