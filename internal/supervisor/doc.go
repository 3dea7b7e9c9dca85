// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

/*
Package supervisor runs festmap's long-lived goroutines under a suture v4
supervisor tree.

	festmap (root)
	├── engine-layer
	│   └── map-event-loop (one per mounted map)
	└── telemetry-layer
	    └── metrics-server (when metrics are enabled)

Failed services are restarted with suture's backoff; supervisor events are
routed to zerolog through sutureslog and logging.NewSlogLogger:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddEngineService(mapview.NewLoop(m, 0))
	err = tree.Serve(ctx)
*/
package supervisor
