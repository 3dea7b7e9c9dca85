// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

/*
Package config loads festmap configuration.

Sources are layered with koanf, lowest priority first:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: $CONFIG_PATH, then config.yaml / config.yml in the working
    directory, then /etc/festmap/config.yaml
 3. Environment variables

# Environment Variables

Map camera (MapConfig):
  - MAP_LATITUDE, MAP_LONGITUDE: initial camera center (default: 0, 0)
  - MAP_ZOOM: initial zoom level (default: 15)
  - MAP_FLY_DURATION: selection recenter animation (default: 1s)
  - MAP_FIT_DURATION: fit-to-bounds animation (default: 1s)
  - MAP_FIT_PADDING: fit-to-bounds padding in pixels (default: 50)

Data (DataConfig):
  - POI_PATH: POI document, native JSON or GeoJSON (default: pois.json)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

Metrics (MetricsConfig):
  - METRICS_ENABLED: serve Prometheus metrics (default: false)
  - METRICS_ADDRESS: listen address (default: 127.0.0.1:9090)

General:
  - ENVIRONMENT: development or production (default: development).
    Development makes configuration defects in the map fatal.

Unrecognized environment variables are ignored.
*/
package config
