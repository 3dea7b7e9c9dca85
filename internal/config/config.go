// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/paulmach/orb"

	"github.com/tomtom215/festmap/internal/validation"
	"github.com/tomtom215/festmap/internal/viewport"
)

// Environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// ErrMetricsAddressRequired is returned when metrics are enabled without a
// listen address.
var ErrMetricsAddressRequired = errors.New("METRICS_ADDRESS is required when METRICS_ENABLED=true")

// Config is the complete festmap configuration.
type Config struct {
	Environment string        `koanf:"environment" validate:"oneof=development production"`
	Map         MapConfig     `koanf:"map"`
	Data        DataConfig    `koanf:"data"`
	Logging     LoggingConfig `koanf:"logging"`
	Metrics     MetricsConfig `koanf:"metrics"`
}

// MapConfig holds the initial camera and animation settings.
type MapConfig struct {
	Latitude  float64 `koanf:"latitude" validate:"latitude"`
	Longitude float64 `koanf:"longitude" validate:"longitude"`

	// Zoom is the initial zoom level, the fallback for camera reads before
	// the map is ready.
	Zoom float64 `koanf:"zoom" validate:"gte=0,lte=22"`

	FlyDuration time.Duration `koanf:"fly_duration" validate:"gte=0s"`
	FitDuration time.Duration `koanf:"fit_duration" validate:"gte=0s"`
	FitPadding  int           `koanf:"fit_padding" validate:"gte=0,lte=500"`
}

// DataConfig locates the POI data.
type DataConfig struct {
	POIPath string `koanf:"poi_path" validate:"required"`
}

// LoggingConfig holds logging settings for zerolog.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// MetricsConfig controls the Prometheus listener.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Address string `koanf:"address" validate:"omitempty,hostname_port"`
}

// Validate checks field ranges and cross-field requirements.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	if c.Metrics.Enabled && c.Metrics.Address == "" {
		return ErrMetricsAddressRequired
	}
	return nil
}

// IsDevelopment reports whether the development environment is selected.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Center returns the initial camera center.
func (m MapConfig) Center() orb.Point {
	return orb.Point{m.Longitude, m.Latitude}
}

// Viewport converts the map settings to viewport options.
func (m MapConfig) Viewport() viewport.Options {
	return viewport.Options{
		InitialCenter: m.Center(),
		InitialZoom:   m.Zoom,
		FlyDuration:   m.FlyDuration,
		FitDuration:   m.FitDuration,
		FitPadding:    m.FitPadding,
	}
}

func (m MapConfig) String() string {
	return fmt.Sprintf("center=(%.5f,%.5f) zoom=%.1f", m.Latitude, m.Longitude, m.Zoom)
}
