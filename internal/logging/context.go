// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	// mountIDKey identifies one map-mount lifecycle.
	mountIDKey contextKey = "mount_id"

	// loggerKey is the context key for storing a logger instance.
	loggerKey contextKey = "logger"
)

// GenerateMountID creates a short identifier for a map mount.
// Returns the first 8 characters of a UUID for readability.
func GenerateMountID() string {
	return uuid.New().String()[:8]
}

// ContextWithMountID returns a new context carrying the given mount ID.
func ContextWithMountID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, mountIDKey, id)
}

// ContextWithNewMountID returns a context with a freshly generated mount ID.
func ContextWithNewMountID(ctx context.Context) context.Context {
	return ContextWithMountID(ctx, GenerateMountID())
}

// MountIDFromContext retrieves the mount ID from context.
// Returns empty string if not present.
func MountIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(mountIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithLogger stores a logger in the context.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext retrieves a logger from context.
// Returns the global logger if no logger is stored in context.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return Logger()
}

// Ctx returns a logger with the mount_id field added when present.
//
//	logging.Ctx(ctx).Info().Msg("map ready")
//	// {"level":"info","mount_id":"abc12345","message":"map ready"}
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := LoggerFromContext(ctx)
	if mountID := MountIDFromContext(ctx); mountID != "" {
		logger = logger.With().Str("mount_id", mountID).Logger()
	}
	return &logger
}
