// Festmap - Festival Map Viewport and Selection Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/festmap

package headless

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/tomtom215/festmap/internal/logging"
)

// Links records link-open requests instead of launching a browser.
type Links struct {
	mu     sync.Mutex
	opened []string
}

// Open records rawURL. Only absolute http(s) URLs are accepted.
func (l *Links) Open(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse link: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported link scheme %q", u.Scheme)
	}

	l.mu.Lock()
	l.opened = append(l.opened, rawURL)
	l.mu.Unlock()

	logging.Ctx(ctx).Info().Str("url", rawURL).Msg("open link")
	return nil
}

// Opened returns every accepted URL, oldest first.
func (l *Links) Opened() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.opened...)
}
