// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP client and request pacing used for
// metadata lookups.
package httputil

import (
	"context"
	"net/http"
	"time"

	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "arxiv-bookmarks/0.1"
)

// NewClient returns a client with the configured timeout. A zero timeout
// falls back to DefaultTimeout.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// UserAgent returns the configured User-Agent or DefaultUserAgent.
func UserAgent(cfg types.HTTPConfig) string {
	if cfg.UserAgent == "" {
		return DefaultUserAgent
	}
	return cfg.UserAgent
}

// Wait blocks for d or until ctx is done, whichever comes first. A
// non-positive d returns immediately unless ctx is already cancelled.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
