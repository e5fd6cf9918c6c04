// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// =============================================================================
// RESOLVER
// =============================================================================

const (
	// DefaultBackendEndpoint is the base URL of the style-configuration
	// service.
	DefaultBackendEndpoint = "https://sara-admin.aispirelabs.com/api"

	// resolveTimeout bounds the single style fetch so the widget never
	// blocks rendering on a slow configuration service.
	resolveTimeout = 10 * time.Second

	// maxStyleBody caps the override payload size.
	maxStyleBody = 1 * 1024 * 1024 // 1MB
)

// Resolver fetches a widget's remote style override and merges it over the
// built-in defaults.
type Resolver struct {
	endpoint   string
	httpClient *http.Client
	logger     *log.Logger
}

// NewResolver creates a resolver against the given style-configuration base
// URL. An empty endpoint selects the default service.
func NewResolver(endpoint string, logger *log.Logger) *Resolver {
	if endpoint == "" {
		endpoint = DefaultBackendEndpoint
	}
	return &Resolver{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: resolveTimeout},
		logger:     logger,
	}
}

// Resolve returns the effective theme configuration for widgetID: the
// defaults overlaid by whatever subset of keys the remote override supplies.
// On any failure (network error, non-2xx status, malformed body) it logs a
// warning and returns the defaults unchanged. Exactly one attempt is made.
func (r *Resolver) Resolve(ctx context.Context, widgetID string) Config {
	defaults := Defaults()

	raw, err := r.fetch(ctx, widgetID)
	if err != nil {
		r.warn("failed to load custom styles, using defaults: %v", err)
		return defaults
	}

	merged, err := Merge(defaults, raw)
	if err != nil {
		r.warn("malformed style override, using defaults: %v", err)
		return defaults
	}
	return merged
}

// fetch performs the single style-configuration request.
func (r *Resolver) fetch(ctx context.Context, widgetID string) ([]byte, error) {
	url := r.endpoint + "/assistants/get-styles/" + widgetID + "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("style service returned HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxStyleBody))
}

func (r *Resolver) warn(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf("warning: "+format, args...)
	}
}
