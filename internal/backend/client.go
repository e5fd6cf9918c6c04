// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Configuration constants for the chat exchange endpoint.
const (
	// DefaultAPIEndpoint is the base URL of the answer service.
	DefaultAPIEndpoint = "https://api.aispirelabs.com"

	// DefaultTimeout bounds a single exchange request.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize caps the response body to prevent memory exhaustion
	// from a misbehaving endpoint.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB
)

// sharedHTTPClient pools connections across all exchange requests.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	},
	Timeout: DefaultTimeout,
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatRequest is the exchange request payload.
type ChatRequest struct {
	Question  string `json:"question"`
	BotToken  string `json:"bot_token"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the exchange response payload. Questions carries optional
// follow-up prompts; absent or empty means no suggestions.
type ChatResponse struct {
	Answer    string   `json:"answer"`
	Questions []string `json:"questions,omitempty"`
}

// APIError represents a non-success response from the answer service.
type APIError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("chat exchange failed (HTTP %d): %s", e.Status, e.Body)
	}
	return fmt.Sprintf("chat exchange failed (HTTP %d)", e.Status)
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the chat exchange endpoint. One best-effort attempt per
// message; retry policy belongs to the caller (and the caller's policy is
// "don't").
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the answer service at baseURL. An empty
// baseURL selects the default production endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIEndpoint
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: sharedHTTPClient,
	}
}

// Ask submits one question for the given widget identity and session, and
// decodes the answer. Any non-2xx status or malformed body is an error; no
// retries are attempted.
func (c *Client) Ask(ctx context.Context, question, botToken, sessionID string) (*ChatResponse, error) {
	payload, err := json.Marshal(ChatRequest{
		Question:  question,
		BotToken:  botToken,
		SessionID: sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Body: truncateBody(body)}
	}

	var out ChatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	return &out, nil
}

// truncateBody keeps error messages readable when the service returns a
// large error page.
func truncateBody(body []byte) string {
	const max = 256
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
