// Copyright (C) 2025 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package lokiclient is a read client for Grafana Loki's HTTP query API.
// It wraps the instant, range, label, and series endpoints, discovers which
// labels identify application and severity in an unknown schema, and
// returns normalized loghttp.QueryResult values.
package lokiclient

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const DefaultTimeout = 30 * time.Second

// Config carries connection settings for a Loki server.
type Config struct {
	// BaseURL is the root of the Loki server, e.g. "https://loki.example.com".
	BaseURL string
	// Username and Password enable HTTP basic auth when Username is non-empty.
	Username string
	Password string
	// OrgID is sent as the X-Scope-OrgID header for multi-tenant setups.
	OrgID string
	// CACertFile points at a PEM bundle to trust instead of the system roots,
	// for self-signed server certificates.
	CACertFile string
	// InsecureSkipVerify disables TLS certificate verification entirely.
	InsecureSkipVerify bool
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Client queries a single Loki server. Its label discovery caches live for
// the client's lifetime and are not synchronized; concurrent first-time
// probes may duplicate requests but converge on the same answer. Create a
// new client to reset the caches.
type Client struct {
	baseURL    string
	username   string
	password   string
	orgID      string
	httpClient *http.Client
	logger     *slog.Logger

	discovery *labelDiscovery
}

// New creates a client from cfg.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidArgument)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	tlsCfg := &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}
	if cfg.CACertFile != "" {
		pem, err := os.ReadFile(cfg.CACertFile)
		if err != nil {
			return nil, fmt.Errorf("read CA cert %s: %w", cfg.CACertFile, err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", cfg.CACertFile)
		}
		tlsCfg.RootCAs = pool
	}

	c := &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		orgID:    cfg.OrgID,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{TLSClientConfig: tlsCfg},
		},
		logger: slog.Default(),
	}
	c.discovery = newLabelDiscovery(func(ctx context.Context, label string) ([]string, error) {
		return c.LabelValues(ctx, label, 0, 0)
	})
	return c, nil
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// perform issues one GET against the Loki API and returns the response
// body after mapping failures onto the client's error kinds. A decoded
// status of "error" in a 200 response is a query failure too.
func (c *Client) perform(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	if c.orgID != "" {
		req.Header.Set("X-Scope-OrgID", c.orgID)
	}

	c.logger.Debug("loki request", slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, connectionError(u, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrConnection, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: invalid credentials", ErrAuth)
	case http.StatusForbidden:
		return nil, fmt.Errorf("%w: access denied", ErrAuth)
	default:
		return nil, fmt.Errorf("%w: status %d: %s", ErrQuery, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var probe struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON response: %v", ErrQuery, err)
	}
	if probe.Status == "error" {
		msg := probe.Error
		if msg == "" {
			msg = "unknown error"
		}
		return nil, fmt.Errorf("%w: %s", ErrQuery, msg)
	}

	return body, nil
}

// connectionError maps transport-level failures onto ErrConnection with a
// message naming the failure class.
func connectionError(u string, err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return fmt.Errorf("%w: request timed out: %v", ErrConnection, err)
	}
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return fmt.Errorf("%w: TLS verification failed: %v", ErrConnection, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrConnection, u, err)
}
