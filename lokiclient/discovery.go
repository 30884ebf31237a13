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

package lokiclient

import (
	"context"
	"fmt"
	"slices"
)

// Candidate label names probed in priority order. Deployments disagree on
// which label carries the application name or log level, so discovery asks
// the server rather than assuming.
var (
	applicationLabelCandidates = []string{"application", "app", "job", "service", "service_name", "logger"}
	severityLabelCandidates    = []string{"level", "severity", "log_level", "loglevel"}
)

type labelValuesFunc func(ctx context.Context, label string) ([]string, error)

// labelDiscovery probes candidate labels through a label-values lookup and
// remembers hits for the owning client's lifetime. Different applications
// may live under different labels, so application hits are cached per app
// value; the severity label is schema-wide.
type labelDiscovery struct {
	lookup labelValuesFunc

	appLabels     map[string]string
	severityLabel string
}

func newLabelDiscovery(lookup labelValuesFunc) *labelDiscovery {
	return &labelDiscovery{
		lookup:    lookup,
		appLabels: make(map[string]string),
	}
}

// applicationLabel returns the label whose values contain app, probing the
// candidates in order on a cache miss.
func (d *labelDiscovery) applicationLabel(ctx context.Context, app string) (string, error) {
	if label, ok := d.appLabels[app]; ok {
		return label, nil
	}
	for _, candidate := range applicationLabelCandidates {
		values, err := d.lookup(ctx, candidate)
		if err != nil {
			return "", err
		}
		if slices.Contains(values, app) {
			d.appLabels[app] = candidate
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w carrying application %q", ErrLabelNotFound, app)
}

// findSeverityLabel returns the first candidate label with any values, or
// "" when the schema has none. A miss is not cached, so a schema without a
// severity label is re-probed on every call.
func (d *labelDiscovery) findSeverityLabel(ctx context.Context) (string, error) {
	if d.severityLabel != "" {
		return d.severityLabel, nil
	}
	for _, candidate := range severityLabelCandidates {
		values, err := d.lookup(ctx, candidate)
		if err != nil {
			return "", err
		}
		if len(values) > 0 {
			d.severityLabel = candidate
			return candidate, nil
		}
	}
	return "", nil
}

// FindApplicationLabel discovers which label identifies application app.
// The result is cached per application value for the client's lifetime.
func (c *Client) FindApplicationLabel(ctx context.Context, app string) (string, error) {
	return c.discovery.applicationLabel(ctx, app)
}

// FindSeverityLabel discovers which label carries log severity, returning
// "" without error when none of the candidates has values.
func (c *Client) FindSeverityLabel(ctx context.Context) (string, error) {
	return c.discovery.findSeverityLabel(ctx)
}
