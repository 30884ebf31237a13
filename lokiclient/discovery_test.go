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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLabelValues serves canned label values and records which labels were
// probed, in order.
type fakeLabelValues struct {
	values map[string][]string
	probes []string
	err    error
}

func (f *fakeLabelValues) lookup(_ context.Context, label string) ([]string, error) {
	f.probes = append(f.probes, label)
	if f.err != nil {
		return nil, f.err
	}
	return f.values[label], nil
}

func TestApplicationLabelDiscovery(t *testing.T) {
	fake := &fakeLabelValues{values: map[string][]string{
		"app": {"other"},
		"job": {"myapp", "other"},
	}}
	d := newLabelDiscovery(fake.lookup)

	label, err := d.applicationLabel(context.Background(), "myapp")
	require.NoError(t, err)
	assert.Equal(t, "job", label)
	assert.Equal(t, []string{"application", "app", "job"}, fake.probes)

	// Second call is served from the cache.
	label, err = d.applicationLabel(context.Background(), "myapp")
	require.NoError(t, err)
	assert.Equal(t, "job", label)
	assert.Len(t, fake.probes, 3)
}

func TestApplicationLabelPerValueCache(t *testing.T) {
	fake := &fakeLabelValues{values: map[string][]string{
		"application": {"billing"},
		"job":         {"myapp"},
	}}
	d := newLabelDiscovery(fake.lookup)

	label, err := d.applicationLabel(context.Background(), "billing")
	require.NoError(t, err)
	assert.Equal(t, "application", label)

	// A different app value probes again and may land on a different label.
	label, err = d.applicationLabel(context.Background(), "myapp")
	require.NoError(t, err)
	assert.Equal(t, "job", label)
}

func TestApplicationLabelNotFound(t *testing.T) {
	fake := &fakeLabelValues{values: map[string][]string{"job": {"other"}}}
	d := newLabelDiscovery(fake.lookup)

	_, err := d.applicationLabel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrLabelNotFound)
	assert.Equal(t, applicationLabelCandidates, fake.probes)
}

func TestApplicationLabelLookupError(t *testing.T) {
	wantErr := errors.New("connection refused")
	fake := &fakeLabelValues{err: wantErr}
	d := newLabelDiscovery(fake.lookup)

	_, err := d.applicationLabel(context.Background(), "myapp")
	assert.ErrorIs(t, err, wantErr)
	assert.Len(t, fake.probes, 1)
}

func TestSeverityLabelDiscovery(t *testing.T) {
	fake := &fakeLabelValues{values: map[string][]string{
		"severity": {"info", "error"},
	}}
	d := newLabelDiscovery(fake.lookup)

	label, err := d.findSeverityLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "severity", label)
	assert.Equal(t, []string{"level", "severity"}, fake.probes)

	label, err = d.findSeverityLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "severity", label)
	assert.Len(t, fake.probes, 2)
}

func TestSeverityLabelMissReprobes(t *testing.T) {
	fake := &fakeLabelValues{}
	d := newLabelDiscovery(fake.lookup)

	label, err := d.findSeverityLabel(context.Background())
	require.NoError(t, err)
	assert.Empty(t, label)
	assert.Len(t, fake.probes, len(severityLabelCandidates))

	// Nothing found is not cached; the next call probes again.
	_, err = d.findSeverityLabel(context.Background())
	require.NoError(t, err)
	assert.Len(t, fake.probes, 2*len(severityLabelCandidates))
}
