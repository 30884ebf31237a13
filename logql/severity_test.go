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

package logql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityPattern(t *testing.T) {
	tests := []struct {
		name     string
		severity string
		want     string
	}{
		{"trace", "trace", "trace|debug|info|warn|warning|error|fatal|critical"},
		{"debug", "debug", "debug|info|warn|warning|error|fatal|critical"},
		{"info", "info", "info|warn|warning|error|fatal|critical"},
		{"warn", "warn", "warn|warning|error|fatal|critical"},
		{"warning alias", "warning", "warn|warning|error|fatal|critical"},
		{"error", "error", "error|fatal|critical"},
		{"fatal", "fatal", "fatal|critical"},
		{"critical alias", "critical", "fatal|critical"},
		{"uppercase with whitespace", "  WARN ", "warn|warning|error|fatal|critical"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SeverityPattern(tt.severity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverityPatternUnknown(t *testing.T) {
	for _, s := range []string{"bogus", "", "warnings", "info2"} {
		_, err := SeverityPattern(s)
		assert.ErrorIs(t, err, ErrUnknownSeverity, "severity %q", s)
	}
}

func TestSelector(t *testing.T) {
	assert.Equal(t, `{job="api"}`, Selector("job", "api"))
	assert.Equal(t,
		`{job="api", level=~"error|fatal|critical"}`,
		SelectorWithSeverity("job", "api", "level", "error|fatal|critical"))
}
