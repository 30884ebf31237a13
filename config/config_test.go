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

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 30, cfg.Loki.TimeoutSeconds)
	require.False(t, cfg.Loki.InsecureSkipVerify)
	require.Empty(t, cfg.Loki.BaseURL)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LOKIREADER_LOKI_BASE_URL", "https://loki.example.com")
	t.Setenv("LOKIREADER_LOKI_ORG_ID", "tenant-1")
	t.Setenv("LOKIREADER_LOKI_USERNAME", "alice")
	t.Setenv("LOKIREADER_LOKI_INSECURE_SKIP_VERIFY", "true")
	t.Setenv("LOKIREADER_LOKI_TIMEOUT_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "https://loki.example.com", cfg.Loki.BaseURL)
	require.Equal(t, "tenant-1", cfg.Loki.OrgID)
	require.Equal(t, "alice", cfg.Loki.Username)
	require.True(t, cfg.Loki.InsecureSkipVerify)
	require.Equal(t, 60, cfg.Loki.TimeoutSeconds)
}
