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
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownSeverity is returned when a severity tier is not recognized.
var ErrUnknownSeverity = errors.New("unknown severity tier")

// severityTiers is the canonical severity ordering, ascending.
var severityTiers = []string{"trace", "debug", "info", "warn", "error", "fatal"}

// severityAliases maps a canonical tier to the alternate spelling some
// applications log under. The alias is emitted right after its tier when
// building a pattern, and accepted as input for that tier.
var severityAliases = map[string]string{
	"warn":  "warning",
	"fatal": "critical",
}

// normalizeSeverity lowercases, trims, and folds aliases onto their
// canonical tier.
func normalizeSeverity(severity string) string {
	s := strings.ToLower(strings.TrimSpace(severity))
	for tier, alias := range severityAliases {
		if s == alias {
			return tier
		}
	}
	return s
}

// SeverityPattern builds a regex alternation matching minSeverity and every
// tier above it, aliases included. For example "warn" yields
// "warn|warning|error|fatal|critical". The input may itself be an alias.
func SeverityPattern(minSeverity string) (string, error) {
	tier := normalizeSeverity(minSeverity)
	idx := slices.Index(severityTiers, tier)
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownSeverity, minSeverity)
	}
	parts := make([]string, 0, 2*(len(severityTiers)-idx))
	for _, t := range severityTiers[idx:] {
		parts = append(parts, t)
		if alias, ok := severityAliases[t]; ok {
			parts = append(parts, alias)
		}
	}
	return strings.Join(parts, "|"), nil
}
