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

import "fmt"

// Selector builds a single-matcher stream selector, e.g. {job="api"}.
func Selector(label, value string) string {
	return fmt.Sprintf("{%s=%q}", label, value)
}

// SelectorWithSeverity builds a stream selector with an additional regex
// match on the severity label, e.g. {job="api", level=~"error|fatal|critical"}.
func SelectorWithSeverity(label, value, severityLabel, pattern string) string {
	return fmt.Sprintf("{%s=%q, %s=~%q}", label, value, severityLabel, pattern)
}
