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

import "testing"

func TestIsMetricExpr(t *testing.T) {
	metric := []string{
		`count_over_time({job="x"}[5m])`,
		`rate({app="api"}[1m])`,
		`sum(rate({app="api"}[1m]))`,
		`sum (rate({app="api"}[1m]))`,
		`SUM(rate({app="api"}[1m]))`,
		`  topk(5, count_over_time({app="api"}[1h]))`,
		`quantile_over_time(0.99, {app="api"} | unwrap dur [5m])`,
		`sort_desc(sum by (app) (rate({env="prod"}[5m])))`,
	}
	for _, q := range metric {
		if !IsMetricExpr(q) {
			t.Errorf("IsMetricExpr(%q) = false, want true", q)
		}
	}

	logs := []string{
		`{job="x"} |= "error"`,
		`{app="api"}`,
		`{app="api"} |= "rate(" `,
		`{app="api"} | json | sum > 5`,
		`rated(x)`,
		`ratelimit({app="api"})`,
		``,
		`   `,
	}
	for _, q := range logs {
		if IsMetricExpr(q) {
			t.Errorf("IsMetricExpr(%q) = true, want false", q)
		}
	}
}
