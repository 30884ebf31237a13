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

// Package logql contains the small amount of LogQL handling the client
// needs: classifying an expression as metric vs. log selector, building
// stream selectors, and expanding severity tiers into a match pattern.
// It is deliberately not a LogQL parser; expressions pass through to Loki
// opaquely.
package logql

import "strings"

// metricFuncs are the aggregation and transform functions that start a
// LogQL metric expression. An expression beginning with one of these is
// answered by Loki with a vector or matrix instead of log lines.
var metricFuncs = []string{
	"count_over_time",
	"rate",
	"bytes_over_time",
	"bytes_rate",
	"sum",
	"avg",
	"min",
	"max",
	"stddev",
	"stdvar",
	"quantile_over_time",
	"first_over_time",
	"last_over_time",
	"absent_over_time",
	"rate_counter",
	"topk",
	"bottomk",
	"sort",
	"sort_desc",
	"label_replace",
	"label_join",
}

// IsMetricExpr reports whether expr is a metric/aggregation expression
// rather than a log stream selector. Only the leading function name is
// examined; a keyword appearing mid-expression does not count.
func IsMetricExpr(expr string) bool {
	e := strings.ToLower(strings.TrimSpace(expr))
	if e == "" {
		return false
	}
	for _, fn := range metricFuncs {
		if strings.HasPrefix(e, fn+"(") || strings.HasPrefix(e, fn+" (") {
			return true
		}
	}
	return false
}
