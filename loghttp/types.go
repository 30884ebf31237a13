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

// Package loghttp models Loki's HTTP query API responses as typed values.
// The three upstream result shapes (log streams, range matrices, instant
// vectors) are normalized into a single QueryResult; timestamps are always
// Unix nanoseconds regardless of how upstream encoded them.
package loghttp

import "github.com/prometheus/common/model"

// ResultType identifies which shape a query result carries.
type ResultType string

const (
	ResultTypeStreams ResultType = "streams"
	ResultTypeMatrix  ResultType = "matrix"
	ResultTypeVector  ResultType = "vector"
)

// LogEntry is a single log line from a stream.
type LogEntry struct {
	Timestamp int64  `json:"timestamp"`
	Message   string `json:"message"`
}

// LogStream is a set of log entries sharing one label set. Entry order is
// whatever upstream returned; it is not re-sorted here.
type LogStream struct {
	Labels  model.LabelSet `json:"labels"`
	Entries []LogEntry     `json:"entries"`
}

// MetricSample is one numeric datapoint of a metric query result.
type MetricSample struct {
	Timestamp int64   `json:"timestamp"`
	Value     float64 `json:"value"`
}

// MetricSeries is a sequence of samples sharing one label set, as returned
// for metric expressions like count_over_time or rate.
type MetricSeries struct {
	Labels  model.LabelSet `json:"labels"`
	Samples []MetricSample `json:"samples"`
}

// QueryStats summarizes what a query cost to execute. Loki omits stats on
// some endpoints, in which case QueryResult.Stats is nil.
type QueryStats struct {
	BytesProcessed  int64   `json:"bytesProcessed"`
	LinesProcessed  int64   `json:"linesProcessed"`
	ExecTimeSeconds float64 `json:"execTimeSeconds"`
}

// QueryResult is the normalized result of any Loki query. Streams is
// populated only for ResultTypeStreams; Series only for matrix and vector
// results. The other slice is always empty.
type QueryResult struct {
	Status     string         `json:"status"`
	ResultType ResultType     `json:"resultType"`
	Streams    []LogStream    `json:"streams,omitempty"`
	Series     []MetricSeries `json:"series,omitempty"`
	Stats      *QueryStats    `json:"stats,omitempty"`
}

// TotalEntries returns the number of log entries across all streams.
func (r *QueryResult) TotalEntries() int {
	n := 0
	for _, s := range r.Streams {
		n += len(s.Entries)
	}
	return n
}
