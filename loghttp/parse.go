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

package loghttp

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/prometheus/common/model"

	"github.com/cardinalhq/lokireader/timeutil"
)

// Wire shapes of /loki/api/v1/query and /loki/api/v1/query_range responses.
// Result is kept raw until resultType is known, since the three shapes put
// different types in the same positions.
type queryResponse struct {
	Status string    `json:"status"`
	Data   queryData `json:"data"`
}

type queryData struct {
	ResultType string          `json:"resultType"`
	Result     json.RawMessage `json:"result"`
	Stats      *queryStatsData `json:"stats"`
}

type queryStatsData struct {
	Summary struct {
		TotalBytesProcessed int64   `json:"totalBytesProcessed"`
		TotalLinesProcessed int64   `json:"totalLinesProcessed"`
		ExecTime            float64 `json:"execTime"`
	} `json:"summary"`
}

type streamResult struct {
	Stream model.LabelSet `json:"stream"`
	Values [][2]string    `json:"values"`
}

type matrixResult struct {
	Metric model.LabelSet      `json:"metric"`
	Values [][]json.RawMessage `json:"values"`
}

type vectorResult struct {
	Metric model.LabelSet    `json:"metric"`
	Value  []json.RawMessage `json:"value"`
}

// ParseResponse decodes a raw Loki query response body into a QueryResult.
// data.resultType selects the parsing path; when it is absent or
// unrecognized the streams path is used. Stream entry timestamps arrive as
// decimal nanosecond strings and are taken as-is; matrix and vector
// timestamps arrive as fractional Unix seconds and are converted without
// losing sub-second precision.
func ParseResponse(body []byte) (*QueryResult, error) {
	var resp queryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}

	status := resp.Status
	if status == "" {
		status = "unknown"
	}

	result := &QueryResult{Status: status}

	switch resp.Data.ResultType {
	case string(ResultTypeMatrix):
		result.ResultType = ResultTypeMatrix
		series, err := parseMatrix(resp.Data.Result)
		if err != nil {
			return nil, err
		}
		result.Series = series
	case string(ResultTypeVector):
		result.ResultType = ResultTypeVector
		series, err := parseVector(resp.Data.Result)
		if err != nil {
			return nil, err
		}
		result.Series = series
	default:
		result.ResultType = ResultTypeStreams
		streams, err := parseStreams(resp.Data.Result)
		if err != nil {
			return nil, err
		}
		result.Streams = streams
	}

	if resp.Data.Stats != nil {
		result.Stats = &QueryStats{
			BytesProcessed:  resp.Data.Stats.Summary.TotalBytesProcessed,
			LinesProcessed:  resp.Data.Stats.Summary.TotalLinesProcessed,
			ExecTimeSeconds: resp.Data.Stats.Summary.ExecTime,
		}
	}

	return result, nil
}

func parseStreams(raw json.RawMessage) ([]LogStream, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var results []streamResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("decode streams result: %w", err)
	}
	var streams []LogStream
	for _, r := range results {
		entries := make([]LogEntry, 0, len(r.Values))
		for _, v := range r.Values {
			ts, err := strconv.ParseInt(v[0], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse stream entry timestamp %q: %w", v[0], err)
			}
			entries = append(entries, LogEntry{Timestamp: ts, Message: v[1]})
		}
		streams = append(streams, LogStream{Labels: r.Stream, Entries: entries})
	}
	return streams, nil
}

func parseMatrix(raw json.RawMessage) ([]MetricSeries, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var results []matrixResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("decode matrix result: %w", err)
	}
	var series []MetricSeries
	for _, r := range results {
		samples := make([]MetricSample, 0, len(r.Values))
		for _, pair := range r.Values {
			sample, err := parseSample(pair)
			if err != nil {
				return nil, err
			}
			samples = append(samples, sample)
		}
		series = append(series, MetricSeries{Labels: r.Metric, Samples: samples})
	}
	return series, nil
}

func parseVector(raw json.RawMessage) ([]MetricSeries, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var results []vectorResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("decode vector result: %w", err)
	}
	var series []MetricSeries
	for _, r := range results {
		var samples []MetricSample
		if len(r.Value) > 0 {
			sample, err := parseSample(r.Value)
			if err != nil {
				return nil, err
			}
			samples = []MetricSample{sample}
		}
		series = append(series, MetricSeries{Labels: r.Metric, Samples: samples})
	}
	return series, nil
}

// parseSample decodes one [unix_seconds, "value"] pair.
func parseSample(pair []json.RawMessage) (MetricSample, error) {
	if len(pair) != 2 {
		return MetricSample{}, fmt.Errorf("metric sample: want [timestamp, value] pair, got %d elements", len(pair))
	}
	var seconds float64
	if err := json.Unmarshal(pair[0], &seconds); err != nil {
		return MetricSample{}, fmt.Errorf("parse sample timestamp: %w", err)
	}
	var text string
	if err := json.Unmarshal(pair[1], &text); err != nil {
		return MetricSample{}, fmt.Errorf("parse sample value: %w", err)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return MetricSample{}, fmt.Errorf("parse sample value %q: %w", text, err)
	}
	return MetricSample{Timestamp: timeutil.SecondsToNanos(seconds), Value: value}, nil
}
