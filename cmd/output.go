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

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cardinalhq/lokireader/loghttp"
)

// writeResult renders a query result either as indented JSON or as a
// human-readable listing of streams or series.
func writeResult(w io.Writer, result *loghttp.QueryResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	switch result.ResultType {
	case loghttp.ResultTypeStreams:
		for _, stream := range result.Streams {
			if _, err := fmt.Fprintf(w, "%s\n", stream.Labels); err != nil {
				return err
			}
			for _, entry := range stream.Entries {
				ts := time.Unix(0, entry.Timestamp).UTC().Format(time.RFC3339Nano)
				if _, err := fmt.Fprintf(w, "  %s  %s\n", ts, entry.Message); err != nil {
					return err
				}
			}
		}
	default:
		for _, series := range result.Series {
			if _, err := fmt.Fprintf(w, "%s\n", series.Labels); err != nil {
				return err
			}
			for _, sample := range series.Samples {
				ts := time.Unix(0, sample.Timestamp).UTC().Format(time.RFC3339Nano)
				if _, err := fmt.Fprintf(w, "  %s  %g\n", ts, sample.Value); err != nil {
					return err
				}
			}
		}
	}

	if result.Stats != nil {
		_, err := fmt.Fprintf(w, "stats: %d bytes, %d lines, %.3fs\n",
			result.Stats.BytesProcessed, result.Stats.LinesProcessed, result.Stats.ExecTimeSeconds)
		return err
	}
	return nil
}
