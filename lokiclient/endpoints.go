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
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/prometheus/common/model"

	"github.com/cardinalhq/lokireader/loghttp"
)

// Sort directions for range queries.
const (
	DirectionForward  = "forward"
	DirectionBackward = "backward"
)

const (
	instantQueryPath = "/loki/api/v1/query"
	rangeQueryPath   = "/loki/api/v1/query_range"
	labelsPath       = "/loki/api/v1/labels"
	seriesPath       = "/loki/api/v1/series"
)

// Instant executes a query at a single point in time. A zero ts leaves the
// evaluation time to the server, which uses now.
func (c *Client) Instant(ctx context.Context, logql string, ts int64, limit int) (*loghttp.QueryResult, error) {
	params := url.Values{}
	params.Set("query", logql)
	params.Set("limit", strconv.Itoa(limit))
	if ts != 0 {
		params.Set("time", strconv.FormatInt(ts, 10))
	}

	body, err := c.perform(ctx, instantQueryPath, params)
	if err != nil {
		return nil, err
	}
	return parseBody(body)
}

// QueryRange executes a query across [start, end], both Unix nanoseconds.
// direction orders entries within the window; empty means backward, newest
// first.
func (c *Client) QueryRange(ctx context.Context, logql string, start, end int64, limit int, direction string) (*loghttp.QueryResult, error) {
	if direction == "" {
		direction = DirectionBackward
	}

	params := url.Values{}
	params.Set("query", logql)
	params.Set("start", strconv.FormatInt(start, 10))
	params.Set("end", strconv.FormatInt(end, 10))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("direction", direction)

	body, err := c.perform(ctx, rangeQueryPath, params)
	if err != nil {
		return nil, err
	}
	return parseBody(body)
}

// Labels lists the label names known to the server. Zero start/end are
// omitted and the server applies its default window.
func (c *Client) Labels(ctx context.Context, start, end int64) ([]string, error) {
	body, err := c.perform(ctx, labelsPath, windowParams(start, end))
	if err != nil {
		return nil, err
	}
	var resp struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode labels response: %v", ErrQuery, err)
	}
	return resp.Data, nil
}

// LabelValues lists the values seen for one label.
func (c *Client) LabelValues(ctx context.Context, label string, start, end int64) ([]string, error) {
	path := "/loki/api/v1/label/" + url.PathEscape(label) + "/values"
	body, err := c.perform(ctx, path, windowParams(start, end))
	if err != nil {
		return nil, err
	}
	var resp struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode label values response: %v", ErrQuery, err)
	}
	return resp.Data, nil
}

// Series lists the unique label sets matching the given stream selectors.
func (c *Client) Series(ctx context.Context, matches []string, start, end int64) ([]model.LabelSet, error) {
	params := windowParams(start, end)
	for _, m := range matches {
		params.Add("match[]", m)
	}

	body, err := c.perform(ctx, seriesPath, params)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Data []model.LabelSet `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode series response: %v", ErrQuery, err)
	}
	return resp.Data, nil
}

func windowParams(start, end int64) url.Values {
	params := url.Values{}
	if start != 0 {
		params.Set("start", strconv.FormatInt(start, 10))
	}
	if end != 0 {
		params.Set("end", strconv.FormatInt(end, 10))
	}
	return params
}

func parseBody(body []byte) (*loghttp.QueryResult, error) {
	result, err := loghttp.ParseResponse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	return result, nil
}
