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
	"fmt"
	"log/slog"

	"github.com/cardinalhq/lokireader/loghttp"
	"github.com/cardinalhq/lokireader/logql"
	"github.com/cardinalhq/lokireader/timeutil"
)

const (
	// DefaultLookbackDays is the window applied when no since option is set.
	DefaultLookbackDays = 30

	DefaultInstantLimit = 100
	DefaultRangeLimit   = 1000
)

// QueryOptions selects what to query. Exactly one of LogQL and App must be
// set: LogQL passes an expression through as-is, App builds a selector by
// discovering which label identifies the application.
type QueryOptions struct {
	// LogQL is a raw query expression.
	LogQL string
	// App is an application name to search for across candidate labels.
	App string
	// Severity restricts App queries to this severity and above. Ignored
	// when the schema exposes no severity label.
	Severity string

	// Since options bound the lookback window; minutes win over hours and
	// hours over days. All zero means DefaultLookbackDays.
	SinceMinutes int
	SinceHours   int
	SinceDays    int

	// Limit caps returned entries. Zero takes the endpoint default.
	Limit int
	// Direction is forward or backward. Empty means backward.
	Direction string
}

// Query resolves opts into an instant or range query and executes it.
//
// A metric expression with no explicit since option is evaluated as an
// instant query at the current time; setting any since option forces a
// range query even for metric expressions.
func (c *Client) Query(ctx context.Context, opts QueryOptions) (*loghttp.QueryResult, error) {
	if opts.LogQL != "" && opts.App != "" {
		return nil, fmt.Errorf("%w: logql and app are mutually exclusive", ErrInvalidArgument)
	}
	if opts.LogQL == "" && opts.App == "" {
		return nil, fmt.Errorf("%w: either logql or app is required", ErrInvalidArgument)
	}

	expr := opts.LogQL
	if opts.App != "" {
		resolved, err := c.resolveAppSelector(ctx, opts.App, opts.Severity)
		if err != nil {
			return nil, err
		}
		expr = resolved
	}

	explicitWindow := opts.SinceMinutes > 0 || opts.SinceHours > 0 || opts.SinceDays > 0

	if logql.IsMetricExpr(expr) && !explicitWindow {
		c.logger.Debug("instant query", slog.String("query", expr))
		return c.Instant(ctx, expr, 0, limitOr(opts.Limit, DefaultInstantLimit))
	}

	var start int64
	switch {
	case opts.SinceMinutes > 0:
		start = timeutil.MinutesAgoNanos(opts.SinceMinutes)
	case opts.SinceHours > 0:
		start = timeutil.HoursAgoNanos(opts.SinceHours)
	case opts.SinceDays > 0:
		start = timeutil.DaysAgoNanos(opts.SinceDays)
	default:
		start = timeutil.DaysAgoNanos(DefaultLookbackDays)
	}
	end := timeutil.NowNanos()

	c.logger.Debug("range query", slog.String("query", expr), slog.Int64("start", start), slog.Int64("end", end))
	return c.QueryRange(ctx, expr, start, end, limitOr(opts.Limit, DefaultRangeLimit), opts.Direction)
}

// resolveAppSelector builds the stream selector for an application search.
// An unknown severity tier fails even when the schema turns out to have no
// severity label; a missing severity label just drops the severity match.
func (c *Client) resolveAppSelector(ctx context.Context, app, severity string) (string, error) {
	appLabel, err := c.FindApplicationLabel(ctx, app)
	if err != nil {
		return "", err
	}
	if severity == "" {
		return logql.Selector(appLabel, app), nil
	}

	pattern, err := logql.SeverityPattern(severity)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	severityLabel, err := c.FindSeverityLabel(ctx)
	if err != nil {
		return "", err
	}
	if severityLabel == "" {
		return logql.Selector(appLabel, app), nil
	}
	return logql.SelectorWithSeverity(appLabel, app, severityLabel, pattern), nil
}

func limitOr(limit, fallback int) int {
	if limit > 0 {
		return limit
	}
	return fallback
}
