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
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/lokireader/lokiclient"
)

func getQueryCmd() *cobra.Command {
	var (
		logqlExpr    string
		app          string
		severity     string
		sinceMinutes int
		sinceHours   int
		sinceDays    int
		limit        int
		direction    string
		asJSON       bool
	)

	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Run a LogQL expression or search for an application's logs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.Query(context.Background(), lokiclient.QueryOptions{
				LogQL:        logqlExpr,
				App:          app,
				Severity:     severity,
				SinceMinutes: sinceMinutes,
				SinceHours:   sinceHours,
				SinceDays:    sinceDays,
				Limit:        limit,
				Direction:    direction,
			})
			if err != nil {
				return err
			}
			return writeResult(os.Stdout, result, asJSON)
		},
	}

	queryCmd.Flags().StringVar(&logqlExpr, "logql", "", "raw LogQL expression (mutually exclusive with --app)")
	queryCmd.Flags().StringVar(&app, "app", "", "application name to search for")
	queryCmd.Flags().StringVar(&severity, "severity", "", "minimum severity for --app searches (trace..fatal)")
	queryCmd.Flags().IntVar(&sinceMinutes, "since-minutes", 0, "look back this many minutes")
	queryCmd.Flags().IntVar(&sinceHours, "since-hours", 0, "look back this many hours")
	queryCmd.Flags().IntVar(&sinceDays, "since-days", 0, "look back this many days")
	queryCmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to return")
	queryCmd.Flags().StringVar(&direction, "direction", "", "sort direction: forward or backward")
	queryCmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return queryCmd
}
