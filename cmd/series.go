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
	"fmt"

	"github.com/spf13/cobra"
)

func getSeriesCmd() *cobra.Command {
	var matches []string

	seriesCmd := &cobra.Command{
		Use:   "series",
		Short: "List unique label sets matching stream selectors",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			series, err := client.Series(context.Background(), matches, 0, 0)
			if err != nil {
				return err
			}
			for _, labels := range series {
				fmt.Println(labels.String())
			}
			return nil
		},
	}

	seriesCmd.Flags().StringArrayVar(&matches, "match", nil, `stream selector, e.g. '{app="api"}' (repeatable)`)
	_ = seriesCmd.MarkFlagRequired("match")

	return seriesCmd
}
