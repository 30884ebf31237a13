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

func getLabelsCmd() *cobra.Command {
	labelsCmd := &cobra.Command{
		Use:   "labels",
		Short: "List label names known to the server",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			labels, err := client.Labels(context.Background(), 0, 0)
			if err != nil {
				return err
			}
			for _, label := range labels {
				fmt.Println(label)
			}
			return nil
		},
	}
	return labelsCmd
}

func getLabelValuesCmd() *cobra.Command {
	labelValuesCmd := &cobra.Command{
		Use:   "label-values <label>",
		Short: "List the values seen for a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			values, err := client.LabelValues(context.Background(), args[0], 0, 0)
			if err != nil {
				return err
			}
			for _, value := range values {
				fmt.Println(value)
			}
			return nil
		},
	}
	return labelValuesCmd
}
