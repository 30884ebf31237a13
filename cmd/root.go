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
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/lokireader/config"
	"github.com/cardinalhq/lokireader/lokiclient"
)

var (
	flagBaseURL  string
	flagOrgID    string
	flagUsername string
	flagPassword string
	flagCACert   string
	flagInsecure bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lokireader",
	Short: "Query Grafana Loki logs",
	Long:  `Query log streams and metric expressions from a Grafana Loki server, with label discovery for application and severity searches.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Loki server base URL (or set LOKIREADER_LOKI_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagOrgID, "org-id", "", "X-Scope-OrgID header for multi-tenant Loki")
	rootCmd.PersistentFlags().StringVar(&flagUsername, "username", "", "basic auth username")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "basic auth password")
	rootCmd.PersistentFlags().StringVar(&flagCACert, "ca-cert", "", "path to a CA certificate PEM file")
	rootCmd.PersistentFlags().BoolVar(&flagInsecure, "insecure", false, "skip TLS certificate verification")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogging("lokireader")
	}

	rootCmd.AddCommand(getQueryCmd())
	rootCmd.AddCommand(getLabelsCmd())
	rootCmd.AddCommand(getLabelValuesCmd())
	rootCmd.AddCommand(getSeriesCmd())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newClient builds a client from the loaded config with flag overrides
// applied on top.
func newClient() (*lokiclient.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	clientCfg := lokiclient.Config{
		BaseURL:            cfg.Loki.BaseURL,
		Username:           cfg.Loki.Username,
		Password:           cfg.Loki.Password,
		OrgID:              cfg.Loki.OrgID,
		CACertFile:         cfg.Loki.CACertFile,
		InsecureSkipVerify: cfg.Loki.InsecureSkipVerify,
		Timeout:            time.Duration(cfg.Loki.TimeoutSeconds) * time.Second,
	}
	if flagBaseURL != "" {
		clientCfg.BaseURL = flagBaseURL
	}
	if flagOrgID != "" {
		clientCfg.OrgID = flagOrgID
	}
	if flagUsername != "" {
		clientCfg.Username = flagUsername
		clientCfg.Password = flagPassword
	}
	if flagCACert != "" {
		clientCfg.CACertFile = flagCACert
	}
	if flagInsecure {
		clientCfg.InsecureSkipVerify = true
	}

	return lokiclient.New(clientCfg)
}
