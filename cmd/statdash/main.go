// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

// Command statdash queries a statdash proxy from the terminal.
//
//	statdash indicators
//	statdash geographies
//	statdash query --proxy http://localhost:8080/api/inegi --indicator 216064 --geography 09 --chart line
//
// Defaults for the query command can be kept in ~/.config/statdash/config.toml.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/statdash/internal/catalog"
	"github.com/tomtom215/statdash/internal/cli"
	"github.com/tomtom215/statdash/internal/logging"
	"github.com/tomtom215/statdash/internal/proxyclient"
	"github.com/tomtom215/statdash/internal/query"
)

const (
	defaultProxy   = "http://localhost:8080/api/inegi"
	defaultTimeout = 30 * time.Second
)

// errQueryFailed marks a query that reached the error phase; the message is
// already printed.
var errQueryFailed = errors.New("query failed")

var (
	configPath string
	verbose    bool

	queryProxy     string
	queryIndicator string
	queryGeography string
	queryChart     string
	queryTimeout   time.Duration
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "statdash",
		Short:         "INEGI indicator dashboard client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "warn"
			if verbose {
				level = "debug"
			}
			logging.Init(logging.Config{Level: level, Format: "console", Output: cmd.ErrOrStderr()})
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", cli.DefaultConfigPath(), "TOML settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newIndicatorsCmd())
	rootCmd.AddCommand(newGeographiesCmd())
	rootCmd.AddCommand(newQueryCmd())
	return rootCmd
}

func newIndicatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indicators",
		Short: "List selectable indicators by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), cli.Indicators(catalog.IndicatorsByCategory()))
			return err
		},
	}
}

func newGeographiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "geographies",
		Short: "List selectable geographies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), cli.Geographies(catalog.ListGeographies()))
			return err
		},
	}
}

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Fetch an indicator series through a statdash proxy",
		Args:  cobra.NoArgs,
		RunE:  runQueryCmd,
	}
	cmd.Flags().StringVar(&queryProxy, "proxy", defaultProxy, "proxy endpoint URL")
	cmd.Flags().StringVar(&queryIndicator, "indicator", "", "indicator id (default: first catalog indicator)")
	cmd.Flags().StringVar(&queryGeography, "geography", catalog.NationalID, "geography id")
	cmd.Flags().StringVar(&queryChart, "chart", catalog.DefaultChartStyle, "chart style: line, bar or area")
	cmd.Flags().DurationVar(&queryTimeout, "timeout", defaultTimeout, "request timeout")
	return cmd
}

func runQueryCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := cli.LoadFileConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "proxy", &queryProxy, fileCfg.Query.Proxy)
	applyStringConfig(cmd, "geography", &queryGeography, fileCfg.Query.Geography)
	applyStringConfig(cmd, "chart", &queryChart, fileCfg.Query.Chart)
	if d, ok := fileCfg.Query.TimeoutValue(); ok && !cmd.Flags().Changed("timeout") {
		queryTimeout = d
	}

	if _, ok := catalog.LookupChartStyle(queryChart); !ok {
		return fmt.Errorf("unknown chart style %q", queryChart)
	}
	if _, ok := catalog.LookupGeography(queryGeography); !ok {
		return fmt.Errorf("unknown geography %q (see: statdash geographies)", queryGeography)
	}

	client, err := proxyclient.New(queryProxy, queryTimeout)
	if err != nil {
		return err
	}

	ctrl := query.NewController(client)
	ctrl.Dispatch(query.SelectIndicator{ID: queryIndicator})
	ctrl.Dispatch(query.SelectGeography{ID: queryGeography})
	ctrl.Dispatch(query.SelectChartStyle{ID: queryChart})

	ctx, cancel := context.WithTimeout(cmd.Context(), queryTimeout)
	defer cancel()
	state := ctrl.Submit(ctx)

	view, ok := query.Present(state)
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.Failure(state.Message))
		return errQueryFailed
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), cli.Series(view))
	return err
}

// applyStringConfig uses the file value unless the flag was given.
func applyStringConfig(cmd *cobra.Command, name string, target *string, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
