package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvroute/store"
)

const envPrefix = "LVROUTE"

// Flag and configuration keys.
const (
	keyLogLevel      = "log-level"
	keyDB            = "db"
	keyLocations     = "locations"
	keyMatrix        = "matrix"
	keyStart         = "start"
	keyEnd           = "end"
	keyPrefix        = "prefix"
	keyInclude       = "include"
	keyMaxNodes      = "max-nodes"
	keyMetricClosure = "metric-closure"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "lvroute",
		Short:         "Exact shortest fixed-endpoint routes over small location sets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			return setupLogging(cmd, v.GetString(keyLogLevel))
		},
	}
	root.PersistentFlags().String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().String(keyDB, "", "SQLite database (file, or directory holding "+store.DefaultDBFileName+") for locations and the distance cache")

	root.AddCommand(newSolveCmd(v), newImportCmd(v))

	return root
}

func setupLogging(cmd *cobra.Command, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("--%s: %w", keyLogLevel, err)
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))

	return nil
}
