package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvroute/location"
	"github.com/katalvlaran/lvroute/store"
)

func newImportCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a location file into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, dbPath := v.GetString(keyLocations), v.GetString(keyDB)
			if path == "" || dbPath == "" {
				return fmt.Errorf("--%s and --%s are required", keyLocations, keyDB)
			}

			set, err := location.Load(path)
			if err != nil {
				return err
			}
			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if err = st.UpsertLocations(cmd.Context(), set); err != nil {
				return err
			}
			slog.Info("import done", "file", path, "db", dbPath, "count", len(set))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d locations into %s\n", len(set), dbPath)

			return nil
		},
	}
	cmd.Flags().String(keyLocations, "", "JSON file of {state, capital, latitude, longitude} records")

	return cmd
}
