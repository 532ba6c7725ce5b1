package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvroute/location"
	"github.com/katalvlaran/lvroute/matrix"
	"github.com/katalvlaran/lvroute/store"
	"github.com/katalvlaran/lvroute/tsp"
)

func newSolveCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one fixed-endpoint route exactly",
		Long: `Solve reads either a location file (or the --db locations table) and
routes from --start to --end through every selected location, or a raw
instance file given with --matrix.

Without --prefix or --include every loaded location is visited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := solverOptions(v)
			if err != nil {
				return err
			}
			if path := v.GetString(keyMatrix); path != "" {
				return solveMatrix(cmd.OutOrStdout(), path, opts)
			}

			return solveLocations(cmd.Context(), cmd.OutOrStdout(), v, opts)
		},
	}

	f := cmd.Flags()
	f.String(keyLocations, "", "JSON file of {state, capital, latitude, longitude} records")
	f.String(keyMatrix, "", `JSON instance {"distance_matrix", "start_index", "end_index"}`)
	f.String(keyStart, "", "start location (capital or state name)")
	f.String(keyEnd, "", "end location (capital or state name)")
	f.String(keyPrefix, "", "visit locations whose state name starts with this prefix")
	f.StringSlice(keyInclude, nil, "also visit these locations")
	f.Int(keyMaxNodes, tsp.DefaultMaxNodes, fmt.Sprintf("refuse instances larger than this (at most %d)", tsp.MaxSupportedNodes))
	f.Bool(keyMetricClosure, false, "replace each cost by the shortest-path cost before solving")
	cmd.MarkFlagsMutuallyExclusive(keyLocations, keyMatrix)

	return cmd
}

func solverOptions(v *viper.Viper) ([]tsp.Option, error) {
	maxNodes := v.GetInt(keyMaxNodes)
	if maxNodes < 1 || maxNodes > tsp.MaxSupportedNodes {
		return nil, fmt.Errorf("--%s must be in [1, %d], got %d", keyMaxNodes, tsp.MaxSupportedNodes, maxNodes)
	}
	opts := []tsp.Option{tsp.WithMaxNodes(maxNodes)}
	if v.GetBool(keyMetricClosure) {
		opts = append(opts, tsp.WithMetricClosure())
	}

	return opts, nil
}

func solveMatrix(w io.Writer, path string, opts []tsp.Option) error {
	inst, err := loadInstance(path)
	if err != nil {
		return err
	}
	dist, err := inst.costMatrix()
	if err != nil {
		return err
	}

	res, err := tsp.HeldKarpPath(dist, inst.StartIndex, inst.EndIndex, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "path: %v\ncost: %g\n", res.Path, res.Cost)

	return nil
}

func solveLocations(ctx context.Context, w io.Writer, v *viper.Viper, opts []tsp.Option) error {
	start, end := v.GetString(keyStart), v.GetString(keyEnd)
	if start == "" || end == "" {
		return fmt.Errorf("--%s and --%s are required with location input", keyStart, keyEnd)
	}

	var (
		src location.DistanceSource = location.Haversine
		set location.Set
		err error
	)
	if dbPath := v.GetString(keyDB); dbPath != "" {
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		cached := st.CachedSource(location.Haversine)
		defer func() {
			hits, misses := cached.Stats()
			slog.Info("distance cache", "hits", hits, "misses", misses)
		}()
		src = cached

		if v.GetString(keyLocations) == "" {
			if set, err = st.Locations(ctx, ""); err != nil {
				return err
			}
		}
	}
	if path := v.GetString(keyLocations); path != "" {
		if set, err = location.Load(path); err != nil {
			return err
		}
	}
	if len(set) == 0 {
		return errors.New("no locations: pass --locations or a populated --db")
	}

	set = selectLocations(set, v.GetString(keyPrefix), v.GetStringSlice(keyInclude), start, end)
	slog.Debug("locations selected", "count", len(set))

	si, err := set.Index(start)
	if err != nil {
		return err
	}
	ei, err := set.Index(end)
	if err != nil {
		return err
	}

	dist, err := set.CostMatrix(ctx, src)
	if err != nil {
		return err
	}
	res, err := tsp.HeldKarpPath(dist, si, ei, opts...)
	if err != nil {
		return err
	}

	return printRoute(w, set, dist, res)
}

// selectLocations applies --prefix and --include; the endpoints are always
// kept. With neither flag the set is returned unchanged.
func selectLocations(set location.Set, prefix string, include []string, start, end string) location.Set {
	if prefix == "" && len(include) == 0 {
		return set
	}
	names := append(append([]string(nil), include...), start, end)
	filters := []location.Filter{location.Named(names...)}
	if prefix != "" {
		filters = append(filters, location.StatePrefix(prefix))
	}

	return set.Filter(location.AnyOf(filters...))
}

func printRoute(w io.Writer, set location.Set, dist *matrix.Dense, res tsp.PathResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCAPITAL\tSTATE\tLEG KM\tTOTAL KM")

	var total float64
	for i, v := range res.Path {
		var leg float64
		if i > 0 {
			d, err := dist.At(res.Path[i-1], v)
			if err != nil {
				return err
			}
			leg = d
			total += d
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%.2f\n", i+1, set[v].Capital, set[v].State, leg, total)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "total distance: %.2f km\n", res.Cost)

	return err
}
