package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/LdDl/osmtrip"
	"github.com/LdDl/osmtrip/config"
	"github.com/LdDl/osmtrip/streetmap"
	"github.com/LdDl/osmtrip/transit"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type cliOptions struct {
	configFile string
	osmFile    string
	stopsFile  string
	routesFile string
	geomFormat string
	out        string
	limit      int
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	rootCmd := &cobra.Command{
		Use:           "osmtrip",
		Short:         "Plans walking, biking and bus trips over OSM street network",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML configuration file. Command line files override ones from configuration")
	rootCmd.PersistentFlags().StringVar(&opts.osmFile, "osm", "", "Filename of *.osm / *.osm.pbf file")
	rootCmd.PersistentFlags().StringVar(&opts.stopsFile, "stops", "", "Filename of CSV file with columns stop_id,node_id")
	rootCmd.PersistentFlags().StringVar(&opts.routesFile, "routes", "", "Filename of CSV file with columns route,stop_id")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Print progress messages")

	nodesCmd := &cobra.Command{
		Use:   "nodes",
		Short: "Lists street nodes in ascending identifier order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := loadPlanner(cmd.Context(), opts, cmd)
			if err != nil {
				return err
			}
			return printNodes(cmd.OutOrStdout(), planner, opts.limit)
		},
	}
	nodesCmd.Flags().IntVar(&opts.limit, "limit", 0, "Print only first N nodes (0 means all)")

	shortestCmd := &cobra.Command{
		Use:   "shortest SRC DEST",
		Short: "Finds the shortest path (miles) between two OSM nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dest, err := parseNodePair(args)
			if err != nil {
				return err
			}
			planner, err := loadPlanner(cmd.Context(), opts, cmd)
			if err != nil {
				return err
			}
			return runShortest(cmd.OutOrStdout(), planner, src, dest, opts)
		},
	}
	fastestCmd := &cobra.Command{
		Use:   "fastest SRC DEST",
		Short: "Finds the fastest trip (hours) between two OSM nodes walking, biking or riding a bus",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dest, err := parseNodePair(args)
			if err != nil {
				return err
			}
			planner, err := loadPlanner(cmd.Context(), opts, cmd)
			if err != nil {
				return err
			}
			return runFastest(cmd.OutOrStdout(), planner, src, dest, opts)
		},
	}
	for _, cmd := range []*cobra.Command{shortestCmd, fastestCmd} {
		cmd.Flags().StringVar(&opts.geomFormat, "geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
		cmd.Flags().StringVar(&opts.out, "out", "", "Filename of 'Comma-Separated Values' (CSV) file to export path to")
	}
	rootCmd.AddCommand(nodesCmd, shortestCmd, fastestCmd)
	return rootCmd
}

// loadPlanner reads street map and transit system and prepares planner
func loadPlanner(ctx context.Context, opts *cliOptions, cmd *cobra.Command) (*osmtrip.Planner, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	appCfg := config.Default(opts.osmFile, opts.stopsFile, opts.routesFile)
	if opts.configFile != "" {
		var err error
		appCfg, err = config.LoadAppConfig(opts.configFile)
		if err != nil {
			return nil, err
		}
		if opts.osmFile != "" {
			appCfg.Map.File = opts.osmFile
		}
		if opts.stopsFile != "" {
			appCfg.Transit.StopsFile = opts.stopsFile
		}
		if opts.routesFile != "" {
			appCfg.Transit.RoutesFile = opts.routesFile
		}
	}
	if appCfg.Map.File == "" || appCfg.Transit.StopsFile == "" || appCfg.Transit.RoutesFile == "" {
		return nil, fmt.Errorf("OSM, stops and routes files must be provided either with flags or configuration file")
	}

	level := slog.LevelWarn
	if opts.verbose || appCfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	st := time.Now()
	streetMap, err := streetmap.ImportFromOSMFile(ctx, appCfg.Map.File, logger)
	if err != nil {
		return nil, err
	}
	transitSystem, err := transit.ImportFromCSVFiles(appCfg.Transit.StopsFile, appCfg.Transit.RoutesFile)
	if err != nil {
		return nil, err
	}
	logger.Info("data has been loaded", "stops", transitSystem.StopCount(), "routes", transitSystem.RouteCount(), "took", time.Since(st))

	cfg := appCfg.PlannerSettings(streetMap, transitSystem)
	logger.Debug("configuration", "parameters", cfg.String())

	planner, err := osmtrip.NewPlanner(cfg,
		osmtrip.WithLogger(logger),
		osmtrip.WithGraphCache(appCfg.Cache.Graphs),
	)
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare planner")
	}
	return planner, nil
}
