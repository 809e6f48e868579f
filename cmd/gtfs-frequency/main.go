package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/gtfs-frequency/config"
	"github.com/theoremus-urban-solutions/gtfs-frequency/pipeline"
)

var (
	configPath string
	calendars  []string
	utmZone    int
	outDir     string
	jobs       int
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gtfs-frequency [flags] GTFS_PATH",
	Short: "Build a route-frequency GeoJSON map from a static GTFS feed",
	Long: `gtfs-frequency reads a static GTFS feed (directory or zip), counts the
scheduled trips over every route shape for the selected service
calendars, resolves overlapping shapes into disjoint constant-frequency
segments, and writes one GeoJSON file per route plus a combined
overview, each segment styled proportionally to its trip count.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&configPath, "config", "", "yaml configuration file")
	f.StringSliceVar(&calendars, "calendar", nil, "service calendar id to count (repeatable; default all)")
	f.IntVar(&utmZone, "utm-zone", 0, "UTM projection zone (overrides config)")
	f.StringVar(&outDir, "out", "", "output directory (overrides config)")
	f.IntVar(&jobs, "jobs", 0, "routes reconciled concurrently (0 = one per CPU)")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.GTFS.Path = args[0]
	}
	if cmd.Flags().Changed("calendar") {
		cfg.GTFS.Calendars = calendars
	}
	if cmd.Flags().Changed("utm-zone") {
		cfg.Projection.UTMZone = utmZone
	}
	if cmd.Flags().Changed("out") {
		cfg.Output.Dir = outDir
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = jobs
	}
	if cfg.GTFS.Path == "" {
		return errors.New("no GTFS feed given: pass a path argument or set gtfs.path in the config")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sum, err := pipeline.New(cfg, logger).Run(ctx)
	if err != nil {
		return err
	}

	color.New(color.FgGreen, color.Bold).Printf("%d routes written (%d segments) to %s\n",
		sum.Routes, sum.Segments, cfg.Output.Dir)
	if sum.Failed > 0 {
		color.New(color.FgYellow).Printf("%d routes skipped after errors, see log\n", sum.Failed)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
