package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/spinmotion/internal/config"
	"github.com/san-kum/spinmotion/internal/metrics"
	"github.com/san-kum/spinmotion/internal/motion"
	"github.com/san-kum/spinmotion/internal/phantom"
	"github.com/san-kum/spinmotion/internal/storage"
	"github.com/san-kum/spinmotion/internal/timegrid"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	spins      int
	radius     float64
	seed       int64
	phantomKey string
	scenario   string
	configFile string
	verbose    bool
)

var log zerolog.Logger

func main() {
	rootCmd := &cobra.Command{
		Use:   "spinmotion",
		Short: "spin trajectory motion composition engine",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".spinmotion", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "evaluate spin trajectories",
		RunE:  runTrajectories,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "max sample spacing")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().IntVar(&spins, "spins", config.DefaultSpins, "spin count")
	runCmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "phantom radius / extent")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed recorded with the run")
	runCmd.Flags().StringVar(&phantomKey, "phantom", config.DefaultPhantom, "phantom geometry (ring, grid)")
	runCmd.Flags().StringVar(&scenario, "scenario", config.DefaultScenario, "motion scenario preset")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	breakpointsCmd := &cobra.Command{
		Use:   "breakpoints",
		Short: "print a scenario's motion breakpoints",
		RunE:  printBreakpoints,
	}
	breakpointsCmd.Flags().StringVar(&scenario, "scenario", config.DefaultScenario, "motion scenario preset")
	breakpointsCmd.Flags().IntVar(&spins, "spins", config.DefaultSpins, "spin count")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	rootCmd.AddCommand(runCmd, breakpointsCmd, listCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadRunConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		log.Debug().Str("path", configFile).Msg("config loaded")
	} else {
		cfg.Phantom = phantomKey
		cfg.Scenario = scenario
		cfg.Spins = spins
		cfg.Radius = radius
		cfg.Dt = dt
		cfg.Duration = duration
		cfg.Seed = seed
	}
	cfg.DataDir = dataDir
	return cfg, cfg.Validate()
}

func buildPhantom(cfg *config.Config) (*phantom.Phantom, error) {
	var x, y, z []float64
	switch cfg.Phantom {
	case "ring":
		x, y, z = phantom.Ring(cfg.Spins, cfg.Radius)
	case "grid":
		side := 1
		for side*side < cfg.Spins {
			side++
		}
		x, y, z = phantom.Grid(side, side, 2*cfg.Radius/float64(side))
	default:
		return nil, fmt.Errorf("unknown phantom %q", cfg.Phantom)
	}

	model, err := phantom.Scenario(cfg.Scenario, len(x))
	if err != nil {
		return nil, err
	}
	return phantom.New(cfg.Phantom, x, y, z, model)
}

func runTrajectories(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	p, err := buildPhantom(cfg)
	if err != nil {
		return err
	}

	grid, err := timegrid.FromBreakpoints(p.Motion.Times(), cfg.Dt)
	if err != nil {
		return err
	}
	grid, err = timegrid.Extend(grid, cfg.Duration, cfg.Dt)
	if err != nil {
		return err
	}

	log.Info().
		Str("phantom", cfg.Phantom).
		Str("scenario", cfg.Scenario).
		Int("spins", p.SpinCount()).
		Int("samples", len(grid)).
		Msg("evaluating trajectories")

	xt, yt, zt, err := p.Coords(motion.SharedTimes(grid))
	if err != nil {
		return err
	}

	ms := []metrics.Metric{
		metrics.NewMaxDisplacement(),
		metrics.NewPathLength(),
		metrics.NewBoundingRadius(),
	}
	values := metrics.Evaluate(ms, grid, xt, yt, zt)
	for name, v := range values {
		log.Info().Float64(name, v).Msg("metric")
	}

	store := storage.New(cfg.DataDir, log)
	if err := store.Init(); err != nil {
		return err
	}

	runID, err := store.Save(storage.RunMetadata{
		Phantom:  cfg.Phantom,
		Scenario: cfg.Scenario,
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
		Seed:     cfg.Seed,
		Metrics:  values,
	}, grid, xt, yt, zt)
	if err != nil {
		return err
	}

	fmt.Println(runID)
	return nil
}

func printBreakpoints(cmd *cobra.Command, args []string) error {
	model, err := phantom.Scenario(scenario, spins)
	if err != nil {
		return err
	}
	for _, t := range model.Times() {
		fmt.Printf("%g\n", t)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir, log)
	runs, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPHANTOM\tSCENARIO\tSPINS\tSAMPLES\tDURATION")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.2f\n",
			r.ID, r.Phantom, r.Scenario, r.Spins, r.Samples, r.Duration)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir, log)
	meta, err := store.LoadMetadata(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
