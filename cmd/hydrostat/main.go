package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/hydrostat/internal/config"
	"github.com/san-kum/hydrostat/internal/gui"
	"github.com/san-kum/hydrostat/internal/metrics"
	"github.com/san-kum/hydrostat/internal/sim"
	"github.com/san-kum/hydrostat/internal/vessel"
	"github.com/san-kum/hydrostat/internal/viz"
)

var (
	configFile string
	preset     string
	ticks      int
	pressure   float64
	tolerance  float64
	sweepFrom  float64
	sweepTo    float64
	sweepRuns  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hydrostat",
		Short: "communicating-vessels hydrostatics lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the windowed view when no command given.
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "windowed visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal live view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless convergence run",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	runCmd.Flags().Float64Var(&pressure, "pressure", 0.1, "piston pressure applied before the run")
	runCmd.Flags().Float64Var(&tolerance, "tolerance", 1e-9, "settling tolerance")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep a range of piston pressures",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks per run")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", -0.5, "lowest piston pressure")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0.5, "highest piston pressure")
	sweepCmd.Flags().IntVar(&sweepRuns, "runs", 11, "number of runs")
	sweepCmd.Flags().Float64Var(&tolerance, "tolerance", 1e-9, "settling tolerance")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			fmt.Println("presets:")
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, sweepCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// CLI flags override preset/config values.
	if cmd.Flags().Changed("ticks") || cfg.Ticks == 0 {
		cfg.Ticks = ticks
	}
	if cmd.Flags().Changed("pressure") || (cfg.ExternalPressure == 0 && preset == "" && configFile == "") {
		cfg.ExternalPressure = pressure
	}

	m := vessel.New(cfg.Vessel())
	m.ApplyPressureDelta(cfg.ExternalPressure)

	runner := sim.New(m)
	runner.AddMetric(metrics.NewImbalance())
	runner.AddMetric(metrics.NewPeakImbalance())
	runner.AddMetric(metrics.NewSettling(tolerance))

	fmt.Printf("running %d ticks with piston %+.2f...\n\n", cfg.Ticks, cfg.ExternalPressure)

	result, err := runner.Run(context.Background(), sim.Config{Ticks: cfg.Ticks})
	if err != nil {
		return err
	}

	final := result.Snapshots[len(result.Snapshots)-1]

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIDE\tWIDTH\tHEIGHT\tTOTAL P")
	fmt.Fprintf(w, "big\t%.2f\t%.4f\t%.4f\n", cfg.Big.Width, final.BigHeight, final.LeftPressure)
	fmt.Fprintf(w, "small\t%.2f\t%.4f\t%.4f\n", cfg.Small.Width, final.SmallHeight, final.RightPressure)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	fmt.Println()

	plot := func(caption string, f func(sim.Snapshot) float64) {
		graph := asciigraph.Plot(result.Series(f),
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	plot("big height", func(s sim.Snapshot) float64 { return s.BigHeight })
	plot("small height", func(s sim.Snapshot) float64 { return s.SmallHeight })
	plot("pressure imbalance", func(s sim.Snapshot) float64 { return s.Imbalance() })

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("ticks") || cfg.Ticks == 0 {
		cfg.Ticks = ticks
	}
	if sweepRuns < 2 {
		return fmt.Errorf("runs must be at least 2, got %d", sweepRuns)
	}

	pressures := make([]float64, sweepRuns)
	step := (sweepTo - sweepFrom) / float64(sweepRuns-1)
	for i := range pressures {
		pressures[i] = sweepFrom + float64(i)*step
	}

	s := sim.NewSweep(cfg.Vessel(), pressures)
	s.NewMetrics = func() []sim.Metric {
		return []sim.Metric{metrics.NewSettling(tolerance)}
	}

	fmt.Printf("sweeping %d piston pressures from %+.2f to %+.2f (%d ticks each)...\n\n",
		sweepRuns, sweepFrom, sweepTo, cfg.Ticks)

	results, err := s.Run(context.Background(), sim.Config{Ticks: cfg.Ticks})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PISTON\tBIG H\tSMALL H\tIMBALANCE\tSETTLED AT")
	for i, r := range results {
		final := r.Snapshots[len(r.Snapshots)-1]
		fmt.Fprintf(w, "%+.3f\t%.4f\t%.4f\t%.2e\t%.0f\n",
			pressures[i], final.BigHeight, final.SmallHeight, final.Imbalance(), r.Metrics["settling_tick"])
	}
	return w.Flush()
}
