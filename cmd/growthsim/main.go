package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/growthsim/internal/analysis"
	"github.com/san-kum/growthsim/internal/config"
	"github.com/san-kum/growthsim/internal/econ"
	"github.com/san-kum/growthsim/internal/metrics"
	"github.com/san-kum/growthsim/internal/models"
	"github.com/san-kum/growthsim/internal/storage"
	"github.com/san-kum/growthsim/internal/sweep"
	"github.com/san-kum/growthsim/internal/viz"
)

var (
	dataDir   string
	alpha     float64
	delta     float64
	savings   float64
	k0        float64
	horizon   int
	tolerance float64
	// Config file
	configFile string
	// Preset name
	preset string
	// Frame rate for live view
	frameRate int
	// Sweep ranges
	sweepParam  string
	sweepFrom   float64
	sweepTo     float64
	sweepSteps  int
	sweepParam2 string
	sweepFrom2  float64
	sweepTo2    float64
	sweepSteps2 int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "growthsim",
		Short: "solow growth model simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".growthsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation",
		RunE:  runSimulation,
	}
	addModelFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	steadyCmd := &cobra.Command{
		Use:   "steady",
		Short: "print the closed-form steady state",
		RunE:  steadyState,
	}
	addModelFlags(steadyCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [savings1] [savings2] ...",
		Short: "compare savings rates on the same initial capital",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareSavings,
	}
	addModelFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep a parameter range",
		RunE:  runSweep,
	}
	addModelFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "savings", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.1, "range start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0.5, "range end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 9, "number of grid points")
	sweepCmd.Flags().StringVar(&sweepParam2, "param2", "", "second parameter (grid sweep)")
	sweepCmd.Flags().Float64Var(&sweepFrom2, "from2", 0.1, "second range start")
	sweepCmd.Flags().Float64Var(&sweepTo2, "to2", 0.3, "second range end")
	sweepCmd.Flags().IntVar(&sweepSteps2, "steps2", 3, "second grid size")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		RunE:  runLive,
	}
	addModelFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, steadyCmd, compareCmd, sweepCmd, liveCmd, presetsCmd, exportCmd, exportCSVCmd, exportJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&alpha, "alpha", config.DefaultAlpha, "output elasticity of capital")
	cmd.Flags().Float64Var(&delta, "delta", config.DefaultDelta, "depreciation rate")
	cmd.Flags().Float64Var(&savings, "savings", config.DefaultSavings, "savings rate")
	cmd.Flags().Float64Var(&k0, "k0", config.DefaultCapital, "initial capital")
	cmd.Flags().IntVar(&horizon, "periods", config.DefaultHorizon, "number of periods")
	cmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "convergence tolerance")
}

// resolveConfig applies preset then config file, with CLI flags taking
// precedence over both.
func resolveConfig(cmd *cobra.Command) error {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		alpha = cfg.Alpha
		delta = cfg.Delta
		savings = cfg.Savings
		k0 = cfg.InitialCapital
		horizon = cfg.Horizon
		tolerance = cfg.Tolerance
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("alpha") {
			alpha = cfg.Alpha
		}
		if !cmd.Flags().Changed("delta") {
			delta = cfg.Delta
		}
		if !cmd.Flags().Changed("savings") {
			savings = cfg.Savings
		}
		if !cmd.Flags().Changed("k0") {
			k0 = cfg.InitialCapital
		}
		if !cmd.Flags().Changed("periods") {
			horizon = cfg.Horizon
		}
		if !cmd.Flags().Changed("tol") {
			tolerance = cfg.Tolerance
		}
	}

	return nil
}

func buildModel() *models.Solow {
	return &models.Solow{Alpha: alpha, Delta: delta, Savings: savings}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if err := resolveConfig(cmd); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	m := buildModel()
	if err := m.Validate(); err != nil {
		fmt.Printf("warning: %v\n", err)
	}

	s := econ.New(m)
	s.AddMetric(metrics.NewResidual())
	s.AddMetric(metrics.NewMeanGrowth())

	fmt.Printf("running %s simulation...\n", m.Name())
	start := time.Now()

	result, err := s.Run(context.Background(), k0, econ.Config{Horizon: horizon, ValidatePath: true})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	meta := storage.RunMetadata{
		Model:          m.Name(),
		Alpha:          m.Alpha,
		Delta:          m.Delta,
		Savings:        m.Savings,
		InitialCapital: k0,
		Horizon:        horizon,
		SteadyState:    m.SteadyState(),
	}
	runID, err := st.Save(meta, result)
	if err != nil {
		return err
	}

	summary := analysis.Measure(result.Path, m.SteadyState(), tolerance)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("periods: %d\n", len(result.Path))
	fmt.Printf("final capital: %.6f\n", result.Path.Last())
	fmt.Printf("steady state: %.6f\n", m.SteadyState())
	if summary.Converged {
		fmt.Printf("converged at period %d (half-life %d)\n", summary.ConvergedAt, summary.HalfLife)
	} else {
		fmt.Printf("not converged within %d periods (final delta %.2e)\n", horizon, summary.FinalDelta)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tALPHA\tDELTA\tSAVINGS\tK0\tPERIODS\tK*")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%.3f\t%.3f\t%d\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Alpha,
			run.Delta,
			run.Savings,
			run.InitialCapital,
			run.Horizon,
			run.SteadyState,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	path, err := st.LoadPath(runID)
	if err != nil {
		return err
	}

	if len(path) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("alpha=%.3f delta=%.3f savings=%.3f k0=%.3f\n\n", meta.Alpha, meta.Delta, meta.Savings, meta.InitialCapital)

	fmt.Println(viz.PlotPath(path, "capital stock"))
	fmt.Println()

	m := &models.Solow{Alpha: meta.Alpha, Delta: meta.Delta, Savings: meta.Savings}
	fmt.Println(viz.PlotFlows(analysis.ComputeFlows(m, path)))

	return nil
}

func steadyState(cmd *cobra.Command, args []string) error {
	if err := resolveConfig(cmd); err != nil {
		return err
	}

	m := buildModel()
	kstar := m.SteadyState()

	fmt.Printf("steady state k*: %.6f\n", kstar)
	fmt.Printf("golden-rule savings: %.3f\n", m.GoldenRuleSavings())
	if !math.IsInf(kstar, 0) {
		fmt.Printf("check s*k^a - d*k at k*: %.2e\n", m.Investment(kstar)-m.Depreciation(kstar))
	}

	return nil
}

func compareSavings(cmd *cobra.Command, args []string) error {
	if err := resolveConfig(cmd); err != nil {
		return err
	}

	rates := make([]float64, 0, len(args))
	for _, arg := range args {
		r, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid savings rate %q: %w", arg, err)
		}
		rates = append(rates, r)
	}

	fmt.Printf("comparing savings rates (alpha=%.3f, delta=%.3f, k0=%.3f, periods=%d)\n\n", alpha, delta, k0, horizon)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SAVINGS\tFINAL K\tK*\tCONVERGED\tAT PERIOD")

	paths := make([][]float64, 0, len(rates))
	legends := make([]string, 0, len(rates))

	for _, r := range rates {
		m := buildModel()
		m.Savings = r

		path, err := econ.Simulate(m, k0, horizon)
		if err != nil {
			return err
		}

		summary := analysis.Measure(path, m.SteadyState(), tolerance)
		at := "-"
		if summary.Converged {
			at = strconv.Itoa(summary.ConvergedAt)
		}
		fmt.Fprintf(w, "%.3f\t%.4f\t%.4f\t%v\t%s\n", r, path.Last(), m.SteadyState(), summary.Converged, at)

		paths = append(paths, path)
		legends = append(legends, fmt.Sprintf("s=%.2f", r))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.PlotCompare(paths, legends, "capital paths by savings rate"))

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	if err := resolveConfig(cmd); err != nil {
		return err
	}

	s := sweep.New(buildModel(), k0, horizon, tolerance)

	if sweepParam2 != "" {
		grid, err := s.RunGrid(context.Background(),
			sweepParam, sweep.Range(sweepFrom, sweepTo, sweepSteps),
			sweepParam2, sweep.Range(sweepFrom2, sweepTo2, sweepSteps2))
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\tFINAL K\tK*\tCONVERGED\n", sweepParam, sweepParam2)
		for _, row := range grid {
			for _, p := range row {
				fmt.Fprintf(w, "%.4f\t%.4f\t%.4f\t%.4f\t%v\n",
					p.Params[sweepParam], p.Params[sweepParam2], p.FinalCapital, p.SteadyState, p.Converged)
			}
		}
		return w.Flush()
	}

	points, err := s.Run(context.Background(), sweepParam, sweep.Range(sweepFrom, sweepTo, sweepSteps))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tFINAL K\tK*\tCONVERGED\tAT PERIOD\n", sweepParam)
	steadyStates := make([]float64, 0, len(points))
	for _, p := range points {
		at := "-"
		if p.Converged {
			at = strconv.Itoa(p.ConvergedAt)
		}
		fmt.Fprintf(w, "%.4f\t%.4f\t%.4f\t%v\t%s\n", p.Params[sweepParam], p.FinalCapital, p.SteadyState, p.Converged, at)
		steadyStates = append(steadyStates, p.SteadyState)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.PlotPath(steadyStates, fmt.Sprintf("steady state vs %s", sweepParam)))

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if err := resolveConfig(cmd); err != nil {
		return err
	}

	m := viz.NewModel(buildModel(), k0, horizon, frameRate)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	path, err := st.LoadPath(runID)
	if err != nil {
		return err
	}

	if len(path) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"period", "capital"}); err != nil {
		return err
	}
	for t, k := range path {
		row := []string{strconv.Itoa(t), strconv.FormatFloat(k, 'f', 10, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	path, err := st.LoadPath(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, path)
}
