package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dynarray/internal/config"
	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/export"
	"github.com/san-kum/dynarray/internal/storage"
	"github.com/san-kum/dynarray/internal/viz"
	"github.com/san-kum/dynarray/internal/workload"
	"github.com/spf13/cobra"
)

var (
	dataDir     string
	configFile  string
	capacity    int
	stopOnError bool
	noSave      bool
	interval    time.Duration
	benchSizes  []int
	seed        int64
)

// main registers commands and flags and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "dynarray",
		Short:        "growable array scenario lab",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".dynarray", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "replay a scenario and save the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	addOverrideFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot size and capacity of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run steps to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and steps to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSONStdout(args[0])
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export size and capacity history as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCAPACITY\tVALUES\tOPS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				capText := "default"
				if c, ok := p.Capacity(); ok {
					capText = strconv.Itoa(c)
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", name, capText, len(p.Values), len(p.Ops))
			}
			return w.Flush()
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "step through a scenario interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	addOverrideFlags(liveCmd)
	liveCmd.Flags().DurationVar(&interval, "interval", 300*time.Millisecond, "time between ops")

	compareCmd := &cobra.Command{
		Use:   "compare [preset] [order1] [order2] ...",
		Short: "compare sort orders on the same scenario",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareOrders,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [preset...]",
		Short: "replay several scenarios concurrently",
		RunE:  runBatch,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark growth and sorting",
		RunE:  benchArray,
	}
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{1000, 10000, 100000}, "element counts")
	benchCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, liveCmd, compareCmd, batchCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadScenario resolves a scenario from a preset name, a config file, or
// both (the file wins), defaulting to the reference preset.
func loadScenario(args []string) (*config.Config, error) {
	name := "reference"
	if len(args) > 0 {
		name = args[0]
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}
	return cfg, nil
}

// addOverrideFlags registers the flags that override scenario settings.
func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&capacity, "capacity", dynarray.DefaultCapacity, "initial capacity")
	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "abort on the first failing op")
}

// applyOverrides copies explicitly set override flags onto cfg.
func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("capacity") {
		c := capacity
		cfg.InitialCapacity = &c
	}
	if cmd.Flags().Changed("stop-on-error") {
		cfg.StopOnError = stopOnError
	}
}

func newRunner() *workload.Runner {
	r := workload.NewRunner(workload.NewRegistry())
	for _, m := range workload.DefaultMetrics() {
		r.AddMetric(m)
	}
	return r
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(args)
	if err != nil {
		return err
	}
	applyOverrides(cmd, cfg)

	fmt.Printf("replaying %s...\n", cfg.Name)
	start := time.Now()

	result, err := newRunner().Run(context.Background(), cfg)
	if result == nil {
		return err
	}
	elapsed := time.Since(start)

	for _, st := range result.Steps {
		if st.Err != "" {
			fmt.Printf("  step %d %s: %s\n", st.Index, st.Op, st.Err)
		}
	}
	if err != nil {
		fmt.Printf("stopped: %v\n", err)
	}

	fmt.Printf("completed in %v\n", elapsed)
	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	fmt.Printf("steps: %d\n", len(result.Steps))
	fmt.Printf("final: %s\n", result.Final)
	fmt.Printf("size: %d  capacity: %d\n", result.Size, result.Capacity)
	fmt.Println("\nmetrics:")
	printMetrics(result.Metrics)

	return err
}

func printMetrics(metrics map[string]float64) {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.3f\n", name, metrics[name])
	}
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tSTEPS\tSIZE\tCAP\tERRORS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%.0f\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Size,
			run.Capacity,
			run.Metrics["errors"],
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

	steps, err := st.LoadSteps(runID)
	if err != nil {
		return err
	}

	if len(steps) < 2 {
		return fmt.Errorf("not enough steps to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("steps: %d\n\n", len(steps))

	fmt.Println(viz.CapacityChart(steps, 80, 12))
	fmt.Println()

	fill := make([]float64, len(steps))
	for i, s := range steps {
		if s.Capacity > 0 {
			fill[i] = float64(s.Size) / float64(s.Capacity)
		}
	}
	fmt.Println(asciigraph.Plot(fill,
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.Caption("fill ratio"),
	))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}

	if len(steps) == 0 {
		return fmt.Errorf("no data to export")
	}

	return writeStepsCSV(os.Stdout, steps)
}

func writeStepsCSV(out io.Writer, steps []workload.Step) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"step", "op", "size", "capacity", "grew", "error"}); err != nil {
		return err
	}
	for _, s := range steps {
		row := []string{
			strconv.Itoa(s.Index),
			s.Op,
			strconv.Itoa(s.Size),
			strconv.Itoa(s.Capacity),
			strconv.FormatBool(s.Grew),
			s.Err,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	steps, err := storage.New(dataDir).LoadSteps(args[0])
	if err != nil {
		return err
	}

	svg := export.StepsToSVG(steps, 800, 300)
	if svg == "" {
		return fmt.Errorf("not enough steps to export")
	}
	fmt.Println(svg)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(args)
	if err != nil {
		return err
	}
	applyOverrides(cmd, cfg)

	m, err := viz.NewModel(newRunner(), cfg, interval)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func compareOrders(cmd *cobra.Command, args []string) error {
	base, err := loadScenario(args[:1])
	if err != nil {
		return err
	}
	orders := args[1:]

	fmt.Printf("comparing orders for %s (%d values)\n\n", base.Name, len(base.Values))
	fmt.Printf("%-10s  %-10s  %s\n", "order", "time_us", "result")
	fmt.Println(strings.Repeat("-", 60))

	registry := workload.NewRegistry()
	for _, order := range orders {
		if _, err := registry.GetOrder(order); err != nil {
			fmt.Printf("%-10s  error: %v\n", order, err)
			continue
		}

		cfg := *base
		cfg.Ops = []config.OpConfig{{Op: config.OpSort, Order: order}}

		start := time.Now()
		result, err := workload.NewRunner(registry).Run(context.Background(), &cfg)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("%-10s  error: %v\n", order, err)
			continue
		}

		fmt.Printf("%-10s  %10d  %s\n", order, elapsed.Microseconds(), result.Final)
	}

	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = config.ListPresets()
	}

	cfgs := make([]*config.Config, 0, len(names))
	for _, name := range names {
		cfg, err := loadScenario([]string{name})
		if err != nil {
			return err
		}
		cfgs = append(cfgs, cfg)
	}

	start := time.Now()
	results, err := workload.NewBatch(workload.NewRegistry(), nil).Run(context.Background(), cfgs)
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tSTEPS\tSIZE\tCAP\tGROWTHS\tPEAK\tERRORS")
	for _, res := range results {
		if res == nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.0f\t%.0f\t%.0f\n",
			res.Name, len(res.Steps), res.Size, res.Capacity,
			res.Metrics["growths"], res.Metrics["peak_capacity"], res.Metrics["errors"])
	}
	if ferr := w.Flush(); ferr != nil {
		return ferr
	}

	fmt.Printf("\n%d scenarios in %v\n", len(cfgs), elapsed)
	return err
}

func benchArray(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(seed))

	fmt.Printf("benchmarking dynarray (seed %d)\n\n", seed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tFINAL CAP\tADD\tADD/OP\tSORT\tSORTED")

	for _, n := range benchSizes {
		if n <= 0 {
			return fmt.Errorf("size must be positive, got %d", n)
		}

		a := dynarray.New[int]()
		start := time.Now()
		for i := 0; i < n; i++ {
			a.Add(rng.Int())
		}
		addTime := time.Since(start)

		start = time.Now()
		dynarray.SortOrdered(a)
		sortTime := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%v\t%v\t%v\t%v\n",
			n, a.Cap(), addTime, addTime/time.Duration(n), sortTime, isSorted(a))
	}

	return w.Flush()
}

func isSorted(a *dynarray.Array[int]) bool {
	prev, _ := a.Get(0)
	for i := 1; i < a.Len(); i++ {
		v, _ := a.Get(i)
		if v < prev {
			return false
		}
		prev = v
	}
	return true
}
