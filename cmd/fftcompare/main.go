// Command fftcompare runs two 2D real-to-complex FFT backends on the same
// random grids, checks that their spectra agree and reports the average
// execution time of each.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/fftcompare"
	"github.com/cwbudde/fftcompare/backend"
	"github.com/cwbudde/fftcompare/internal/config"
	"github.com/cwbudde/fftcompare/internal/cpu"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "fftcompare: %v\n", err)
		return 1
	}
	return 0
}

// flagValues holds the command-line overrides. Only flags the user set are
// applied on top of the loaded configuration.
type flagValues struct {
	configPath      string
	rows            int
	cols            int
	trials          int
	seed            uint64
	tolerance       float64
	backendA        string
	backendB        string
	clock           string
	reusePlans      bool
	reseedEachTrial bool
	logLevel        string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var fv flagValues

	compare := func(cmd *cobra.Command, _ []string) error {
		return runCompare(cmd, &fv, stdout, stderr)
	}

	rootCmd := &cobra.Command{
		Use:   "fftcompare",
		Short: "Compare two 2D real-to-complex FFT backends for agreement and speed",
		Long: `fftcompare generates seeded random grids, transforms each one with two
FFT backends, checks the half spectra agree within a tolerance and reports
the average execution time of each backend in microseconds.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          compare,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the comparison (default command)",
		Args:  cobra.NoArgs,
		RunE:  compare,
	}

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "List registered backends and detected CPU features",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			listBackends(stdout)
			return nil
		},
	}

	def := config.Default()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&fv.configPath, "config", "", "path to a YAML or JSON config file")
	pf.IntVar(&fv.rows, "rows", def.Rows, "grid rows")
	pf.IntVar(&fv.cols, "cols", def.Cols, "grid columns (even)")
	pf.IntVar(&fv.trials, "trials", def.Trials, "number of trials")
	pf.Uint64Var(&fv.seed, "seed", def.Seed, "random seed")
	pf.Float64Var(&fv.tolerance, "tolerance", def.Tolerance, "absolute per-component tolerance")
	pf.StringVar(&fv.backendA, "backend-a", def.BackendA, "first backend")
	pf.StringVar(&fv.backendB, "backend-b", def.BackendB, "second backend")
	pf.StringVar(&fv.clock, "clock", def.Clock, "timing clock: monotonic or cycles")
	pf.BoolVar(&fv.reusePlans, "reuse-plans", def.ReusePlans, "create each backend's plan once per run")
	pf.BoolVar(&fv.reseedEachTrial, "reseed-each-trial", def.ReseedEachTrial, "restart the random stream before every trial")
	pf.StringVar(&fv.logLevel, "log-level", def.LogLevel, "log level: debug, info, warn or error")

	rootCmd.AddCommand(runCmd, backendsCmd)

	return rootCmd
}

func runCompare(cmd *cobra.Command, fv *flagValues, stdout, stderr io.Writer) error {
	cfg, err := config.Load(fv.configPath, func(c *config.Config) { applyFlags(cmd, fv, c) })
	if err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	clock, err := fftcompare.ClockByName(cfg.Clock)
	if err != nil {
		return err
	}

	a, err := backend.New(cfg.BackendA)
	if err != nil {
		return err
	}
	b, err := backend.New(cfg.BackendB)
	if err != nil {
		return err
	}

	runner, err := fftcompare.NewRunner(cfg.RunConfig(), a, b,
		fftcompare.WithClock(clock),
		fftcompare.WithReporter(fftcompare.NewTextReporter(stdout)),
		fftcompare.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	_, err = runner.Run()
	return err
}

// applyFlags copies every explicitly set flag into cfg.
func applyFlags(cmd *cobra.Command, fv *flagValues, cfg *config.Config) {
	set := func(name string) bool { return cmd.Flags().Changed(name) }

	if set("rows") {
		cfg.Rows = fv.rows
	}
	if set("cols") {
		cfg.Cols = fv.cols
	}
	if set("trials") {
		cfg.Trials = fv.trials
	}
	if set("seed") {
		cfg.Seed = fv.seed
	}
	if set("tolerance") {
		cfg.Tolerance = fv.tolerance
	}
	if set("backend-a") {
		cfg.BackendA = fv.backendA
	}
	if set("backend-b") {
		cfg.BackendB = fv.backendB
	}
	if set("clock") {
		cfg.Clock = fv.clock
	}
	if set("reuse-plans") {
		cfg.ReusePlans = fv.reusePlans
	}
	if set("reseed-each-trial") {
		cfg.ReseedEachTrial = fv.reseedEachTrial
	}
	if set("log-level") {
		cfg.LogLevel = fv.logLevel
	}
}

func listBackends(w io.Writer) {
	fmt.Fprintf(w, "%-10s  %-28s  %s\n", "name", "version", "description")
	for _, info := range backend.Infos() {
		fmt.Fprintf(w, "%-10s  %-28s  %s\n", info.Name, info.Version, info.Description)
	}

	fmt.Fprintf(w, "\ncpu: %s\n", cpu.DetectFeatures())
	fmt.Fprintf(w, "cycle counter: %.1f MHz\n", float64(cpu.CounterFrequencyHz())/1e6)
}
