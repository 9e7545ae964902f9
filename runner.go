package fftcompare

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cwbudde/fftcompare/internal/cpu"
)

// Default problem size.
const (
	DefaultRows   = 2048
	DefaultCols   = 2048
	DefaultTrials = 1000
)

// RunConfig fixes the problem solved by every trial of a run.
type RunConfig struct {
	Shape     Shape
	Trials    int
	Seed      uint64
	Tolerance float64

	// ReusePlans creates each backend's plan once per run instead of once
	// per trial. Plan creation is outside the timed region either way.
	ReusePlans bool

	// ReseedEachTrial restarts the random stream at Seed before every
	// trial, so all trials transform the same grid.
	ReseedEachTrial bool
}

// DefaultRunConfig returns the default configuration: 2048x2048 grids,
// 1000 trials, seed 1, tolerance 1e-6.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Shape:     Shape{Rows: DefaultRows, Cols: DefaultCols},
		Trials:    DefaultTrials,
		Seed:      DefaultSeed,
		Tolerance: DefaultTolerance,
	}
}

// Validate checks the configuration.
func (c RunConfig) Validate() error {
	if err := c.Shape.Validate(); err != nil {
		return err
	}
	if c.Trials < 0 {
		return fmt.Errorf("fftcompare: trials must be >= 0, got %d", c.Trials)
	}
	return checkTolerance(c.Tolerance)
}

// Phase is a state of the trial loop.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseGenerating
	PhaseTransformingA
	PhaseTransformingB
	PhaseComparing
	PhaseAccumulating
	PhaseDone
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseGenerating:
		return "generating"
	case PhaseTransformingA:
		return "transforming-a"
	case PhaseTransformingB:
		return "transforming-b"
	case PhaseComparing:
		return "comparing"
	case PhaseAccumulating:
		return "accumulating"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Runner drives the trial loop: generate, transform with A, transform with
// B, compare, accumulate. It is not safe for concurrent use.
type Runner struct {
	cfg      RunConfig
	a, b     Backend
	clock    Clock
	reporter Reporter
	logger   *slog.Logger
	source   *RandomSource
	observe  func(trial int, p Phase)
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock sets the timing clock. The default is MonotonicClock.
func WithClock(c Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithReporter sets the reporter. By default nothing is reported.
func WithReporter(rep Reporter) Option {
	return func(r *Runner) { r.reporter = rep }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithRandomSource replaces the source seeded from RunConfig.Seed.
func WithRandomSource(s *RandomSource) Option {
	return func(r *Runner) { r.source = s }
}

// WithPhaseObserver registers fn to be called on every phase transition.
func WithPhaseObserver(fn func(trial int, p Phase)) Option {
	return func(r *Runner) { r.observe = fn }
}

// NewRunner validates cfg and returns a runner comparing backend a against
// backend b.
func NewRunner(cfg RunConfig, a, b Backend, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("fftcompare: two backends are required")
	}

	r := &Runner{
		cfg:      cfg,
		a:        a,
		b:        b,
		clock:    MonotonicClock(),
		reporter: discardReporter{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.source == nil {
		r.source = NewRandomSource(cfg.Seed)
	}

	return r, nil
}

// Run executes all configured trials. Any allocation, plan or generation
// failure aborts the run at once: the stats gathered so far are returned
// with the error and no final report is written. A mismatch verdict is
// reported and counted but never stops the run.
func (r *Runner) Run() (AggregateStats, error) {
	stats := AggregateStats{
		BackendA: r.a.Info().Name,
		BackendB: r.b.Info().Name,
	}

	r.phase(0, PhaseIdle)
	r.logger.Info("run starting",
		"shape", r.cfg.Shape.String(),
		"trials", r.cfg.Trials,
		"seed", r.source.Seed(),
		"tolerance", r.cfg.Tolerance,
		"backend_a", stats.BackendA,
		"backend_b", stats.BackendB,
		"clock", r.clock.Name(),
		"reuse_plans", r.cfg.ReusePlans,
		"cpu", cpu.DetectFeatures().String(),
	)

	var planA, planB Plan
	if r.cfg.ReusePlans {
		var err error
		if planA, err = newPlan(r.a, r.cfg.Shape); err != nil {
			return stats, r.abort(0, err)
		}
		if planB, err = newPlan(r.b, r.cfg.Shape); err != nil {
			_ = planA.Close()
			return stats, r.abort(0, err)
		}
	}

	closePlans := func() error {
		if planA == nil {
			return nil
		}
		errA := planA.Close()
		errB := planB.Close()
		planA, planB = nil, nil
		if errA != nil {
			return stageErr(stats.BackendA, StageRelease, ErrBackendInit, errA)
		}
		if errB != nil {
			return stageErr(stats.BackendB, StageRelease, ErrBackendInit, errB)
		}
		return nil
	}

	for i := range r.cfg.Trials {
		res, err := r.trial(i, planA, planB)
		if err != nil {
			_ = closePlans()
			return stats, r.abort(i, err)
		}

		r.phase(i, PhaseAccumulating)
		stats.add(res)
		r.reporter.Trial(res)
	}

	if err := closePlans(); err != nil {
		return stats, r.abort(r.cfg.Trials, err)
	}

	r.phase(r.cfg.Trials, PhaseDone)
	r.logger.Info("run complete",
		"trials", stats.Trials,
		"mismatches", stats.Mismatches,
		"avg_a", stats.AverageA(),
		"avg_b", stats.AverageB(),
	)
	r.reporter.Final(stats)

	return stats, nil
}

func (r *Runner) trial(i int, planA, planB Plan) (TrialResult, error) {
	res := TrialResult{Index: i}

	r.phase(i, PhaseGenerating)
	if r.cfg.ReseedEachTrial {
		r.source.Reseed()
	}
	grid, err := r.source.Generate(r.cfg.Shape)
	if err != nil {
		return res, &StageError{Stage: StageGenerate, Err: err}
	}

	r.phase(i, PhaseTransformingA)
	outA, elapsedA, err := r.transform(r.a, planA, grid)
	if err != nil {
		return res, err
	}
	defer outA.Release()

	r.phase(i, PhaseTransformingB)
	outB, elapsedB, err := r.transform(r.b, planB, grid)
	if err != nil {
		return res, err
	}
	defer outB.Release()

	r.phase(i, PhaseComparing)
	verdict, err := Compare(outA, outB, r.cfg.Tolerance)
	if err != nil {
		return res, &StageError{Stage: StageVerify, Err: err}
	}
	if !verdict.Equal {
		r.logger.Debug("spectra differ", "trial", i, "first", verdict.Mismatch)
	}

	res.ElapsedA = elapsedA
	res.ElapsedB = elapsedB
	res.Verdict = verdict

	return res, nil
}

func (r *Runner) transform(b Backend, plan Plan, in *InputGrid) (*Spectrum, time.Duration, error) {
	if plan == nil {
		return Transform(b, r.clock, in)
	}
	return transformWithPlan(b, plan, r.clock, in)
}

func (r *Runner) abort(trial int, err error) error {
	r.logger.Error("run aborted", "trial", trial, "err", err)
	return err
}

func (r *Runner) phase(trial int, p Phase) {
	if r.observe != nil {
		r.observe(trial, p)
	}
}

func newPlan(b Backend, shape Shape) (Plan, error) {
	p, err := b.NewPlan(shape)
	if err != nil {
		return nil, stageErr(b.Info().Name, StagePlan, ErrBackendInit, err)
	}
	return p, nil
}
