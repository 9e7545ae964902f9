package fftcompare

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// TrialResult is the outcome of a single trial.
type TrialResult struct {
	Index    int
	ElapsedA time.Duration
	ElapsedB time.Duration
	Verdict  Verdict
}

// AggregateStats accumulates timings over a run.
type AggregateStats struct {
	BackendA   string
	BackendB   string
	TotalA     time.Duration
	TotalB     time.Duration
	Trials     int
	Mismatches int
}

func (s *AggregateStats) add(r TrialResult) {
	s.TotalA += r.ElapsedA
	s.TotalB += r.ElapsedB
	s.Trials++
	if !r.Verdict.Equal {
		s.Mismatches++
	}
}

// AverageA returns the mean execution time of backend A.
func (s AggregateStats) AverageA() time.Duration {
	if s.Trials == 0 {
		return 0
	}
	return s.TotalA / time.Duration(s.Trials)
}

// AverageB returns the mean execution time of backend B.
func (s AggregateStats) AverageB() time.Duration {
	if s.Trials == 0 {
		return 0
	}
	return s.TotalB / time.Duration(s.Trials)
}

// Reporter receives per-trial verdicts while the run progresses and the
// aggregate once it completes.
type Reporter interface {
	Trial(r TrialResult)
	Final(s AggregateStats)
}

// TextReporter writes one line per trial and two summary lines with the
// average run time of each backend in microseconds.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter returns a reporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (t *TextReporter) Trial(r TrialResult) {
	if r.Verdict.Equal {
		fmt.Fprintf(t.w, "%d RESULT CORRECT!\n", r.Index)
		return
	}
	fmt.Fprintf(t.w, "%d RESULT ERROR!\n", r.Index)
}

func (t *TextReporter) Final(s AggregateStats) {
	fmt.Fprintf(t.w, "%s AVERAGE RUN TIME: %f US\n", strings.ToUpper(s.BackendA), micros(s.AverageA()))
	fmt.Fprintf(t.w, "%s AVERAGE RUN TIME: %f US\n", strings.ToUpper(s.BackendB), micros(s.AverageB()))
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

// discardReporter drops everything.
type discardReporter struct{}

func (discardReporter) Trial(TrialResult)    {}
func (discardReporter) Final(AggregateStats) {}
