package fftcompare

import (
	"bytes"
	"testing"
	"time"
)

func TestTextReporterTrialLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewTextReporter(&buf)

	rep.Trial(TrialResult{Index: 0, Verdict: Verdict{Equal: true}})
	rep.Trial(TrialResult{Index: 1, Verdict: Verdict{Mismatch: &Mismatch{}}})
	rep.Trial(TrialResult{Index: 2, Verdict: Verdict{Equal: true}})

	want := "0 RESULT CORRECT!\n1 RESULT ERROR!\n2 RESULT CORRECT!\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestTextReporterFinal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewTextReporter(&buf)

	rep.Final(AggregateStats{
		BackendA: "gonum",
		BackendB: "godsp",
		TotalA:   3 * time.Millisecond,
		TotalB:   1500 * time.Microsecond,
		Trials:   2,
	})

	want := "GONUM AVERAGE RUN TIME: 1500.000000 US\n" +
		"GODSP AVERAGE RUN TIME: 750.000000 US\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestTextReporterFinalNoTrials(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewTextReporter(&buf).Final(AggregateStats{BackendA: "a", BackendB: "b"})

	want := "A AVERAGE RUN TIME: 0.000000 US\nB AVERAGE RUN TIME: 0.000000 US\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestAggregateStatsAdd(t *testing.T) {
	t.Parallel()

	var s AggregateStats
	s.add(TrialResult{ElapsedA: 10 * time.Microsecond, ElapsedB: 20 * time.Microsecond, Verdict: Verdict{Equal: true}})
	s.add(TrialResult{ElapsedA: 30 * time.Microsecond, ElapsedB: 40 * time.Microsecond})

	if s.Trials != 2 || s.Mismatches != 1 {
		t.Fatalf("trials=%d mismatches=%d, want 2 and 1", s.Trials, s.Mismatches)
	}
	if s.AverageA() != 20*time.Microsecond {
		t.Errorf("AverageA = %v, want 20µs", s.AverageA())
	}
	if s.AverageB() != 30*time.Microsecond {
		t.Errorf("AverageB = %v, want 30µs", s.AverageB())
	}
}

func TestMicros(t *testing.T) {
	t.Parallel()

	if got := micros(1500 * time.Nanosecond); got != 1.5 {
		t.Fatalf("micros = %v, want 1.5", got)
	}
}

func TestRunWithTextReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	r, err := NewRunner(smallConfig(2), &dftBackend{name: "left"}, &dftBackend{name: "right"},
		WithClock(&stepClock{step: 5}), WithReporter(NewTextReporter(&buf)))
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	if _, err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "0 RESULT CORRECT!\n1 RESULT CORRECT!\n" +
		"LEFT AVERAGE RUN TIME: 5.000000 US\n" +
		"RIGHT AVERAGE RUN TIME: 5.000000 US\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}
