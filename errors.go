package fftcompare

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by harness operations.
var (
	// ErrInvalidShape is returned when a grid shape has non-positive
	// dimensions or an odd column count.
	ErrInvalidShape = errors.New("fftcompare: invalid shape")

	// ErrNilBuffer is returned when a nil grid or spectrum is passed in.
	ErrNilBuffer = errors.New("fftcompare: nil buffer")

	// ErrShapeMismatch is returned when two buffers that must agree in
	// shape do not. It marks a defect, never a comparison verdict.
	ErrShapeMismatch = errors.New("fftcompare: shape mismatch")

	// ErrInvalidTolerance is returned for negative or non-finite tolerances.
	ErrInvalidTolerance = errors.New("fftcompare: invalid tolerance")

	// ErrResourceExhausted is returned when a shape exceeds MaxElements or
	// an output buffer or plan resources cannot be allocated.
	ErrResourceExhausted = errors.New("fftcompare: resource exhausted")

	// ErrBackendInit is returned when a backend fails to create, execute
	// or release a transform plan.
	ErrBackendInit = errors.New("fftcompare: backend failure")

	// ErrRandomSource is returned when the random source cannot be set up
	// or cannot fill a grid.
	ErrRandomSource = errors.New("fftcompare: random source failure")
)

// StageError reports which backend failed and in which stage.
type StageError struct {
	Backend string
	Stage   Stage
	Err     error
}

func (e *StageError) Error() string {
	if e.Backend == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("backend %q: %s: %v", e.Backend, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Stage names a step of the per-trial pipeline.
type Stage uint8

const (
	StageGenerate Stage = iota
	StageAllocate
	StagePlan
	StageExecute
	StageRelease
	StageVerify
)

// String returns a human-readable name for the stage.
func (s Stage) String() string {
	switch s {
	case StageGenerate:
		return "generate"
	case StageAllocate:
		return "allocate"
	case StagePlan:
		return "plan"
	case StageExecute:
		return "execute"
	case StageRelease:
		return "release"
	case StageVerify:
		return "verify"
	default:
		return "unknown"
	}
}

func stageErr(backend string, stage Stage, sentinel, cause error) error {
	err := sentinel
	if cause != nil && !errors.Is(cause, sentinel) {
		err = fmt.Errorf("%w: %w", sentinel, cause)
	} else if cause != nil {
		err = cause
	}

	return &StageError{Backend: backend, Stage: stage, Err: err}
}
