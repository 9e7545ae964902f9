package fftcompare

import (
	"errors"
	"fmt"
	"time"
)

// Transform runs one forward transform of in on backend b: it allocates the
// output, creates a plan, times the plan's execution alone and closes the
// plan. Allocation and plan setup are never inside the timed region.
//
// Every failure is returned as a *StageError naming the backend and stage.
func Transform(b Backend, clock Clock, in *InputGrid) (*Spectrum, time.Duration, error) {
	name := b.Info().Name

	if err := in.check(); err != nil {
		return nil, 0, stageErr(name, StageVerify, ErrShapeMismatch, err)
	}

	plan, err := b.NewPlan(in.Shape)
	if err != nil {
		return nil, 0, stageErr(name, StagePlan, ErrBackendInit, err)
	}

	out, d, err := transformWithPlan(b, plan, clock, in)

	if cerr := plan.Close(); cerr != nil && err == nil {
		out.Release()
		return nil, 0, stageErr(name, StageRelease, ErrBackendInit, cerr)
	}

	return out, d, err
}

// transformWithPlan allocates an output buffer for in and executes an
// already created plan. The plan stays open.
func transformWithPlan(b Backend, plan Plan, clock Clock, in *InputGrid) (*Spectrum, time.Duration, error) {
	name := b.Info().Name

	if plan.Shape() != in.Shape {
		return nil, 0, stageErr(name, StageVerify, ErrShapeMismatch,
			fmt.Errorf("plan %s, input %s", plan.Shape(), in.Shape))
	}

	out, err := b.NewBuffer(in.Shape)
	if err != nil {
		return nil, 0, stageErr(name, StageAllocate, ErrResourceExhausted, err)
	}
	if out == nil {
		return nil, 0, stageErr(name, StageAllocate, ErrResourceExhausted, ErrNilBuffer)
	}

	start := clock.Now()
	err = plan.Forward(out, in)
	end := clock.Now()

	if err != nil {
		out.Release()
		if errors.Is(err, ErrResourceExhausted) {
			return nil, 0, stageErr(name, StageExecute, ErrResourceExhausted, err)
		}
		return nil, 0, stageErr(name, StageExecute, ErrBackendInit, err)
	}

	if out.Shape != in.Shape {
		out.Release()
		return nil, 0, stageErr(name, StageVerify, ErrShapeMismatch,
			fmt.Errorf("output %s, input %s", out.Shape, in.Shape))
	}
	if err := out.check(); err != nil {
		out.Release()
		return nil, 0, stageErr(name, StageVerify, ErrShapeMismatch, err)
	}

	return out, elapsed(clock, start, end), nil
}
