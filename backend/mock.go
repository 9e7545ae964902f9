package backend

import (
	"fmt"

	"github.com/cwbudde/fftcompare"
)

func init() {
	Register("mock", func() (fftcompare.Backend, error) { return NewMockBackend(nil, FaultNone, 0), nil })
}

// Fault selects the stage at which a MockBackend misbehaves.
type Fault uint8

const (
	FaultNone    Fault = iota
	FaultAlloc         // NewBuffer fails
	FaultPlan          // NewPlan fails
	FaultExecute       // Forward fails
	FaultClose         // Plan.Close fails
	FaultCorrupt       // Forward succeeds but perturbs one output bin
)

// String returns a human-readable name for the fault.
func (f Fault) String() string {
	switch f {
	case FaultNone:
		return "none"
	case FaultAlloc:
		return "alloc"
	case FaultPlan:
		return "plan"
	case FaultExecute:
		return "execute"
	case FaultClose:
		return "close"
	case FaultCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// MockBackend delegates to another backend and injects a fault after a
// number of successful calls of the faulted stage. It is meant for tests of
// the harness's failure handling.
type MockBackend struct {
	name  string
	inner fftcompare.Backend
	fault Fault
	after int
	calls int // entries into the faulted stage
}

// NewMockBackend wraps inner. The fault fires on every call of its stage
// once `after` calls have succeeded. A nil inner uses the native backend.
func NewMockBackend(inner fftcompare.Backend, fault Fault, after int) *MockBackend {
	if inner == nil {
		inner = NewNativeBackend()
	}
	return &MockBackend{
		name:  "mock",
		inner: inner,
		fault: fault,
		after: after,
	}
}

// WithName sets the name reported by Info.
func (b *MockBackend) WithName(name string) *MockBackend {
	b.name = name
	return b
}

func (b *MockBackend) Info() fftcompare.BackendInfo {
	inner := b.inner.Info()
	return fftcompare.BackendInfo{
		Name:        b.name,
		Version:     inner.Version,
		Description: fmt.Sprintf("mock over %s (fault %s after %d)", inner.Name, b.fault, b.after),
	}
}

// trip counts a call of stage f and reports whether the fault fires.
func (b *MockBackend) trip(f Fault) bool {
	if b.fault != f {
		return false
	}
	b.calls++
	return b.calls > b.after
}

func (b *MockBackend) NewBuffer(shape fftcompare.Shape) (*fftcompare.Spectrum, error) {
	if b.trip(FaultAlloc) {
		return nil, fmt.Errorf("%w: allocate %d bins", ErrInjected, shape.SpectrumLen())
	}
	return b.inner.NewBuffer(shape)
}

func (b *MockBackend) NewPlan(shape fftcompare.Shape) (fftcompare.Plan, error) {
	if b.trip(FaultPlan) {
		return nil, fmt.Errorf("%w: create plan for %s", ErrInjected, shape)
	}

	p, err := b.inner.NewPlan(shape)
	if err != nil {
		return nil, err
	}
	return &mockPlan{backend: b, inner: p}, nil
}

type mockPlan struct {
	backend *MockBackend
	inner   fftcompare.Plan
}

func (p *mockPlan) Shape() fftcompare.Shape {
	return p.inner.Shape()
}

func (p *mockPlan) Forward(dst *fftcompare.Spectrum, src *fftcompare.InputGrid) error {
	if p.backend.trip(FaultExecute) {
		return fmt.Errorf("%w: forward", ErrInjected)
	}

	if err := p.inner.Forward(dst, src); err != nil {
		return err
	}

	if p.backend.trip(FaultCorrupt) && len(dst.Data) > 0 {
		dst.Data[0] += 1
	}
	return nil
}

func (p *mockPlan) Close() error {
	err := p.inner.Close()
	if p.backend.trip(FaultClose) {
		return fmt.Errorf("%w: close", ErrInjected)
	}
	return err
}
