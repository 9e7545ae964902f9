package backend

import (
	"fmt"

	"github.com/cwbudde/fftcompare"
	"github.com/cwbudde/fftcompare/internal/fft"
)

func init() {
	Register("native", func() (fftcompare.Backend, error) { return NewNativeBackend(), nil })
}

// NativeBackend computes 2D real FFTs with the in-tree radix-2 kernels.
// Both dimensions must be powers of 2.
type NativeBackend struct{}

// NewNativeBackend returns the in-tree backend.
func NewNativeBackend() *NativeBackend {
	return &NativeBackend{}
}

func (b *NativeBackend) Info() fftcompare.BackendInfo {
	return fftcompare.BackendInfo{
		Name:        "native",
		Version:     "1",
		Description: "radix-2 real FFT rows, complex FFT columns (powers of 2)",
	}
}

func (b *NativeBackend) NewBuffer(shape fftcompare.Shape) (*fftcompare.Spectrum, error) {
	return newBuffer(shape)
}

func (b *NativeBackend) NewPlan(shape fftcompare.Shape) (fftcompare.Plan, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	inner, err := fft.NewReal2D(shape.Rows, shape.Cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a power-of-2 shape: %w", ErrInvalidLength, shape, err)
	}

	return &nativePlan{shape: shape, inner: inner}, nil
}

type nativePlan struct {
	shape fftcompare.Shape
	inner *fft.Real2D
}

func (p *nativePlan) Shape() fftcompare.Shape {
	return p.shape
}

func (p *nativePlan) Forward(dst *fftcompare.Spectrum, src *fftcompare.InputGrid) error {
	if p.inner == nil {
		return fftcompare.ErrBackendInit
	}
	if err := checkBuffers(p.shape, dst, src); err != nil {
		return err
	}

	p.inner.Forward(dst.Data, src.Data)

	return nil
}

func (p *nativePlan) Close() error {
	p.inner = nil
	return nil
}
