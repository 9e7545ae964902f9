package backend

import (
	"sync"

	"github.com/mjibson/go-dsp/dsputils"
	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/fftcompare"
)

const godspModule = "github.com/mjibson/go-dsp"

var godspWorkers sync.Once

func init() {
	Register("godsp", func() (fftcompare.Backend, error) { return NewGoDSPBackend(), nil })
}

// GoDSPBackend computes 2D real FFTs with go-dsp's FFT2Real. go-dsp always
// produces the full spectrum; the non-redundant Cols/2+1 columns of each
// row are copied out.
type GoDSPBackend struct{}

// NewGoDSPBackend returns a go-dsp-backed backend. go-dsp's worker pool is
// limited to a single worker so transforms run on the calling goroutine's
// schedule only.
func NewGoDSPBackend() *GoDSPBackend {
	godspWorkers.Do(func() { fft.SetWorkerPoolSize(1) })
	return &GoDSPBackend{}
}

func (b *GoDSPBackend) Info() fftcompare.BackendInfo {
	return fftcompare.BackendInfo{
		Name:        "godsp",
		Version:     moduleVersion(godspModule),
		Description: "go-dsp FFT2Real, full spectrum truncated to half",
	}
}

func (b *GoDSPBackend) NewBuffer(shape fftcompare.Shape) (*fftcompare.Spectrum, error) {
	return newBuffer(shape)
}

func (b *GoDSPBackend) NewPlan(shape fftcompare.Shape) (fftcompare.Plan, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	// Precompute radix-2 factors so the first Forward does not pay for them.
	for _, n := range []int{shape.Rows, shape.Cols} {
		if dsputils.IsPowerOf2(n) {
			fft.EnsureRadix2Factors(n)
		}
	}

	staging := make([][]float64, shape.Rows)
	for r := range staging {
		staging[r] = make([]float64, shape.Cols)
	}

	return &godspPlan{shape: shape, staging: staging}, nil
}

type godspPlan struct {
	shape   fftcompare.Shape
	staging [][]float64
}

func (p *godspPlan) Shape() fftcompare.Shape {
	return p.shape
}

func (p *godspPlan) Forward(dst *fftcompare.Spectrum, src *fftcompare.InputGrid) error {
	if p.staging == nil {
		return fftcompare.ErrBackendInit
	}
	if err := checkBuffers(p.shape, dst, src); err != nil {
		return err
	}

	for r, row := range p.staging {
		for c, v := range src.Row(r) {
			row[c] = float64(v)
		}
	}

	full := fft.FFT2Real(p.staging)

	for r, row := range full {
		out := dst.Row(r)
		for c := range out {
			out[c] = complex64(row[c])
		}
	}

	return nil
}

func (p *godspPlan) Close() error {
	p.staging = nil
	return nil
}
