package backend

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/fftcompare"
)

const gonumModule = "gonum.org/v1/gonum"

func init() {
	Register("gonum", func() (fftcompare.Backend, error) { return NewGonumBackend(), nil })
}

// GonumBackend computes 2D real FFTs with gonum's dsp/fourier package:
// a real FFT along each row, then a complex FFT down each spectrum column.
type GonumBackend struct{}

// NewGonumBackend returns a gonum-backed backend.
func NewGonumBackend() *GonumBackend {
	return &GonumBackend{}
}

func (b *GonumBackend) Info() fftcompare.BackendInfo {
	return fftcompare.BackendInfo{
		Name:        "gonum",
		Version:     moduleVersion(gonumModule),
		Description: "gonum dsp/fourier row-column real FFT",
	}
}

func (b *GonumBackend) NewBuffer(shape fftcompare.Shape) (*fftcompare.Spectrum, error) {
	return newBuffer(shape)
}

func (b *GonumBackend) NewPlan(shape fftcompare.Shape) (fftcompare.Plan, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	bins := shape.SpectrumCols()

	return &gonumPlan{
		shape:  shape,
		row:    fourier.NewFFT(shape.Cols),
		col:    fourier.NewCmplxFFT(shape.Rows),
		seq:    make([]float64, shape.Cols),
		work:   make([]complex128, shape.Rows*bins),
		colIn:  make([]complex128, shape.Rows),
		colOut: make([]complex128, shape.Rows),
	}, nil
}

type gonumPlan struct {
	shape  fftcompare.Shape
	row    *fourier.FFT
	col    *fourier.CmplxFFT
	seq    []float64
	work   []complex128
	colIn  []complex128
	colOut []complex128
}

func (p *gonumPlan) Shape() fftcompare.Shape {
	return p.shape
}

func (p *gonumPlan) Forward(dst *fftcompare.Spectrum, src *fftcompare.InputGrid) error {
	if p.row == nil {
		return fftcompare.ErrBackendInit
	}
	if err := checkBuffers(p.shape, dst, src); err != nil {
		return err
	}

	rows, bins := p.shape.Rows, p.shape.SpectrumCols()
	seq, work := p.seq, p.work

	for r := range rows {
		for c, v := range src.Row(r) {
			seq[c] = float64(v)
		}
		p.row.Coefficients(work[r*bins:(r+1)*bins], seq)
	}

	colIn, colOut := p.colIn, p.colOut
	for c := range bins {
		for r := range rows {
			colIn[r] = work[r*bins+c]
		}

		p.col.Coefficients(colOut, colIn)

		for r := range rows {
			dst.Data[r*bins+c] = complex64(colOut[r])
		}
	}

	return nil
}

func (p *gonumPlan) Close() error {
	p.row = nil
	p.col = nil
	p.seq, p.work, p.colIn, p.colOut = nil, nil, nil, nil
	return nil
}
