package fft

// Real2D computes the half spectrum of a rows x cols real grid with the
// row-column method: a real FFT over every row, then a complex FFT down
// each of the cols/2+1 spectrum columns. Both dimensions must be powers
// of 2 and cols >= 2.
type Real2D struct {
	rows, cols int
	bins       int
	row        *Real
	col        *Radix2
	work       []complex128
	column     []complex128
}

// NewReal2D creates a 2D real FFT plan.
func NewReal2D(rows, cols int) (*Real2D, error) {
	row, err := NewReal(cols)
	if err != nil {
		return nil, err
	}

	col, err := NewRadix2(rows)
	if err != nil {
		return nil, err
	}

	bins := cols/2 + 1

	return &Real2D{
		rows:   rows,
		cols:   cols,
		bins:   bins,
		row:    row,
		col:    col,
		work:   make([]complex128, rows*bins),
		column: make([]complex128, rows),
	}, nil
}

// Forward writes the row-major rows x (cols/2+1) half spectrum of src into
// dst, rounded to single precision.
// Caller guarantees: len(src) >= rows*cols, len(dst) >= rows*(cols/2+1).
func (p *Real2D) Forward(dst []complex64, src []float32) {
	rows, cols, bins := p.rows, p.cols, p.bins
	work := p.work

	for r := range rows {
		p.row.Forward(work[r*bins:(r+1)*bins], src[r*cols:(r+1)*cols])
	}

	column := p.column
	for c := range bins {
		for r := range rows {
			column[r] = work[r*bins+c]
		}

		p.col.InPlace(column)

		for r := range rows {
			dst[r*bins+c] = complex64(column[r])
		}
	}
}
