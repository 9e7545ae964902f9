package fftcompare

// Backend is implemented by FFT backends under comparison. It mirrors a
// device context: it allocates output buffers and creates plans for a
// fixed transform shape.
type Backend interface {
	Info() BackendInfo
	// NewBuffer allocates a half spectrum for a real grid of the given shape.
	NewBuffer(shape Shape) (*Spectrum, error)
	// NewPlan creates a forward 2D real-to-complex plan for shape.
	NewPlan(shape Shape) (Plan, error)
}

// Plan is a backend-specific forward transform for a fixed shape.
type Plan interface {
	Shape() Shape
	// Forward writes the half spectrum of src into dst. It must not
	// modify src.
	Forward(dst *Spectrum, src *InputGrid) error
	Close() error
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}
