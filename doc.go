// Package fftcompare cross-checks two implementations of the forward 2D
// real-to-complex FFT.
//
// A Runner repeatedly fills a Rows x Cols grid of float32 samples from a
// seeded RandomSource, transforms it with two Backends and compares the
// resulting Rows x (Cols/2+1) half spectra element-wise with an absolute
// tolerance. Only plan execution is timed; buffer allocation and plan setup
// happen outside the measured region. Per-trial verdicts and the average
// execution time of each backend are written through a Reporter.
//
// Concrete backends live in the backend subpackage:
//
//	a, _ := backend.New("gonum")
//	b, _ := backend.New("godsp")
//	r, err := fftcompare.NewRunner(fftcompare.DefaultRunConfig(), a, b,
//		fftcompare.WithReporter(fftcompare.NewTextReporter(os.Stdout)))
//	if err != nil {
//		return err
//	}
//	stats, err := r.Run()
package fftcompare
