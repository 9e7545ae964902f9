package backend

import (
	"fmt"
	"runtime/debug"
	"sort"
	"sync"

	"github.com/cwbudde/fftcompare"
)

// Factory creates a backend instance.
type Factory func() (fftcompare.Backend, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a backend available under name. Registering a name again
// replaces the previous factory; passing a nil factory removes it.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if f == nil {
		delete(registry, name)
		return
	}
	registry[name] = f
}

// New creates the backend registered under name.
func New(name string) (fftcompare.Backend, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownBackend, name, Names())
	}

	b, err := f()
	if err != nil {
		return nil, fmt.Errorf("backend %q: %w", name, err)
	}
	return b, nil
}

// Names returns the registered backend names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Infos instantiates every registered backend and reports its info.
// Backends that fail to instantiate are skipped.
func Infos() []fftcompare.BackendInfo {
	names := Names()

	infos := make([]fftcompare.BackendInfo, 0, len(names))
	for _, name := range names {
		b, err := New(name)
		if err != nil {
			continue
		}
		infos = append(infos, b.Info())
	}

	return infos
}

// moduleVersion returns the version of a dependency compiled into the
// binary, or "unknown" when build info is unavailable.
func moduleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, dep := range info.Deps {
		if dep.Path == path {
			if dep.Replace != nil {
				return dep.Replace.Version
			}
			return dep.Version
		}
	}

	return "unknown"
}

func checkBuffers(shape fftcompare.Shape, dst *fftcompare.Spectrum, src *fftcompare.InputGrid) error {
	if dst == nil || src == nil || dst.Data == nil || src.Data == nil {
		return fftcompare.ErrNilBuffer
	}
	if src.Shape != shape || dst.Shape != shape {
		return fmt.Errorf("%w: plan %s, input %s, output %s", fftcompare.ErrShapeMismatch, shape, src.Shape, dst.Shape)
	}
	if len(src.Data) < shape.Len() || len(dst.Data) < shape.SpectrumLen() {
		return fmt.Errorf("%w: short buffers for %s", fftcompare.ErrShapeMismatch, shape)
	}
	return nil
}

// newBuffer allocates a half spectrum. Shape.Validate caps its size.
func newBuffer(shape fftcompare.Shape) (*fftcompare.Spectrum, error) {
	return fftcompare.NewSpectrum(shape)
}
