package cpu

import (
	"strings"
	"sync"
)

// Features describes the SIMD capabilities of the host CPU. It is reported
// alongside timing results, since backend speed depends on it.
type Features struct {
	HasSSE2   bool
	HasSSE3   bool
	HasSSSE3  bool
	HasSSE41  bool
	HasAVX    bool
	HasAVX2   bool
	HasFMA    bool
	HasAVX512 bool
	HasNEON   bool

	Architecture string
}

var (
	detectOnce sync.Once
	detected   Features
)

// DetectFeatures returns the host CPU features. Detection runs once.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})

	return detected
}

// String lists the detected feature names, e.g. "amd64 sse2 avx avx2".
func (f Features) String() string {
	names := []string{f.Architecture}

	flags := []struct {
		on   bool
		name string
	}{
		{f.HasSSE2, "sse2"},
		{f.HasSSE3, "sse3"},
		{f.HasSSSE3, "ssse3"},
		{f.HasSSE41, "sse4.1"},
		{f.HasAVX, "avx"},
		{f.HasAVX2, "avx2"},
		{f.HasFMA, "fma"},
		{f.HasAVX512, "avx512"},
		{f.HasNEON, "neon"},
	}
	for _, fl := range flags {
		if fl.on {
			names = append(names, fl.name)
		}
	}

	return strings.Join(names, " ")
}
