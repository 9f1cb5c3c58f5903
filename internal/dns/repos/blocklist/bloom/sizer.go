package bloom

import (
	"math"

	"github.com/haukened/domcheck/internal/dns/repos/blocklist"
)

const (
	// defaultFPRate applies when the requested rate is outside (0, 1).
	defaultFPRate = 0.01
	// maxBits caps a single filter at 512 MiB of bits.
	maxBits = 1 << 32
	// maxHashes bounds k; past this point extra hashes only cost time.
	maxHashes = 32
)

// sizer implements blocklist.BloomSizer:
//
//	m = - (n * ln p) / (ln 2)^2
//	k = (m / n) * ln 2
//
// m is clamped to [1, maxBits] and k to [1, maxHashes].
type sizer struct{}

// NewSizer returns a BloomSizer implementation.
func NewSizer() blocklist.BloomSizer { return sizer{} }

func (sizer) Size(n uint64, p float64) (uint64, uint8) {
	if n == 0 {
		n = 1
	}
	if !(p > 0 && p < 1) {
		p = defaultFPRate
	}
	ln2 := math.Ln2
	bits := math.Ceil(-float64(n) * math.Log(p) / (ln2 * ln2))
	m := uint64(math.Min(math.Max(bits, 1), maxBits))
	k := math.Round((float64(m) / float64(n)) * ln2)
	k = math.Min(math.Max(k, 1), maxHashes)
	return m, uint8(k)
}
