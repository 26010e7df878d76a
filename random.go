package balltree

import (
	"math/rand"
	"time"
)

// newRNG returns a seeded math/rand source. seed == 0 means "unset": absent
// an explicit seed a process-level source is acceptable, so we seed from
// the wall clock. A caller wanting reproducible builds should pass
// WithSeed(s) with s != 0.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
