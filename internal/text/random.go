package text

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// NewSource returns a deterministic generator; the same seed replays the same text.
func NewSource(seed int64) *rand.Rand {
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "atoms"), seedWord(seed, "alternations")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
