package grouping

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/pos"
)

// DefaultSeed is used when no seed is configured. Seeds 1-8192 are the
// recommended range, but any int64 works.
const DefaultSeed int64 = 1

// pcgStream is the fixed second PCG word for shared-stream RNGs.
const pcgStream uint64 = 0x9e3779b97f4a7c15

// RandomSource is the subset of *rand.Rand the grouping and quiz code use.
type RandomSource interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// SeedMode selects how the seed turns into shuffles.
type SeedMode string

const (
	// SeedModeDerived gives every (part of speech, label set) bucket its
	// own RNG hashed from the seed, so a bucket's groups do not depend on
	// which other buckets exist or the order they are visited in.
	SeedModeDerived SeedMode = "derived"

	// SeedModeShared threads a single RNG through all buckets in canonical
	// part-of-speech order, then sub-level emission order.
	SeedModeShared SeedMode = "shared"
)

// ParseSeedMode validates a seed mode string. Empty means derived.
func ParseSeedMode(s string) (SeedMode, error) {
	switch SeedMode(s) {
	case "", SeedModeDerived:
		return SeedModeDerived, nil
	case SeedModeShared:
		return SeedModeShared, nil
	}
	return "", fmt.Errorf("unknown seed mode %q: must be derived or shared", s)
}

// NewRand returns a deterministic RNG for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), pcgStream))
}

// BucketSeed hashes the seed with the bucket identity.
func BucketSeed(seed int64, tag pos.Tag, labels []string) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))

	h := xxhash.New()
	_, _ = h.Write(buf[:])
	_, _ = h.WriteString(string(tag))
	for _, l := range labels {
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(l)
	}
	return h.Sum64()
}

// newBucketRand returns the RNG for one bucket in derived mode.
func newBucketRand(seed int64, tag pos.Tag, labels []string) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), BucketSeed(seed, tag, labels)))
}
