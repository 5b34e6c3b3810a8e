// Package cache memoizes group builds. Building is a pure function of the
// records, the seed mode and the seed, so results are keyed by a
// fingerprint of the first two plus the seed.
package cache

import (
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
)

// Key identifies one build.
type Key struct {
	InputHash string
	Seed      int64
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%d", k.InputHash, k.Seed)
}

// Fingerprint hashes the records and seed mode. Any change to a text,
// translation, level, the row order or the mode changes the result.
func Fingerprint(records []grouping.Record, mode grouping.SeedMode) string {
	h := xxhash.New()
	_, _ = h.WriteString(LayoutFormat)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(string(mode))
	for _, r := range records {
		_, _ = h.Write([]byte{0x1e})
		_, _ = h.WriteString(r.Text)
		_, _ = h.Write([]byte{0x1f})
		_, _ = h.WriteString(r.Translation)
		_, _ = h.Write([]byte{0x1f})
		_, _ = h.WriteString(r.Level)
	}
	return hex.EncodeToString(h.Sum(nil))
}
