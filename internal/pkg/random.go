package pkg

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// NewSeed - generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Randomizer is a seeded source shared by concurrent requests.
type Randomizer struct {
	mu     sync.Mutex
	source *rand.Rand
}

func NewRandomizer(seed int64) *Randomizer {
	return &Randomizer{
		source: rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *Randomizer) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.source.Intn(n)
}
