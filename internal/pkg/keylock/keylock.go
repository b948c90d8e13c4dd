// Package keylock serialises work per string key using a fixed set of
// mutex stripes chosen by hashing the key.
package keylock

import (
	"hash/fnv"
	"sync"
)

const defaultStripes = 64

// Striped maps keys onto a fixed pool of mutexes. Two keys may share a stripe,
// which only costs throughput; one key always maps to the same stripe.
type Striped struct {
	stripes []sync.Mutex
}

// New creates a Striped lock with n stripes. If n <= 0, defaultStripes is used.
func New(n int) *Striped {
	if n <= 0 {
		n = defaultStripes
	}
	return &Striped{stripes: make([]sync.Mutex, n)}
}

// Lock acquires the stripe for key and returns its unlock function.
func (s *Striped) Lock(key string) (unlock func()) {
	m := &s.stripes[s.stripeIndex(key)]
	m.Lock()
	return m.Unlock
}

// stripeIndex maps a key deterministically to a stripe.
func (s *Striped) stripeIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(s.stripes)))
}
