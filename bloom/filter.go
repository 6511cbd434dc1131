// Package bloom provides content-hash deduplication using Bloom filters.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/cvparse"
)

// Ensure Filter implements cvparse.DuplicateFilter at compile time.
var _ cvparse.DuplicateFilter = (*Filter)(nil)

// Filter wraps a Bloom filter for document deduplication. It is safe for
// concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether hash might have been added before, and adds it.
func (f *Filter) Seen(hash string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(hash)
}
