package bloom_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/cvparse/bloom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_SeenIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	hash := "9f86d081884c7d65"

	require.False(t, f.Seen(hash))

	// Every later sighting of the same hash reports seen
	for range 3 {
		assert.True(t, f.Seen(hash))
	}
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	// Record 10k hashes
	for i := range numItems {
		f.Seen(fmt.Sprintf("added-%016x", i))
	}

	// Test with 10k hashes that were NOT added
	falsePositives := 0
	for i := range testProbes {
		hash := fmt.Sprintf("absent-%016x", i)
		if f.Seen(hash) {
			falsePositives++
		}
	}

	// False positive rate should be approximately 1%
	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// First sighting reports unseen and records the hash
	assert.False(t, f.Seen("9f86d081884c7d65"))

	// Second sighting reports seen
	assert.True(t, f.Seen("9f86d081884c7d65"))

	// Other hashes are unaffected
	assert.False(t, f.Seen("60303ae22b998861"))
}

func TestFilter_SeenIsSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	var wg sync.WaitGroup
	var firsts atomic.Int32
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !f.Seen("9f86d081884c7d65") {
				firsts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), firsts.Load(), "exactly one caller sees the hash first")
}
