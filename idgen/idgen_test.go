package idgen

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	txHashRe   = regexp.MustCompile(`^0x[0-9a-f]{64}$`)
	objectIDRe = regexp.MustCompile(`^0x[0-9a-f]{40}$`)
)

func TestTxHashFormat(t *testing.T) {
	gen := NewRandom(1)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, txHashRe, gen.TxHash())
	}
}

func TestObjectIDFormat(t *testing.T) {
	gen := NewRandom(1)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, objectIDRe, gen.ObjectID())
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewRandom(42), NewRandom(42)
	assert.Equal(t, a.TxHash(), b.TxHash())
	assert.Equal(t, a.ObjectID(), b.ObjectID())
}

func TestNoCollisionsInSample(t *testing.T) {
	gen := NewRandom(7)
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		h := gen.TxHash()
		_, dup := seen[h]
		require.False(t, dup, "duplicate hash %s", h)
		seen[h] = struct{}{}
	}
}

func TestDefaultConcurrentUse(t *testing.T) {
	gen := Default()
	require.Same(t, gen, Default())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.Regexp(t, txHashRe, gen.TxHash())
			}
		}()
	}
	wg.Wait()
}
