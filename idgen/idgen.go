// Package idgen fabricates placeholder transaction hashes and object ids.
// Values only need to look like chain identifiers; they carry no security
// or uniqueness guarantee beyond improbable collisions.
package idgen

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type Generator interface {
	// TxHash returns 0x followed by 64 lowercase hex characters
	TxHash() string
	// ObjectID returns 0x followed by 40 lowercase hex characters
	ObjectID() string
}

// Random is a Generator backed by math/rand, safe for concurrent use
type Random struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rnd: rand.New(rand.NewSource(seed))}
}

var (
	defaultGen  *Random
	defaultOnce sync.Once
)

// Default returns a process-wide generator seeded from the clock
func Default() *Random {
	defaultOnce.Do(func() {
		defaultGen = NewRandom(time.Now().UnixNano())
	})
	return defaultGen
}

func (g *Random) bytes(n int) []byte {
	b := make([]byte, n)
	g.mu.Lock()
	// (*rand.Rand).Read never returns an error
	g.rnd.Read(b)
	g.mu.Unlock()
	return b
}

func (g *Random) TxHash() string {
	return hexutil.Encode(g.bytes(common.HashLength))
}

func (g *Random) ObjectID() string {
	return hexutil.Encode(g.bytes(common.AddressLength))
}
