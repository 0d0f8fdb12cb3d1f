package workers

import (
	"testing"
	"time"

	"gobridgeflow/config"
	"gobridgeflow/idgen"
	"gobridgeflow/session"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestPruneWorkerStopsOnShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)
	defer WorkerShutdown.Store(false)

	var cfg config.Configuration
	registry := session.NewRegistry(cfg.Catalog(), idgen.NewRandom(1))
	registry.Open("alice")

	done := make(chan struct{})
	go func() {
		Worker_pruneFlows(registry, 0, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return registry.Len() == 0 }, time.Second, time.Millisecond)

	WorkerShutdown.Store(true)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("prune worker did not stop")
	}
}
