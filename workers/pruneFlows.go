package workers

import (
	"sync/atomic"
	"time"

	"gobridgeflow/session"

	log "github.com/sirupsen/logrus"
)

// set once the HTTP service has stopped
var WorkerShutdown atomic.Bool

// Worker_pruneFlows discards wizards that were opened and then abandoned
func Worker_pruneFlows(registry *session.Registry, maxIdle, every time.Duration) {
	for !WorkerShutdown.Load() {
		time.Sleep(every)

		if n := registry.Prune(maxIdle, time.Now()); n > 0 {
			log.WithFields(log.Fields{"pruned": n, "open": registry.Len()}).Info("Pruned idle bridge flows")
		}
	}
}
