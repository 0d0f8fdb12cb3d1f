package session

import (
	"errors"
	"sync"
	"time"

	"gobridgeflow/flow"
	"gobridgeflow/idgen"
	"gobridgeflow/types"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrFlowNotFound = errors.New("flow not found")
	ErrNotOwner     = errors.New("flow belongs to another user")
)

// tsTouched is guarded by mu
type entry struct {
	mu        sync.Mutex
	flow      *flow.Flow
	owner     string
	tsOpened  int64
	tsTouched int64
}

// Registry holds the open bridge flows. Flows live in memory only and
// are gone once closed or when the process exits.
type Registry struct {
	catalog types.Catalog
	gen     idgen.Generator

	mu    sync.RWMutex
	flows map[string]*entry
}

func NewRegistry(catalog types.Catalog, gen idgen.Generator) *Registry {
	return &Registry{
		catalog: catalog,
		gen:     gen,
		flows:   make(map[string]*entry),
	}
}

// Open creates a new flow owned by owner and returns its id
func (r *Registry) Open(owner string) (string, types.BridgeFlow) {
	id := uuid.New().String()
	e := &entry{
		flow:     flow.New(r.catalog, r.gen),
		owner:    owner,
		tsOpened: time.Now().Unix(),
	}
	e.tsTouched = e.tsOpened

	r.mu.Lock()
	r.flows[id] = e
	r.mu.Unlock()

	log.WithFields(log.Fields{"flow": id, "owner": owner}).Info("Opened bridge flow")
	return id, e.flow.Snapshot()
}

func (r *Registry) lookup(id, owner string) (*entry, error) {
	r.mu.RLock()
	e, ok := r.flows[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrFlowNotFound
	}
	if e.owner != owner {
		return nil, ErrNotOwner
	}
	return e, nil
}

// Do runs fn with exclusive access to the flow. Whatever fn returns is
// passed through; the flow is left as fn left it.
func (r *Registry) Do(id, owner string, fn func(f *flow.Flow) error) error {
	e, err := r.lookup(id, owner)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.tsTouched = time.Now().Unix()

	stage := e.flow.Stage()
	err = fn(e.flow)
	if e.flow.Stage() != stage {
		log.WithFields(log.Fields{
			"flow": id,
			"from": stage,
			"to":   e.flow.Stage(),
		}).Info("Bridge flow changed stage")
	}
	return err
}

// Close discards the flow
func (r *Registry) Close(id, owner string) error {
	e, err := r.lookup(id, owner)
	if err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.flows, id)
	r.mu.Unlock()

	log.WithFields(log.Fields{
		"flow":  id,
		"owner": owner,
		"age":   time.Now().Unix() - e.tsOpened,
	}).Info("Closed bridge flow")
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.flows)
}

// Prune discards flows nobody has touched for maxIdle, returning how many
// were dropped
func (r *Registry) Prune(maxIdle time.Duration, now time.Time) int {
	cutoff := now.Add(-maxIdle).Unix()

	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := 0
	for id, e := range r.flows {
		e.mu.Lock()
		idle := e.tsTouched <= cutoff
		e.mu.Unlock()
		if idle {
			delete(r.flows, id)
			pruned++
			log.WithFields(log.Fields{"flow": id, "owner": e.owner}).Info("Discarded idle bridge flow")
		}
	}
	return pruned
}
