/*
   Copyright 2026 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package registry

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"dirpx.dev/lfx/alias"
	"dirpx.dev/lfx/apis"
	"dirpx.dev/lfx/config"
	"dirpx.dev/lfx/graph"
	"dirpx.dev/lfx/tracker"
	"dirpx.dev/lfx/utils/order"
)

// New constructs an apis.Registry with its own creation tracker and
// dependency graph. A nil aliaser gets a fresh empty alias resolver.
func New(cfg apis.Config, aliaser apis.Aliaser) apis.Registry {
	if cfg.InitialCapacity <= 0 {
		cfg.InitialCapacity = config.DefaultInitialCapacity
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if aliaser == nil {
		aliaser = alias.New()
	}
	return &registry{
		cfg:           cfg,
		log:           cfg.Logger,
		aliaser:       aliaser,
		tracker:       tracker.New(),
		graph:         graph.New(),
		early:         make(map[string]any, 8),
		factories:     make(map[string]apis.Factory, 8),
		registered:    order.NewSet(cfg.InitialCapacity),
		disposal:      make(map[string]apis.DisposeFunc, 16),
		disposalOrder: order.NewSet(16),
	}
}

// registry implements apis.Registry with three cooperating cache tiers.
//
// primary holds finished instances and is a sync.Map so the hot lookup
// path stays lock-free, as does ContainsPrimary. The early and factory
// tiers, the registration order and the in-destruction flag share the
// reentrant cache lock mu; every operation spanning more than one tier
// runs under it. The disposal list has its own lock. Lock order, where
// two are ever held, is cache before graph before disposal.
type registry struct {
	cfg     apis.Config
	log     *zap.Logger
	aliaser apis.Aliaser
	tracker apis.Tracker
	graph   apis.Graph

	mu         relock
	primary    sync.Map // map[string]any
	early      map[string]any
	factories  map[string]apis.Factory
	registered *order.Set

	inDestruction bool
	// suppressed records tolerated failures while the outermost creation
	// on this registry is running; suppressing marks that window.
	suppressing bool
	suppressed  []error

	disposalMu    sync.Mutex
	disposal      map[string]apis.DisposeFunc
	disposalOrder *order.Set
}

// Get returns the instance for id without triggering construction.
//
// A primary-tier hit needs no lock. When id is mid-construction the early
// tier is consulted, then — if early references are permitted — the
// factory tier: its entry is demanded once, moved to the early tier and
// returned, breaking a construction cycle.
func (r *registry) Get(id string) (any, bool) {
	name := r.aliaser.Canonical(id)
	if v, ok := r.primary.Load(name); ok {
		return v, true
	}
	if !r.tracker.InCreation(name) {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case construction completed meanwhile.
	if v, ok := r.primary.Load(name); ok {
		return v, true
	}
	if v, ok := r.early[name]; ok {
		return v, true
	}
	if !r.cfg.AllowEarlyReferences {
		return nil, false
	}
	factory, ok := r.factories[name]
	if !ok {
		return nil, false
	}
	v, err := factory()
	if err != nil {
		// A failed early demand leaves the factory entry in place; the
		// outermost construction reports the failure as suppressed.
		r.recordSuppressed(fmt.Errorf("early reference for %q: %w", name, err))
		r.log.Debug("early reference demand failed", zap.String("id", name), zap.Error(err))
		return nil, false
	}
	r.early[name] = v
	delete(r.factories, name)
	return v, true
}

// GetOrCreate returns the instance for id, constructing it via factory if
// absent. The factory runs under the reentrant cache lock: concurrent
// callers for any identifier serialize here and then observe the
// primary-tier hit, which is what makes construction single-flight, while
// the same goroutine may nest further GetOrCreate calls for its
// dependencies.
func (r *registry) GetOrCreate(id string, factory apis.Factory) (any, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	name := r.aliaser.Canonical(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.primary.Load(name); ok {
		return v, nil
	}
	if r.inDestruction {
		return nil, fmt.Errorf("%w: %q", ErrCreationInShutdown, name)
	}
	r.log.Debug("creating shared instance", zap.String("id", name))

	if err := r.tracker.Enter(name); err != nil {
		return nil, err
	}
	recording := !r.suppressing
	if recording {
		r.suppressing = true
		r.suppressed = nil
	}
	defer func() {
		if recording {
			r.suppressing = false
			r.suppressed = nil
		}
		// Exit failing here means enter/exit bookkeeping went wrong in a
		// collaborator; that must surface, not be retried.
		if err := r.tracker.Exit(name); err != nil {
			panic(err)
		}
	}()

	created, err := factory()
	if err != nil {
		// The instance may have appeared in the meantime: a nested path
		// inside the factory can complete the registration itself. The
		// failure is then an artifact of the takeover, so the winning
		// entry is returned instead of the error.
		if v, ok := r.primary.Load(name); ok {
			return v, nil
		}
		cerr := &CreationError{ID: name, Err: err}
		if recording {
			cerr.Suppressed = append([]error(nil), r.suppressed...)
		}
		return nil, cerr
	}

	r.store(name, created)
	return created, nil
}

// RegisterEarlyFactory installs a factory-tier entry for eager
// cycle-breaking. No-op when a finished instance already exists; any stale
// early-tier entry for the identifier is dropped.
func (r *registry) RegisterEarlyFactory(id string, factory apis.Factory) {
	if factory == nil {
		return
	}
	name := r.aliaser.Canonical(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.primary.Load(name); ok {
		return
	}
	r.factories[name] = factory
	delete(r.early, name)
	r.registered.Add(name)
}

// RegisterInstance binds a pre-built instance to id.
func (r *registry) RegisterInstance(id string, instance any) error {
	if instance == nil {
		return ErrNilInstance
	}
	name := r.aliaser.Canonical(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.primary.Load(name); ok {
		return fmt.Errorf("%w: %q already holds %T", ErrAlreadyRegistered, name, existing)
	}
	r.store(name, instance)
	return nil
}

// Evict removes id from every cache tier atomically.
func (r *registry) Evict(id string) {
	name := r.aliaser.Canonical(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictLocked(name)
}

// ContainsPrimary reports whether id has a fully constructed instance.
func (r *registry) ContainsPrimary(id string) bool {
	_, ok := r.primary.Load(r.aliaser.Canonical(id))
	return ok
}

// RegisteredIDs returns a snapshot of known identifiers in registration order.
func (r *registry) RegisteredIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.registered.Snapshot()
}

// Count returns the number of registered identifiers.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.registered.Len()
}

// InCreation reports whether id is currently inside a factory invocation.
func (r *registry) InCreation(id string) bool {
	return r.tracker.InCreation(r.aliaser.Canonical(id))
}

// SetExcluded toggles whether id bypasses creation tracking.
func (r *registry) SetExcluded(id string, excluded bool) {
	r.tracker.SetExcluded(r.aliaser.Canonical(id), excluded)
}

// RegisterDependency records that dependentID depends on id.
func (r *registry) RegisterDependency(id, dependentID string) {
	r.graph.RegisterDependency(r.aliaser.Canonical(id), r.aliaser.Canonical(dependentID))
}

// RegisterContainment records that innerID is nested inside outerID.
func (r *registry) RegisterContainment(innerID, outerID string) {
	r.graph.RegisterContainment(r.aliaser.Canonical(innerID), r.aliaser.Canonical(outerID))
}

// IsDependent reports whether candidateID transitively depends on id.
func (r *registry) IsDependent(id, candidateID string) bool {
	return r.graph.IsDependent(r.aliaser.Canonical(id), r.aliaser.Canonical(candidateID))
}

// Dependents returns the immediate dependents of id.
func (r *registry) Dependents(id string) []string {
	return r.graph.Dependents(r.aliaser.Canonical(id))
}

// Dependencies returns the identifiers id immediately depends on.
func (r *registry) Dependencies(id string) []string {
	return r.graph.Dependencies(r.aliaser.Canonical(id))
}

// HasDependents reports whether any dependent is recorded for id.
func (r *registry) HasDependents(id string) bool {
	return r.graph.HasDependents(r.aliaser.Canonical(id))
}

// store moves name to the primary tier, purging the other tiers.
// Caller holds the cache lock.
func (r *registry) store(name string, instance any) {
	r.primary.Store(name, instance)
	delete(r.early, name)
	delete(r.factories, name)
	r.registered.Add(name)
}

// evictLocked removes name from all tiers. Caller holds the cache lock.
func (r *registry) evictLocked(name string) {
	r.primary.Delete(name)
	delete(r.early, name)
	delete(r.factories, name)
	r.registered.Remove(name)
}

// recordSuppressed keeps err for the outermost running creation.
// Caller holds the cache lock.
func (r *registry) recordSuppressed(err error) {
	if r.suppressing {
		r.suppressed = append(r.suppressed, err)
	}
}
