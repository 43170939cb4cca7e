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

package graph

import (
	"sync"

	"dirpx.dev/lfx/apis"
	"dirpx.dev/lfx/utils/order"
)

// New constructs an empty apis.Graph.
func New() apis.Graph {
	return &graph{
		dependents:   make(map[string]*order.Set, 16),
		dependencies: make(map[string]*order.Set, 16),
		contained:    make(map[string]*order.Set, 8),
	}
}

// graph keeps three adjacency indexes under one lock.
//
// dependents[k] holds the identifiers that must be destroyed before k.
// dependencies[k] is the inverse index, kept for symmetric lookups only;
// destruction order never consults it. contained[k] holds identifiers
// logically nested inside k. Sets are insertion-ordered so cascades and
// snapshots are deterministic.
type graph struct {
	mu           sync.Mutex
	dependents   map[string]*order.Set
	dependencies map[string]*order.Set
	contained    map[string]*order.Set
}

// RegisterDependency records that dependentID depends on id. The forward
// and reverse edges are written inside one critical section; the
// idempotency check on the forward edge also skips the reverse write.
func (g *graph) RegisterDependency(id, dependentID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.registerDependencyLocked(id, dependentID)
}

func (g *graph) registerDependencyLocked(id, dependentID string) {
	if !ensure(g.dependents, id).Add(dependentID) {
		return
	}
	ensure(g.dependencies, dependentID).Add(id)
}

// RegisterContainment records that innerID is nested inside outerID.
// A newly recorded containment also records that outerID depends on
// innerID: contents must still exist when their container is destroyed,
// and are torn down by cascading from it.
func (g *graph) RegisterContainment(innerID, outerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !ensure(g.contained, outerID).Add(innerID) {
		return
	}
	g.registerDependencyLocked(innerID, outerID)
}

// IsDependent reports whether candidateID is transitively reachable from
// id via the dependents relation. A node already visited terminates that
// branch, so cyclic graphs cannot recurse forever.
func (g *graph) IsDependent(id, candidateID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isDependentLocked(id, candidateID, nil)
}

func (g *graph) isDependentLocked(id, candidateID string, seen map[string]struct{}) bool {
	if _, ok := seen[id]; ok {
		return false
	}
	deps, ok := g.dependents[id]
	if !ok {
		return false
	}
	if deps.Contains(candidateID) {
		return true
	}
	for _, transitive := range deps.Snapshot() {
		if seen == nil {
			seen = make(map[string]struct{}, 8)
		}
		seen[id] = struct{}{}
		if g.isDependentLocked(transitive, candidateID, seen) {
			return true
		}
	}
	return false
}

// Dependents returns a snapshot of id's immediate dependents.
func (g *graph) Dependents(id string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return snapshot(g.dependents, id)
}

// Dependencies returns a snapshot of the identifiers id depends on.
func (g *graph) Dependencies(id string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return snapshot(g.dependencies, id)
}

// Contained returns a snapshot of the identifiers nested inside id.
func (g *graph) Contained(id string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return snapshot(g.contained, id)
}

// HasDependents reports whether any dependent is recorded for id.
func (g *graph) HasDependents(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	set, ok := g.dependents[id]
	return ok && set.Len() > 0
}

// RemoveDependents disconnects id's dependents set and returns it, so a
// destroy cascade iterates a set no concurrent writer can still reach.
func (g *graph) RemoveDependents(id string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	set, ok := g.dependents[id]
	if !ok {
		return nil
	}
	delete(g.dependents, id)
	return set.Snapshot()
}

// RemoveContained disconnects id's contained set and returns it.
func (g *graph) RemoveContained(id string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	set, ok := g.contained[id]
	if !ok {
		return nil
	}
	delete(g.contained, id)
	return set.Snapshot()
}

// Prune removes the destroyed id from every other dependents set and
// drops its own dependency record.
func (g *graph) Prune(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for key, set := range g.dependents {
		set.Remove(id)
		if set.Len() == 0 {
			delete(g.dependents, key)
		}
	}
	delete(g.dependencies, id)
}

// Clear drops all relationships.
func (g *graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	clear(g.dependents)
	clear(g.dependencies)
	clear(g.contained)
}

// ensure returns the set for key, creating it on first use.
func ensure(m map[string]*order.Set, key string) *order.Set {
	set, ok := m[key]
	if !ok {
		set = order.NewSet(4)
		m[key] = set
	}
	return set
}

// snapshot copies the set for key, or returns nil when absent.
func snapshot(m map[string]*order.Set, key string) []string {
	set, ok := m[key]
	if !ok {
		return nil
	}
	return set.Snapshot()
}
