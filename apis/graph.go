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

package apis

// Graph records destruction-order relationships between identifiers:
// a bidirectional dependency adjacency plus a containment relation.
//
// The graph may contain cycles. Every traversal must be cycle-safe; a node
// already visited terminates that branch rather than erroring. All maps are
// guarded by a single graph lock so that check-then-act pairs spanning the
// forward and reverse indexes never observe torn state.
type Graph interface {
	// RegisterDependency records that dependentID depends on id
	// (dependentID must be destroyed before id). Idempotent.
	RegisterDependency(id, dependentID string)

	// RegisterContainment records that innerID is nested inside outerID.
	// A newly recorded containment also records a dependency edge: the
	// container depends on its contents surviving.
	RegisterContainment(innerID, outerID string)

	// IsDependent reports whether candidateID is reachable from id by
	// following the dependents relation transitively.
	IsDependent(id, candidateID string) bool

	// Dependents returns a snapshot of id's immediate dependents in
	// registration order.
	Dependents(id string) []string
	// Dependencies returns a snapshot of the identifiers id immediately
	// depends on, in registration order.
	Dependencies(id string) []string
	// Contained returns a snapshot of the identifiers nested inside id.
	Contained(id string) []string
	// HasDependents reports whether any dependent is recorded for id.
	HasDependents(id string) bool

	// RemoveDependents disconnects and returns id's dependents set,
	// for consumption by a destroy cascade.
	RemoveDependents(id string) []string
	// RemoveContained disconnects and returns id's contained set.
	RemoveContained(id string) []string
	// Prune removes id from every other identifier's dependents set and
	// drops id's own dependency record, so no edge dangles on a
	// destroyed node.
	Prune(id string)

	// Clear drops all relationships.
	Clear()
}
