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

// Factory produces a managed instance on demand.
//
// A Factory is fully opaque to the registry: how the instance is assembled
// (metadata, reflection, wiring) belongs to the construction layer above.
// Under normal operation a factory is invoked at most once per identifier;
// repeat construction attempts while a result already exists are rejected.
type Factory func() (any, error)

// DisposeFunc tears down a managed instance at registry shutdown.
// Failures are logged and never interrupt the shutdown cascade.
type DisposeFunc func() error

// Registry manages identifier-keyed shared instances: their single-flight
// construction, early exposure for breaking construction cycles, and their
// dependency-ordered destruction.
//
// Identifiers are opaque strings, canonicalized through an Aliaser before
// every operation. Implementations must be safe for concurrent use and must
// allow a factory to resolve further identifiers on the same goroutine
// (nested construction).
type Registry interface {
	// Get returns the instance for id without triggering construction.
	// If id is mid-construction and early references are permitted, a
	// partially constructed (early) reference may be returned.
	Get(id string) (any, bool)

	// GetOrCreate returns the instance for id, constructing it via factory
	// if absent. Concurrent callers for the same identifier observe exactly
	// one factory invocation and the same resulting instance.
	GetOrCreate(id string, factory Factory) (any, error)

	// RegisterEarlyFactory installs a factory producing an early reference
	// for id, used to break construction cycles. No-op when a finished
	// instance already exists.
	RegisterEarlyFactory(id string, factory Factory)

	// RegisterInstance binds a pre-built instance to id.
	// Rejects an identifier that is already bound.
	RegisterInstance(id string, instance any) error

	// Evict removes id from every cache tier atomically.
	Evict(id string)

	// ContainsPrimary reports whether id has a fully constructed instance.
	ContainsPrimary(id string) bool
	// RegisteredIDs returns a snapshot of known identifiers in
	// registration order.
	RegisteredIDs() []string
	// Count returns the number of registered identifiers.
	Count() int

	// InCreation reports whether id is currently inside a factory
	// invocation and not excluded from creation checks.
	InCreation(id string) bool
	// SetExcluded toggles whether id bypasses creation tracking, for
	// collaborators with custom multi-phase creation protocols.
	SetExcluded(id string, excluded bool)

	// RegisterDependency records that dependentID depends on id, so
	// dependentID is destroyed before id.
	RegisterDependency(id, dependentID string)
	// RegisterContainment records that innerID is logically nested inside
	// outerID; contained instances are destroyed by cascading from their
	// container.
	RegisterContainment(innerID, outerID string)
	// IsDependent reports whether candidateID is transitively reachable
	// from id via the dependents relation.
	IsDependent(id, candidateID string) bool
	// Dependents returns the immediate dependents of id.
	Dependents(id string) []string
	// Dependencies returns the identifiers id immediately depends on.
	Dependencies(id string) []string
	// HasDependents reports whether any dependent is recorded for id.
	HasDependents(id string) bool

	// RegisterDisposal appends a teardown handle for id. Re-registering
	// overwrites the handle but keeps its position in the disposal order.
	RegisterDisposal(id string, handle DisposeFunc)

	// DestroyOne destroys id now: dependents first, then id's own handle,
	// then contained instances, pruning the dependency graph as it goes.
	DestroyOne(id string)

	// ShutdownAll destroys every registered instance in reverse
	// registration order and clears all registry state. Creation attempts
	// made while the shutdown runs fail fast.
	ShutdownAll()
}
