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

// Package lfx provides a lifecycle registry for identifier-keyed shared
// instances.
//
// lfx is responsible for one job: given an opaque string identifier and a
// factory, hand out exactly one shared instance per identifier, keep track
// of who depends on whom, and tear everything down again in an order that
// respects those dependencies. How instances are assembled (wiring,
// reflection, metadata) belongs to higher layers; lfx only sees factories.
//
// # Design
//
// A Registry holds three cache tiers per identifier:
//
//   - Primary: the finished, fully constructed instance. Lookups here are
//     lock-free and are the hot path.
//
//   - Early: a partially constructed instance, exposed on purpose while its
//     construction is still running. Early references are what make
//     circular construction dependencies resolvable: when A's factory needs
//     B and B's factory needs A back, B receives A's early reference
//     instead of deadlocking or failing.
//
//   - Factory: a deferred producer of an early reference. It is demanded at
//     most once; its result moves to the early tier and is handed to every
//     subsequent mid-construction lookup.
//
// An identifier moves strictly forward through the tiers and ends in
// primary. Construction is single-flight: concurrent GetOrCreate callers
// serialize on an internal reentrant lock, so exactly one factory runs and
// everyone else observes its result. The lock is reentrant per goroutine,
// which lets a factory resolve its own dependencies through the same
// registry (nested construction) while other goroutines wait.
//
// Alongside the caches the registry keeps:
//
//   - A creation tracker that detects circular construction attempts the
//     moment a factory re-enters itself without an early reference to fall
//     back on. Identifiers with custom multi-phase protocols can be
//     excluded from tracking.
//
//   - A dependency graph recording "dependentID depends on id" and
//     "innerID is contained in outerID" edges, queried transitively and
//     consumed during teardown.
//
//   - A disposal list of teardown handles, kept in registration order.
//
// Teardown (DestroyOne, ShutdownAll) walks dependents before the instance
// itself, then cascades into contained instances, pruning the graph as it
// goes. A handle that fails or panics is logged and never stops the
// cascade. ShutdownAll runs in reverse registration order and leaves the
// registry empty and reusable; construction attempts made while it runs
// fail fast.
//
// # Identifiers and aliases
//
// Identifiers are opaque strings. Every operation first canonicalizes its
// identifier through an Aliaser, so an instance registered under a
// canonical name is reachable under any of its aliases and all bookkeeping
// (graph edges, disposal order, creation tracking) is keyed canonically.
//
// # Usage pattern
//
// A typical embedding binary does:
//
//	reg := lfx.New()
//
//	db, err := reg.GetOrCreate("db", func() (any, error) {
//		return openDatabase()
//	})
//	// ...
//	reg.RegisterDisposal("db", db.(*Database).Close)
//	reg.RegisterDependency("db", "repo")
//
//	// at process exit:
//	reg.ShutdownAll()
//
// Cycle-aware construction layers additionally install an early factory
// before resolving their dependencies:
//
//	reg.GetOrCreate("a", func() (any, error) {
//		a := &A{}
//		reg.RegisterEarlyFactory("a", func() (any, error) { return a, nil })
//		b, err := reg.GetOrCreate("b", newB(reg)) // may look "a" up early
//		if err != nil {
//			return nil, err
//		}
//		a.b = b.(*B)
//		return a, nil
//	})
//
// # Scope
//
// lfx is intentionally small. It is not a dependency injection container:
// it knows nothing about types, constructors, or wiring, and it never
// decides what depends on what. It only guarantees single-flight shared
// construction, cycle-breaking early exposure, and dependency-ordered
// teardown. Everything else belongs to higher layers.
package lfx
