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
	"go.uber.org/zap"

	"dirpx.dev/lfx/apis"
)

// RegisterDisposal attaches a teardown handle to id. Re-registering keeps
// the identifier's original position in the disposal order.
func (r *registry) RegisterDisposal(id string, handle apis.DisposeFunc) {
	if handle == nil {
		return
	}
	name := r.aliaser.Canonical(id)

	r.disposalMu.Lock()
	defer r.disposalMu.Unlock()

	r.disposal[name] = handle
	r.disposalOrder.Add(name)
}

// DestroyOne tears down id and, recursively, everything that depends on it
// or is contained in it.
func (r *registry) DestroyOne(id string) {
	r.destroyOne(r.aliaser.Canonical(id))
}

// ShutdownAll tears down every registered instance in reverse registration
// order of their disposal handles, then resets the registry to a fresh
// reusable state.
func (r *registry) ShutdownAll() {
	r.mu.Lock()
	r.inDestruction = true
	count := r.registered.Len()
	r.mu.Unlock()
	r.log.Debug("destroying shared instances", zap.Int("count", count))

	r.disposalMu.Lock()
	ids := r.disposalOrder.Snapshot()
	r.disposalMu.Unlock()
	for i := len(ids) - 1; i >= 0; i-- {
		r.destroyOne(ids[i])
	}

	r.graph.Clear()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.primary.Range(func(key, _ any) bool {
		r.primary.Delete(key)
		return true
	})
	clear(r.early)
	clear(r.factories)
	r.registered.Clear()
	r.inDestruction = false
}

// destroyOne runs the teardown cascade for name. Each lock is released
// before the next is taken, so the dependency chain can be arbitrarily
// deep and handles are free to call back into the registry.
func (r *registry) destroyOne(name string) {
	r.mu.Lock()
	r.evictLocked(name)
	r.mu.Unlock()

	// Pop the handle before recursing: a dependency cycle arriving back
	// at name must find it already consumed rather than run it twice.
	r.disposalMu.Lock()
	handle := r.disposal[name]
	delete(r.disposal, name)
	r.disposalOrder.Remove(name)
	r.disposalMu.Unlock()

	// Dependents go first: whatever needs name must be gone before its
	// handle runs.
	for _, dependent := range r.graph.RemoveDependents(name) {
		r.destroyOne(dependent)
	}

	r.invokeDisposal(name, handle)

	for _, inner := range r.graph.RemoveContained(name) {
		r.destroyOne(inner)
	}

	r.graph.Prune(name)
}

// invokeDisposal runs handle, containing errors and panics so one failing
// teardown cannot stop the cascade.
func (r *registry) invokeDisposal(name string, handle apis.DisposeFunc) {
	if handle == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("disposal handle panicked", zap.String("id", name), zap.Any("panic", rec))
		}
	}()
	if err := handle(); err != nil {
		r.log.Error("disposal handle failed", zap.String("id", name), zap.Error(err))
	}
}
