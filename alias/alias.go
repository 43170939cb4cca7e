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

package alias

import (
	"errors"
	"fmt"
	"sync"

	"dirpx.dev/lfx/apis"
)

var (
	// ErrEmptyName is returned when an empty name or alias is provided.
	ErrEmptyName = errors.New("lfx(alias): empty name provided")
	// ErrAliasBound indicates an attempt to re-bind an existing alias
	// to a different canonical name.
	ErrAliasBound = errors.New("lfx(alias): alias already bound to a different name")
	// ErrCircularAlias indicates a registration that would make an alias
	// chain loop back on itself.
	ErrCircularAlias = errors.New("lfx(alias): circular alias chain")
	// ErrUnknownAlias is returned when removing an alias that was never
	// registered.
	ErrUnknownAlias = errors.New("lfx(alias): no such alias")
)

// New constructs an empty apis.Aliaser.
func New() apis.Aliaser {
	return &aliaser{aliases: make(map[string]string, 8)}
}

// aliaser maps alias -> canonical name under a single lock.
type aliaser struct {
	mu sync.RWMutex
	// aliases holds direct records only; chains resolve by iteration.
	aliases map[string]string
}

// RegisterAlias binds alias to name. An alias equal to its own name is a
// request to drop the alias. Existing identical bindings are idempotent.
func (a *aliaser) RegisterAlias(name, alias string) error {
	if name == "" || alias == "" {
		return ErrEmptyName
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if alias == name {
		delete(a.aliases, alias)
		return nil
	}
	if bound, ok := a.aliases[alias]; ok {
		if bound == name {
			return nil // idempotent re-registration
		}
		return fmt.Errorf("%w: %q -> %q, requested %q", ErrAliasBound, alias, bound, name)
	}
	// Reject a chain that would resolve back through the new alias.
	if a.hasAlias(alias, name) {
		return fmt.Errorf("%w: %q -> %q", ErrCircularAlias, alias, name)
	}

	a.aliases[alias] = name
	return nil
}

// RemoveAlias drops a registered alias.
func (a *aliaser) RemoveAlias(alias string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.aliases[alias]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlias, alias)
	}
	delete(a.aliases, alias)
	return nil
}

// IsAlias reports whether name has an alias record.
func (a *aliaser) IsAlias(name string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	_, ok := a.aliases[name]
	return ok
}

// Canonical follows the alias chain from name to its fixed point.
func (a *aliaser) Canonical(name string) string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	resolved := name
	for {
		next, ok := a.aliases[resolved]
		if !ok {
			return resolved
		}
		resolved = next
	}
}

// Aliases returns every identifier that resolves to name, directly or
// through another alias.
func (a *aliaser) Aliases(name string) []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []string
	a.collectAliases(name, &out)
	return out
}

// collectAliases appends the transitive aliases of name to out.
// Caller holds at least a read lock.
func (a *aliaser) collectAliases(name string, out *[]string) {
	for al, bound := range a.aliases {
		if bound == name {
			*out = append(*out, al)
			a.collectAliases(al, out)
		}
	}
}

// hasAlias reports whether target is a direct or transitive alias of name.
// Caller holds the write lock. Chains are acyclic by construction, so the
// walk needs no visited set.
func (a *aliaser) hasAlias(name, target string) bool {
	for al, bound := range a.aliases {
		if bound != name {
			continue
		}
		if al == target || a.hasAlias(al, target) {
			return true
		}
	}
	return false
}
