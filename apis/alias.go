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

// Aliaser maps alternate identifiers to their canonical identifier.
//
// The registry consults an Aliaser once per lookup to normalize keys before
// touching any cache tier. Alias chains are permitted (a -> b -> c); chains
// that loop back on themselves are rejected at registration time.
// Implementations must be safe for concurrent use.
type Aliaser interface {
	// RegisterAlias makes alias an alternate identifier for name.
	// Registering an alias equal to its name removes the alias.
	// Re-binding an existing alias to a different name fails.
	RegisterAlias(name, alias string) error
	// RemoveAlias drops a registered alias.
	RemoveAlias(alias string) error
	// IsAlias reports whether name is registered as an alias.
	IsAlias(name string) bool
	// Canonical follows the alias chain from name to its fixed point.
	// A name with no alias record canonicalizes to itself.
	Canonical(name string) string
	// Aliases returns all identifiers that transitively alias name.
	Aliases(name string) []string
}
