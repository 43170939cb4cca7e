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

// Builder composes an Aliaser and a Registry from a Config.
// Implementations may migrate finished instances from a previous registry
// (prev), or ignore it.
type Builder interface {
	// BuildAliaser constructs the alias resolver consulted by the registry.
	BuildAliaser(cfg Config) Aliaser
	// BuildRegistry constructs a Registry for Config using the given
	// Aliaser. When prev is non-nil its primary-tier entries are carried
	// over into the new registry as pre-built instances.
	BuildRegistry(cfg Config, prev Registry, aliaser Aliaser) Registry
}
