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

import "go.uber.org/zap"

// Config carries the read-only knobs of a registry.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// AllowEarlyReferences controls whether Get may hand out a reference
	// to an instance that is still mid-construction, promoting it from the
	// factory tier to the early tier. Disabling it makes construction
	// cycles fail instead of resolving.
	AllowEarlyReferences bool

	// InitialCapacity sizes the internal maps. Purely a hint.
	InitialCapacity int

	// Logger receives construction debug lines and disposal failures.
	// A nil logger is replaced by zap.NewNop().
	Logger *zap.Logger
}
