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
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	// ErrNilFactory is returned when a nil factory is provided.
	ErrNilFactory = errors.New("lfx(registry): nil factory provided")
	// ErrNilInstance is returned when a nil instance is provided.
	ErrNilInstance = errors.New("lfx(registry): nil instance provided")
	// ErrAlreadyRegistered indicates an attempt to bind an identifier
	// that already holds a finished instance.
	ErrAlreadyRegistered = errors.New("lfx(registry): identifier already bound")
	// ErrCreationInShutdown is returned for creations attempted while the
	// registry is destroying its instances. Do not request an instance
	// from inside a disposal handle.
	ErrCreationInShutdown = errors.New("lfx(registry): creation not allowed while registry is shutting down")
)

// CreationError reports a failed construction. Err is the factory's own
// failure; Suppressed carries related failures tolerated during the same
// creation window (for example an early-reference demand that failed while
// a cycle was being resolved), kept for diagnostics only.
type CreationError struct {
	ID         string
	Err        error
	Suppressed []error
}

func (e *CreationError) Error() string {
	if len(e.Suppressed) == 0 {
		return fmt.Sprintf("lfx(registry): creating %q: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("lfx(registry): creating %q: %v (%d suppressed)", e.ID, e.Err, len(e.Suppressed))
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// Combined folds the cause and every suppressed failure into one error
// suitable for logging in full.
func (e *CreationError) Combined() error {
	return multierr.Append(e.Err, multierr.Combine(e.Suppressed...))
}
