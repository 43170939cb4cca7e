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

package tracker

import (
	"errors"
	"fmt"
	"sync"

	"dirpx.dev/lfx/apis"
)

var (
	// ErrCircularCreation is returned when a non-excluded identifier
	// re-enters construction while it is already in creation.
	ErrCircularCreation = errors.New("lfx(tracker): identifier is already in creation")
	// ErrNotInCreation is returned by Exit for an identifier that was
	// never entered. It signals a bookkeeping bug in a collaborator and
	// should not be caught and retried.
	ErrNotInCreation = errors.New("lfx(tracker): identifier is not in creation")
)

// New constructs an empty apis.Tracker.
func New() apis.Tracker {
	return &tracker{
		inCreation: make(map[string]struct{}, 16),
		excluded:   make(map[string]struct{}, 4),
	}
}

// tracker keeps the in-creation and exclusion sets under one lock.
type tracker struct {
	mu         sync.Mutex
	inCreation map[string]struct{}
	excluded   map[string]struct{}
}

// Enter marks id as in-creation. Excluded identifiers bypass tracking.
func (t *tracker) Enter(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.excluded[id]; ok {
		return nil
	}
	if _, ok := t.inCreation[id]; ok {
		return fmt.Errorf("%w: %q", ErrCircularCreation, id)
	}
	t.inCreation[id] = struct{}{}
	return nil
}

// Exit clears the in-creation mark set by Enter.
func (t *tracker) Exit(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.excluded[id]; ok {
		return nil
	}
	if _, ok := t.inCreation[id]; !ok {
		return fmt.Errorf("%w: %q", ErrNotInCreation, id)
	}
	delete(t.inCreation, id)
	return nil
}

// SetExcluded toggles whether id bypasses creation tracking.
func (t *tracker) SetExcluded(id string, excluded bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if excluded {
		t.excluded[id] = struct{}{}
		return
	}
	delete(t.excluded, id)
}

// InCreation reports whether id is tracked and not excluded.
func (t *tracker) InCreation(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.excluded[id]; ok {
		return false
	}
	_, ok := t.inCreation[id]
	return ok
}
