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

package order

import "slices"

// Set is an insertion-ordered string set.
//
// It exists because destruction order and identifier listings must be
// deterministic: plain Go maps iterate in random order. Set is not
// synchronized; callers guard it with their own lock.
type Set struct {
	members map[string]struct{}
	order   []string
}

// NewSet returns an empty Set sized for capacity elements.
func NewSet(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{
		members: make(map[string]struct{}, capacity),
		order:   make([]string, 0, capacity),
	}
}

// Add appends v unless already present. Reports whether v was added.
func (s *Set) Add(v string) bool {
	if _, ok := s.members[v]; ok {
		return false
	}
	s.members[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Remove deletes v. Reports whether v was present.
func (s *Set) Remove(v string) bool {
	if _, ok := s.members[v]; !ok {
		return false
	}
	delete(s.members, v)
	if i := slices.Index(s.order, v); i >= 0 {
		s.order = append(s.order[:i], s.order[i+1:]...)
	}
	return true
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v string) bool {
	_, ok := s.members[v]
	return ok
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.members)
}

// Snapshot returns a copy of the elements in insertion order.
func (s *Set) Snapshot() []string {
	return slices.Clone(s.order)
}

// Clear removes every element, keeping allocated capacity.
func (s *Set) Clear() {
	clear(s.members)
	s.order = s.order[:0]
}
