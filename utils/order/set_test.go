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

package order_test

import (
	"slices"
	"testing"

	"dirpx.dev/lfx/utils/order"
)

func TestSet_AddPreservesInsertionOrder(t *testing.T) {
	s := order.NewSet(4)

	for _, v := range []string{"c", "a", "b"} {
		if !s.Add(v) {
			t.Fatalf("Add(%q) = false, want true", v)
		}
	}
	// Duplicate is rejected and does not move the element.
	if s.Add("a") {
		t.Fatalf("Add(duplicate) = true, want false")
	}

	got := s.Snapshot()
	want := []string{"c", "a", "b"}
	if !slices.Equal(got, want) {
		t.Fatalf("Snapshot() = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
}

func TestSet_RemoveAndContains(t *testing.T) {
	s := order.NewSet(0)
	s.Add("x")
	s.Add("y")

	if !s.Contains("x") {
		t.Fatalf("Contains(x) = false, want true")
	}
	if !s.Remove("x") {
		t.Fatalf("Remove(x) = false, want true")
	}
	if s.Remove("x") {
		t.Fatalf("Remove(x) twice = true, want false")
	}
	if s.Contains("x") {
		t.Fatalf("Contains(x) after Remove = true, want false")
	}
	if got := s.Snapshot(); !slices.Equal(got, []string{"y"}) {
		t.Fatalf("Snapshot() = %v, want [y]", got)
	}
}

func TestSet_SnapshotIsACopy(t *testing.T) {
	s := order.NewSet(2)
	s.Add("a")

	snap := s.Snapshot()
	s.Add("b")

	if len(snap) != 1 {
		t.Fatalf("snapshot mutated by later Add: %v", snap)
	}
}

func TestSet_Clear(t *testing.T) {
	s := order.NewSet(2)
	s.Add("a")
	s.Add("b")
	s.Clear()

	if s.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", s.Len())
	}
	if s.Contains("a") {
		t.Fatalf("Contains(a) after Clear = true, want false")
	}
	if got := s.Snapshot(); len(got) != 0 {
		t.Fatalf("Snapshot() after Clear = %v, want empty", got)
	}
}
