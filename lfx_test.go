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

package lfx_test

import (
	"reflect"
	"testing"

	"dirpx.dev/lfx"
	"dirpx.dev/lfx/alias"
	"dirpx.dev/lfx/config"
)

type serviceA struct {
	b *serviceB
}

type serviceB struct {
	a *serviceA
}

// Two services need each other: A's factory installs an early reference
// to itself, then resolves B, whose factory looks A up mid-construction.
func TestCircularConstruction(t *testing.T) {
	reg := lfx.New()

	var destroyed []string
	a, err := reg.GetOrCreate("a", func() (any, error) {
		self := &serviceA{}
		reg.RegisterEarlyFactory("a", func() (any, error) { return self, nil })

		b, err := reg.GetOrCreate("b", func() (any, error) {
			aEarly, ok := reg.Get("a")
			if !ok {
				t.Fatal("no early reference for a")
			}
			return &serviceB{a: aEarly.(*serviceA)}, nil
		})
		if err != nil {
			return nil, err
		}
		reg.RegisterDependency("a", "b")

		self.b = b.(*serviceB)
		return self, nil
	})
	if err != nil {
		t.Fatalf("GetOrCreate(a): %v", err)
	}

	gotA := a.(*serviceA)
	if gotA.b == nil || gotA.b.a != gotA {
		t.Fatal("cycle not wired through the early reference")
	}
	bVal, ok := reg.Get("b")
	if !ok || bVal != any(gotA.b) {
		t.Fatalf("Get(b) = %v, %v", bVal, ok)
	}

	reg.RegisterDisposal("a", func() error {
		destroyed = append(destroyed, "a")
		return nil
	})
	reg.RegisterDisposal("b", func() error {
		destroyed = append(destroyed, "b")
		return nil
	})

	reg.ShutdownAll()

	// b depends on a, so b's handle runs first regardless of disposal
	// registration order.
	if want := []string{"b", "a"}; !reflect.DeepEqual(destroyed, want) {
		t.Fatalf("destruction order = %v, want %v", destroyed, want)
	}
	if reg.Count() != 0 {
		t.Fatalf("Count = %d after shutdown", reg.Count())
	}
}

func TestNewWithAliaser(t *testing.T) {
	al := alias.New()
	if err := al.RegisterAlias("database", "db"); err != nil {
		t.Fatalf("RegisterAlias: %v", err)
	}
	reg := lfx.NewWithAliaser(al, config.WithInitialCapacity(8))

	v, err := reg.GetOrCreate("db", func() (any, error) { return &serviceA{}, nil })
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if got, ok := reg.Get("database"); !ok || got != v {
		t.Fatalf("Get(canonical) = %v, %v; want %v, true", got, ok, v)
	}
}
