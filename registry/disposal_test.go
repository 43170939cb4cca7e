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

package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"dirpx.dev/lfx/apis"
	"dirpx.dev/lfx/config"
	"dirpx.dev/lfx/registry"
)

// populate registers an instance and a disposal handle that appends id to
// *order when it runs.
func populate(t *testing.T, r apis.Registry, id string, order *[]string) {
	t.Helper()
	require.NoError(t, r.RegisterInstance(id, &widget{name: id}))
	r.RegisterDisposal(id, func() error {
		*order = append(*order, id)
		return nil
	})
}

func TestShutdownReverseOrder(t *testing.T) {
	r := newRegistry(config.WithLogger(zaptest.NewLogger(t)))

	var order []string
	for _, id := range []string{"a", "b", "c"} {
		populate(t, r, id, &order)
	}

	r.ShutdownAll()

	require.Equal(t, []string{"c", "b", "a"}, order)
	require.Zero(t, r.Count())
	require.Empty(t, r.RegisteredIDs())
}

func TestDestroyOneDependentsFirst(t *testing.T) {
	r := newRegistry(config.WithLogger(zaptest.NewLogger(t)))

	var order []string
	populate(t, r, "a", &order)
	populate(t, r, "b", &order)
	populate(t, r, "c", &order)
	r.RegisterDependency("a", "b") // b depends on a
	r.RegisterDependency("b", "c") // c depends on b

	r.DestroyOne("a")

	require.Equal(t, []string{"c", "b", "a"}, order)
	require.False(t, r.ContainsPrimary("a"))
	require.False(t, r.ContainsPrimary("b"))
	require.False(t, r.HasDependents("a"))
	require.Empty(t, r.Dependencies("b"))
}

func TestDestroyOneContainmentCascade(t *testing.T) {
	r := newRegistry(config.WithLogger(zaptest.NewLogger(t)))

	var order []string
	populate(t, r, "outer", &order)
	populate(t, r, "inner", &order)
	r.RegisterContainment("inner", "outer")

	r.DestroyOne("outer")

	// The container's handle runs first, then the cascade reaches what it
	// contains.
	require.Equal(t, []string{"outer", "inner"}, order)
	require.False(t, r.ContainsPrimary("inner"))
}

func TestDestroyOneCycleRunsEachHandleOnce(t *testing.T) {
	r := newRegistry(config.WithLogger(zaptest.NewLogger(t)))

	var order []string
	populate(t, r, "a", &order)
	populate(t, r, "b", &order)
	r.RegisterDependency("a", "b")
	r.RegisterDependency("b", "a")

	r.DestroyOne("a")

	require.Equal(t, []string{"b", "a"}, order)
}

func TestDestroyOneIsIdempotent(t *testing.T) {
	r := newRegistry(config.WithLogger(zaptest.NewLogger(t)))

	var order []string
	populate(t, r, "a", &order)

	r.DestroyOne("a")
	r.DestroyOne("a")
	r.DestroyOne("never-registered")

	require.Equal(t, []string{"a"}, order)
}

func TestShutdownSurvivesFailingHandles(t *testing.T) {
	r := newRegistry(config.WithLogger(zaptest.NewLogger(t)))

	var invoked []string
	require.NoError(t, r.RegisterInstance("a", &widget{name: "a"}))
	r.RegisterDisposal("a", func() error {
		invoked = append(invoked, "a")
		return nil
	})
	require.NoError(t, r.RegisterInstance("b", &widget{name: "b"}))
	r.RegisterDisposal("b", func() error {
		invoked = append(invoked, "b")
		return errors.New("close failed")
	})
	require.NoError(t, r.RegisterInstance("c", &widget{name: "c"}))
	r.RegisterDisposal("c", func() error {
		invoked = append(invoked, "c")
		panic("teardown panic")
	})

	r.ShutdownAll()

	require.Equal(t, []string{"c", "b", "a"}, invoked)
	require.Zero(t, r.Count())
}

func TestReregisteredDisposalKeepsPosition(t *testing.T) {
	r := newRegistry(config.WithLogger(zaptest.NewLogger(t)))

	var order []string
	populate(t, r, "a", &order)
	populate(t, r, "b", &order)
	// Re-registering a's handle must not move it behind b.
	r.RegisterDisposal("a", func() error {
		order = append(order, "a")
		return nil
	})

	r.ShutdownAll()

	require.Equal(t, []string{"b", "a"}, order)
}

func TestCreationRejectedDuringShutdown(t *testing.T) {
	r := newRegistry(config.WithLogger(zaptest.NewLogger(t)))

	require.NoError(t, r.RegisterInstance("a", &widget{name: "a"}))
	var createErr error
	r.RegisterDisposal("a", func() error {
		_, createErr = r.GetOrCreate("late", func() (any, error) { return &widget{}, nil })
		return nil
	})

	r.ShutdownAll()

	require.ErrorIs(t, createErr, registry.ErrCreationInShutdown)
}

func TestRegistryReusableAfterShutdown(t *testing.T) {
	r := newRegistry(config.WithLogger(zaptest.NewLogger(t)))

	var order []string
	populate(t, r, "a", &order)
	r.RegisterDependency("a", "b")
	r.ShutdownAll()

	require.False(t, r.HasDependents("a"))

	// A fresh lifecycle on the same registry works end to end.
	v, err := r.GetOrCreate("a", func() (any, error) { return &widget{name: "a2"}, nil })
	require.NoError(t, err)
	require.Equal(t, "a2", v.(*widget).name)
	r.RegisterDisposal("a", func() error {
		order = append(order, "a-again")
		return nil
	})
	r.ShutdownAll()

	require.Equal(t, []string{"a", "a-again"}, order)
}

func TestShutdownDoesNotRerunConsumedHandles(t *testing.T) {
	r := newRegistry(config.WithLogger(zaptest.NewLogger(t)))

	var order []string
	populate(t, r, "a", &order)
	r.DestroyOne("a")
	populate(t, r, "b", &order)

	r.ShutdownAll()

	require.Equal(t, []string{"a", "b"}, order)
}
