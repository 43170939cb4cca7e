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

package lfx

import (
	"dirpx.dev/lfx/apis"
	"dirpx.dev/lfx/builder"
	"dirpx.dev/lfx/config"
)

// Re-exported so typical callers only import the root package.
type (
	// Registry manages identifier-keyed shared instances.
	Registry = apis.Registry
	// Aliaser resolves alternate names to canonical identifiers.
	Aliaser = apis.Aliaser
	// Factory produces a managed instance on demand.
	Factory = apis.Factory
	// DisposeFunc tears down a managed instance at shutdown.
	DisposeFunc = apis.DisposeFunc
	// Config carries registry construction parameters.
	Config = apis.Config
	// Option mutates a Config during construction.
	Option = config.Option
)

// New constructs a Registry with its own alias resolver.
func New(opts ...Option) Registry {
	cfg := config.NewConfig(opts...)
	b := builder.New()
	return b.BuildRegistry(cfg, nil, b.BuildAliaser(cfg))
}

// NewWithAliaser constructs a Registry resolving identifiers through the
// given Aliaser. A nil aliaser behaves like New.
func NewWithAliaser(aliaser Aliaser, opts ...Option) Registry {
	cfg := config.NewConfig(opts...)
	return builder.New().BuildRegistry(cfg, nil, aliaser)
}
