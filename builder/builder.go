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

package builder

import (
	"go.uber.org/zap"

	"dirpx.dev/lfx/alias"
	"dirpx.dev/lfx/apis"
	"dirpx.dev/lfx/registry"
)

// New returns the default Builder.
func New() apis.Builder {
	return &builder{}
}

type builder struct{}

// BuildAliaser constructs an empty alias resolver.
func (b *builder) BuildAliaser(_ apis.Config) apis.Aliaser {
	return alias.New()
}

// BuildRegistry constructs a registry for cfg. Finished instances of prev,
// if any, are carried over; mid-construction state (early references,
// factories, disposal handles, the dependency graph) deliberately is not.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry, aliaser apis.Aliaser) apis.Registry {
	next := registry.New(cfg, aliaser)
	if prev == nil {
		return next
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	for _, id := range prev.RegisteredIDs() {
		v, ok := prev.Get(id)
		if !ok {
			continue
		}
		if err := next.RegisterInstance(id, v); err != nil {
			log.Warn("skipping instance during migration", zap.String("id", id), zap.Error(err))
		}
	}
	return next
}
