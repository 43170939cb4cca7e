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

package config

import (
	"go.uber.org/zap"

	"dirpx.dev/lfx/apis"
)

const (
	// DefaultAllowEarlyReferences represents the default for
	// AllowEarlyReferences. Early references are what make circular
	// construction dependencies resolvable, so they are on by default.
	DefaultAllowEarlyReferences = true
	// DefaultInitialCapacity represents the default for InitialCapacity.
	// Sized for a mid-size container; maps grow past it transparently.
	DefaultInitialCapacity = 64
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure InitialCapacity and Logger are valid.
	if cfg.InitialCapacity <= 0 {
		cfg.InitialCapacity = DefaultInitialCapacity
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		AllowEarlyReferences: DefaultAllowEarlyReferences,
		InitialCapacity:      DefaultInitialCapacity,
		Logger:               zap.NewNop(),
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithAllowEarlyReferences sets the AllowEarlyReferences option.
func WithAllowEarlyReferences(allow bool) Option {
	return func(c *apis.Config) {
		c.AllowEarlyReferences = allow
	}
}

// WithInitialCapacity sets the InitialCapacity option.
// A non-positive value resets to the default.
func WithInitialCapacity(capacity int) Option {
	return func(c *apis.Config) {
		if capacity <= 0 {
			c.InitialCapacity = DefaultInitialCapacity
			return
		}
		c.InitialCapacity = capacity
	}
}

// WithLogger sets the Logger option. A nil logger resets to the no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *apis.Config) {
		if logger == nil {
			c.Logger = zap.NewNop()
			return
		}
		c.Logger = logger
	}
}
