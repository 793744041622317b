/*
   Copyright 2025 The DIRPX Authors.

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
	"dirpx.dev/rflct/apis"
)

const (
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultStrictSpelling represents the default for StrictSpelling.
	// When true, a declared type spelling must agree with the field storage type.
	DefaultStrictSpelling = true
	// DefaultWeakInstances represents the default for WeakInstances.
	DefaultWeakInstances = false
	// DefaultRecycleSlots represents the default for RecycleSlots.
	DefaultRecycleSlots = true
	// DefaultArenaCapacity represents the default for ArenaCapacity.
	DefaultArenaCapacity = 16
	// DefaultLogLevel represents the default for LogLevel.
	DefaultLogLevel = "info"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return sanitize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxUnwrap:      DefaultMaxUnwrap,
		StrictSpelling: DefaultStrictSpelling,
		WeakInstances:  DefaultWeakInstances,
		RecycleSlots:   DefaultRecycleSlots,
		ArenaCapacity:  DefaultArenaCapacity,
		LogLevel:       DefaultLogLevel,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithStrictSpelling sets the StrictSpelling option.
func WithStrictSpelling(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictSpelling = strict
	}
}

// WithWeakInstances sets the WeakInstances option.
func WithWeakInstances(weak bool) Option {
	return func(c *apis.Config) {
		c.WeakInstances = weak
	}
}

// WithRecycleSlots sets the RecycleSlots option.
func WithRecycleSlots(recycle bool) Option {
	return func(c *apis.Config) {
		c.RecycleSlots = recycle
	}
}

// WithArenaCapacity sets the ArenaCapacity option.
// A non-positive value resets to the default.
func WithArenaCapacity(n int) Option {
	return func(c *apis.Config) {
		if n <= 0 {
			c.ArenaCapacity = DefaultArenaCapacity
			return
		}
		c.ArenaCapacity = n
	}
}

// WithLogLevel sets the LogLevel option.
func WithLogLevel(level string) Option {
	return func(c *apis.Config) {
		c.LogLevel = level
	}
}

// sanitize restores defaults for out-of-range values.
func sanitize(cfg apis.Config) apis.Config {
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.ArenaCapacity <= 0 {
		cfg.ArenaCapacity = DefaultArenaCapacity
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return cfg
}
