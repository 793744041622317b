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

package apis

// Config carries read-only knobs for registration, instance tracking and
// class resolution. It is passed by value and should be treated as
// immutable by implementations.
type Config struct {
	// MaxUnwrap limits pointer unwrapping when resolving the class of an
	// instance type (e.g. **T -> T). Acts as a guard against pathological nesting.
	MaxUnwrap int `yaml:"max_unwrap" toml:"max_unwrap"`

	// StrictSpelling makes registration fail when a declared type spelling
	// disagrees with the Go storage type of the field. When false the
	// mismatch is logged and the declared spelling is kept.
	StrictSpelling bool `yaml:"strict_spelling" toml:"strict_spelling"`

	// WeakInstances holds registered instances through weak pointers, so a
	// collected instance turns its handle stale instead of being kept alive.
	// It applies to classes registered through a class.Declaration, which
	// knows the struct type statically. Classes created directly with
	// Registry.Create keep their instances strongly.
	WeakInstances bool `yaml:"weak_instances" toml:"weak_instances"`

	// RecycleSlots lets the instance arena reuse released slots under a
	// bumped generation.
	RecycleSlots bool `yaml:"recycle_slots" toml:"recycle_slots"`

	// ArenaCapacity is the initial capacity hint of each class's instance arena.
	ArenaCapacity int `yaml:"arena_capacity" toml:"arena_capacity"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" toml:"log_level"`
}
