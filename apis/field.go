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

import "reflect"

// Field describes one declared class member and gives checked access to
// its storage inside instances of the owning class.
//
// Descriptors are created once per declared field during registration and
// never mutated afterwards, so every method is safe for concurrent use.
// The values they point at are not guarded: callers serialize concurrent
// writes to the same field of the same instance.
type Field interface {
	// Name returns the field name, unique within the owning class.
	Name() string
	// Type returns the declared type identity.
	Type() TypeIdentity
	// Access returns the declared access level.
	Access() AccessLevel
	// IsStatic reports the recorded static flag. It has no effect on access.
	IsStatic() bool
	// Owner returns the name of the owning class.
	Owner() string
	// StorageType returns the Go type of the field storage.
	StorageType() reflect.Type

	// Storage returns a typed pointer to the field inside instance.
	// instance must be a non-nil pointer to the owning class's struct,
	// otherwise ErrWrongInstanceType is returned.
	Storage(instance any) (any, error)
	// Load reads the field of instance as a tagged Value.
	Load(instance any) (Value, error)
	// Store writes v into the field of instance. v must carry the field's
	// type identity and storage type, otherwise ErrTypeMismatch is returned.
	Store(instance any, v Value) error
}
