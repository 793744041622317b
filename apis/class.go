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

// Class describes one declared class: its ordered fields and its
// registered instances.
type Class interface {
	// Name returns the class name, unique within a Registry.
	Name() string
	// InstanceType returns the struct type instances of the class point to.
	InstanceType() reflect.Type

	// AddField appends f. No uniqueness check is performed: a duplicate name
	// is shadowed by the earlier field in Field lookups.
	AddField(f Field) error
	// Fields returns the fields in declaration order.
	Fields() []Field
	// Field returns the first field named name.
	Field(name string) (Field, bool)
	// Len returns the number of fields.
	Len() int

	// AddInstance registers instance and returns its handle. instance must
	// be a non-nil pointer to InstanceType.
	AddInstance(instance any) (Handle, error)
	// Instances returns live handles in registration order.
	Instances() []Handle
	// Instance returns the instance behind h, or ErrStaleHandle.
	Instance(h Handle) (any, error)
	// Release invalidates h.
	Release(h Handle) error
}

// ClassNamer lets an instance name its class explicitly.
type ClassNamer interface {
	ClassName() string
}

// ClassDescriber augments ClassNamer with human-oriented metadata about
// the class. Both methods are type-level: they must not depend on the
// state of the receiver, which may be a zero value.
type ClassDescriber interface {
	ClassNamer

	// ClassDescription returns a short, single-sentence description.
	ClassDescription() string
}
