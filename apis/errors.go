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

import "errors"

var (
	// ErrTypeMismatch is returned when a field is accessed with a type that
	// does not match its declared TypeIdentity or its storage type.
	ErrTypeMismatch = errors.New("rflct: type mismatch")
	// ErrWrongInstanceType is returned when an instance is not of the class
	// that owns the field or descriptor it was passed to.
	ErrWrongInstanceType = errors.New("rflct: wrong instance type")
	// ErrStaleHandle is returned for released, collected or foreign handles.
	ErrStaleHandle = errors.New("rflct: stale instance handle")
	// ErrDuplicateClass is returned when a class name is registered twice.
	ErrDuplicateClass = errors.New("rflct: duplicate class")
	// ErrDuplicateField is returned when a class declares a field name twice.
	ErrDuplicateField = errors.New("rflct: duplicate field")
	// ErrEmptyName is returned when a class or field name is empty.
	ErrEmptyName = errors.New("rflct: empty name")
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("rflct: nil reflect.Type provided")
	// ErrNotStruct is returned when a class is bound to a non-struct type.
	ErrNotStruct = errors.New("rflct: class type is not a struct")
	// ErrUnknownClass is returned when no class can be resolved for a value.
	ErrUnknownClass = errors.New("rflct: unknown class")
	// ErrNilField is returned when a nil field is added to a class.
	ErrNilField = errors.New("rflct: nil field")
	// ErrForeignField is returned when a field owned by another class is added.
	ErrForeignField = errors.New("rflct: field belongs to another class")
)
