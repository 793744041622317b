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

package typeid

import (
	"reflect"

	"dirpx.dev/rflct/apis"
)

// builtins maps the unnamed Go storage types to their primitive kind.
var builtins = map[reflect.Type]apis.PrimitiveKind{
	reflect.TypeOf(struct{}{}): apis.PrimitiveVoid,
	reflect.TypeOf(false):      apis.PrimitiveBool,
	reflect.TypeOf(int8(0)):    apis.PrimitiveChar,
	reflect.TypeOf(uint8(0)):   apis.PrimitiveChar,
	reflect.TypeOf(int16(0)):   apis.PrimitiveShort,
	reflect.TypeOf(int(0)):     apis.PrimitiveInt,
	reflect.TypeOf(int32(0)):   apis.PrimitiveInt,
	reflect.TypeOf(int64(0)):   apis.PrimitiveLong,
	reflect.TypeOf(float32(0)): apis.PrimitiveFloat,
	reflect.TypeOf(float64(0)): apis.PrimitiveDouble,
}

// FromReflectType returns the identity of the Go type t.
//
// Only the builtin types listed above are primitive; named types such as
// `type ID int` and all composite types are nominal, keyed by t.String().
// A nil type yields the primitive Unknown identity.
func FromReflectType(t reflect.Type) apis.TypeIdentity {
	if t == nil {
		return apis.Primitive(apis.PrimitiveUnknown)
	}
	if k, ok := builtins[t]; ok {
		return apis.Primitive(k)
	}
	return apis.Nominal(t.String())
}

// Of returns the identity of T.
func Of[T any]() apis.TypeIdentity {
	return FromReflectType(reflect.TypeFor[T]())
}

// ValueOf tags v with the identity of T.
func ValueOf[T any](v T) apis.Value {
	return apis.NewValue(Of[T](), v)
}

// Spelling returns the spelling that ParsePrimitive maps back to the
// identity of t.
func Spelling(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if builtins[t] == apis.PrimitiveVoid {
		return "void"
	}
	return t.String()
}
