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

import "fmt"

// Value is a field value tagged with its TypeIdentity.
//
// It is the type-erased currency of Field.Load and Field.Store. The tag is
// checked on every typed accessor, so a Value can be handed around without
// the static type while never being reinterpreted as something it is not.
type Value struct {
	typ TypeIdentity
	raw any
}

// NewValue tags raw with t. Callers normally use typeid.ValueOf, which
// derives the tag from the Go type.
func NewValue(t TypeIdentity, raw any) Value {
	return Value{typ: t, raw: raw}
}

// Type returns the tag.
func (v Value) Type() TypeIdentity { return v.typ }

// Interface returns the held Go value.
func (v Value) Interface() any { return v.raw }

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool { return v.raw != nil }

// Bool returns the value of a Bool-tagged Value.
func (v Value) Bool() (bool, error) {
	if v.typ != Primitive(PrimitiveBool) {
		return false, v.mismatch("bool")
	}
	b, ok := v.raw.(bool)
	if !ok {
		return false, v.mismatch("bool")
	}
	return b, nil
}

// Int returns the value of an integer-tagged Value widened to int64.
func (v Value) Int() (int64, error) {
	if !v.typ.IsPrimitive() || !v.typ.Primitive().IsInteger() {
		return 0, v.mismatch("integer")
	}
	switch n := v.raw.(type) {
	case int8:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, v.mismatch("integer")
	}
}

// Float returns the value of a Float- or Double-tagged Value widened to float64.
func (v Value) Float() (float64, error) {
	if !v.typ.IsPrimitive() || !v.typ.Primitive().IsFloat() {
		return 0, v.mismatch("floating-point")
	}
	switch f := v.raw.(type) {
	case float32:
		return float64(f), nil
	case float64:
		return f, nil
	default:
		return 0, v.mismatch("floating-point")
	}
}

// String formats the held value.
func (v Value) String() string {
	if v.raw == nil {
		return "<invalid>"
	}
	return fmt.Sprint(v.raw)
}

func (v Value) mismatch(want string) error {
	return fmt.Errorf("%w: value of type %s is not %s", ErrTypeMismatch, v.typ, want)
}
