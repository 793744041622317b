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

// PrimitiveKind enumerates the closed set of primitive field types.
type PrimitiveKind uint8

const (
	PrimitiveUnknown PrimitiveKind = iota
	PrimitiveVoid
	PrimitiveBool
	PrimitiveChar
	PrimitiveInt
	PrimitiveShort
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveLong
)

// String returns the canonical spelling of the kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveUnknown:
		return "unknown"
	case PrimitiveVoid:
		return "void"
	case PrimitiveBool:
		return "bool"
	case PrimitiveChar:
		return "char"
	case PrimitiveInt:
		return "int"
	case PrimitiveShort:
		return "short"
	case PrimitiveFloat:
		return "float"
	case PrimitiveDouble:
		return "double"
	case PrimitiveLong:
		return "long"
	default:
		return fmt.Sprintf("PrimitiveKind(%d)", k)
	}
}

// IsInteger reports whether k holds a signed integer value.
func (k PrimitiveKind) IsInteger() bool {
	switch k {
	case PrimitiveChar, PrimitiveShort, PrimitiveInt, PrimitiveLong:
		return true
	default:
		return false
	}
}

// IsFloat reports whether k holds a floating-point value.
func (k PrimitiveKind) IsFloat() bool {
	return k == PrimitiveFloat || k == PrimitiveDouble
}

// TypeIdentity identifies the declared type of a field.
//
// It is a tagged union: either a primitive kind or a nominal token derived
// from the type's spelling. Only the branch selected by IsPrimitive is
// meaningful. The zero value is the primitive Unknown identity.
//
// TypeIdentity is a comparable value type; == and Equal agree.
type TypeIdentity struct {
	nominal   bool
	primitive PrimitiveKind
	token     string
}

// Primitive returns the identity of the primitive kind k.
func Primitive(k PrimitiveKind) TypeIdentity {
	return TypeIdentity{primitive: k}
}

// Nominal returns the nominal identity keyed by token.
func Nominal(token string) TypeIdentity {
	return TypeIdentity{nominal: true, token: token}
}

// IsPrimitive reports whether the identity is on the primitive branch.
func (t TypeIdentity) IsPrimitive() bool {
	return !t.nominal
}

// Primitive returns the primitive kind, or PrimitiveUnknown for nominal identities.
func (t TypeIdentity) Primitive() PrimitiveKind {
	if t.nominal {
		return PrimitiveUnknown
	}
	return t.primitive
}

// Nominal returns the nominal token, or "" for primitive identities.
func (t TypeIdentity) Nominal() string {
	if !t.nominal {
		return ""
	}
	return t.token
}

// Equal reports whether t and o are on the same branch with the same kind or token.
func (t TypeIdentity) Equal(o TypeIdentity) bool {
	if t.nominal != o.nominal {
		return false
	}
	if t.nominal {
		return t.token == o.token
	}
	return t.primitive == o.primitive
}

// String returns the primitive spelling or the nominal token.
func (t TypeIdentity) String() string {
	if t.nominal {
		return t.token
	}
	return t.primitive.String()
}
