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

import "dirpx.dev/rflct/apis"

// spellings is the closed vocabulary of primitive type spellings. Both the
// canonical kind names and the Go spellings of the matching storage types
// are accepted.
var spellings = map[string]apis.PrimitiveKind{
	"void":    apis.PrimitiveVoid,
	"bool":    apis.PrimitiveBool,
	"char":    apis.PrimitiveChar,
	"int8":    apis.PrimitiveChar,
	"byte":    apis.PrimitiveChar,
	"uint8":   apis.PrimitiveChar,
	"short":   apis.PrimitiveShort,
	"int16":   apis.PrimitiveShort,
	"int":     apis.PrimitiveInt,
	"int32":   apis.PrimitiveInt,
	"long":    apis.PrimitiveLong,
	"int64":   apis.PrimitiveLong,
	"float":   apis.PrimitiveFloat,
	"float32": apis.PrimitiveFloat,
	"double":  apis.PrimitiveDouble,
	"float64": apis.PrimitiveDouble,
}

// ParsePrimitive classifies a type spelling. Known spellings map to their
// primitive kind; every other spelling becomes a nominal identity keyed by
// the spelling itself, so distinct spellings stay distinct identities.
//
// ParsePrimitive never fails. The spelling is matched verbatim.
func ParsePrimitive(spelling string) apis.TypeIdentity {
	if k, ok := spellings[spelling]; ok {
		return apis.Primitive(k)
	}
	return apis.Nominal(spelling)
}
