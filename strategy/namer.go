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

package strategy

import (
	"reflect"

	"dirpx.dev/rflct/apis"
)

// NewNamerStrategy creates an apis.Strategy that uses apis.ClassNamer.
func NewNamerStrategy(reg apis.Registry) apis.Strategy {
	return &namerStrategy{reg: reg}
}

// namerStrategy is the fast path: if v implements apis.ClassNamer,
// look its ClassName() up by name and stop the chain.
type namerStrategy struct {
	reg apis.Registry
}

// Ensure namerStrategy implements apis.Strategy.
var _ apis.Strategy = (*namerStrategy)(nil)

// TryResolve checks if v implements apis.ClassNamer and returns the named class.
// A namer whose class is unknown is not handled, so later strategies still run.
func (s *namerStrategy) TryResolve(v any, _ apis.Config) (apis.Class, bool) {
	if v == nil || s.reg == nil {
		return nil, false
	}
	n, ok := v.(apis.ClassNamer)
	if !ok {
		return nil, false
	}
	return s.reg.Class(n.ClassName())
}

// TryResolveType always returns false: ClassNamer requires an instance.
func (*namerStrategy) TryResolveType(_ reflect.Type, _ apis.Config) (apis.Class, bool) {
	// No instance -> cannot use ClassNamer.
	return nil, false
}
