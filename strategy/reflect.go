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

	lru "github.com/hashicorp/golang-lru"

	"dirpx.dev/rflct/apis"
	uref "dirpx.dev/rflct/utils/reflect"
)

// nameCacheLimit bounds the candidate names memoized per strategy.
const nameCacheLimit = 1024

// NewReflectStrategy creates an apis.Strategy that derives a class name
// from the Go type: first "pkg.Type", then the bare "Type".
func NewReflectStrategy(reg apis.Registry) apis.Strategy {
	names, _ := lru.New(nameCacheLimit)
	return &reflectStrategy{reg: reg, names: names}
}

// reflectStrategy is the nominal fallback for registries whose type index
// misses: a class declared under the spelling of its Go type is found by
// name, but only when it is bound to that same type.
type reflectStrategy struct {
	reg   apis.Registry
	names *lru.Cache // key: cacheKey, val: candidates
}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect resolution.
type cacheKey struct {
	t         reflect.Type
	maxUnwrap int
}

// candidates holds the normalized type and its spellings for a cacheKey.
type candidates struct {
	base      reflect.Type
	qualified string
	bare      string
}

// TryResolve resolves v's type by name.
func (s *reflectStrategy) TryResolve(v any, cfg apis.Config) (apis.Class, bool) {
	if v == nil {
		return nil, false
	}
	return s.TryResolveType(reflect.TypeOf(v), cfg)
}

// TryResolveType resolves t by name.
func (s *reflectStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (apis.Class, bool) {
	if t == nil || s.reg == nil {
		return nil, false
	}
	names := s.byType(t, cfg)
	if names.qualified == "" {
		return nil, false
	}
	for _, name := range [...]string{names.qualified, names.bare} {
		if c, ok := s.reg.Class(name); ok && c.InstanceType() == names.base {
			return c, true
		}
	}
	return nil, false
}

// byType computes the candidate names for t with memoization.
func (s *reflectStrategy) byType(t reflect.Type, cfg apis.Config) candidates {
	key := cacheKey{t: t, maxUnwrap: cfg.MaxUnwrap}
	if v, ok := s.names.Get(key); ok {
		return v.(candidates)
	}

	var names candidates
	if base, err := uref.Normalize(t, cfg); err == nil {
		names = candidates{base: base, qualified: uref.QualifiedName(base), bare: base.Name()}
		if names.bare == names.qualified {
			// Builtin named types never name a class.
			names = candidates{}
		}
	}

	s.names.Add(key, names)
	return names
}
