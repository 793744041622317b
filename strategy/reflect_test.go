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

package strategy_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/rflct/config"
	"dirpx.dev/rflct/registry"
	"dirpx.dev/rflct/strategy"
)

type alias struct{ id int }

func TestReflectStrategy_QualifiedFirst(t *testing.T) {
	// The qualified spelling wins over the bare one.
	reg := newRegistry(t,
		"Widget", reflect.TypeFor[Gadget](),
		"strategy_test.Widget", reflect.TypeFor[Widget](),
	)
	s := strategy.NewReflectStrategy(reg)

	c, ok := s.TryResolve(&Widget{}, config.DefaultConfig())
	require.True(t, ok)
	assert.Equal(t, "strategy_test.Widget", c.Name())
}

func TestReflectStrategy_BareName(t *testing.T) {
	reg := newRegistry(t, "Widget", reflect.TypeFor[Widget]())
	s := strategy.NewReflectStrategy(reg)

	c, ok := s.TryResolveType(reflect.TypeFor[*Widget](), config.DefaultConfig())
	require.True(t, ok)
	assert.Equal(t, "Widget", c.Name())
}

func TestReflectStrategy_NameBoundToOtherType(t *testing.T) {
	cfg := config.DefaultConfig()

	// A class spelled like the Go type but bound to another struct cannot
	// hold the value, so the name alone does not resolve it.
	reg := newRegistry(t, "Widget", reflect.TypeFor[alias]())
	_, ok := strategy.NewReflectStrategy(reg).TryResolve(&Widget{}, cfg)
	assert.False(t, ok)

	// A mismatched qualified spelling falls through to a matching bare one.
	reg = newRegistry(t,
		"strategy_test.Widget", reflect.TypeFor[alias](),
		"Widget", reflect.TypeFor[Widget](),
	)
	c, ok := strategy.NewReflectStrategy(reg).TryResolve(&Widget{}, cfg)
	require.True(t, ok)
	assert.Equal(t, "Widget", c.Name())
	assert.Equal(t, reflect.TypeFor[Widget](), c.InstanceType())
}

func TestReflectStrategy_Misses(t *testing.T) {
	reg := newRegistry(t, "int", reflect.TypeFor[Widget]())
	s := strategy.NewReflectStrategy(reg)
	cfg := config.DefaultConfig()

	_, ok := s.TryResolve(42, cfg)
	assert.False(t, ok, "builtin types never name a class")
	_, ok = s.TryResolve(&Gadget{}, cfg)
	assert.False(t, ok)
	_, ok = s.TryResolve(nil, cfg)
	assert.False(t, ok)
	_, ok = s.TryResolveType(reflect.TypeFor[[]Widget](), cfg)
	assert.False(t, ok)
}

func TestReflectStrategy_MaxUnwrapIsPartOfCacheKey(t *testing.T) {
	reg := newRegistry(t, "Widget", reflect.TypeFor[Widget]())
	s := strategy.NewReflectStrategy(reg)
	deep := reflect.TypeFor[***Widget]()

	_, ok := s.TryResolveType(deep, config.DefaultConfig())
	assert.True(t, ok)
	_, ok = s.TryResolveType(deep, config.NewConfig(config.WithMaxUnwrap(1)))
	assert.False(t, ok)
}

func TestReflectStrategy_FollowsRegistryChanges(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	s := strategy.NewReflectStrategy(reg)
	cfg := config.DefaultConfig()

	_, ok := s.TryResolve(&Gadget{}, cfg)
	require.False(t, ok)

	_, err := reg.Create("Gadget", reflect.TypeFor[Gadget]())
	require.NoError(t, err)
	_, ok = s.TryResolve(&Gadget{}, cfg)
	assert.True(t, ok)
}
