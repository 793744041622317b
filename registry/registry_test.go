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

package registry_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/rflct/apis"
	"dirpx.dev/rflct/class"
	"dirpx.dev/rflct/config"
	"dirpx.dev/rflct/registry"
)

func TestCreate_AndLookup(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	c, err := reg.Create("domain.T1", reflect.TypeFor[T1]())
	require.NoError(t, err)
	assert.Equal(t, "domain.T1", c.Name())
	assert.Equal(t, reflect.TypeFor[T1](), c.InstanceType())

	got, ok := reg.Class("domain.T1")
	require.True(t, ok)
	assert.Same(t, c, got)

	// Pointers unwrap to the class struct.
	got, ok = reg.ClassOf(reflect.TypeFor[**T1]())
	require.True(t, ok)
	assert.Same(t, c, got)

	_, ok = reg.ClassOf(reflect.TypeFor[[]T1]())
	assert.False(t, ok, "only pointers are unwrapped")

	assert.Equal(t, 1, reg.Count())
}

func TestCreate_Conflicts(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	_, err := reg.Create("domain.T1", reflect.TypeFor[T1]())
	require.NoError(t, err)

	_, err = reg.Create("domain.T1", reflect.TypeFor[T2]())
	assert.ErrorIs(t, err, apis.ErrDuplicateClass)

	_, err = reg.Create("other.Name", reflect.TypeFor[T1]())
	assert.ErrorIs(t, err, apis.ErrDuplicateClass)

	assert.Equal(t, 1, reg.Count())
}

func TestCreate_Errors(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	_, err := reg.Create("x", nil)
	assert.ErrorIs(t, err, apis.ErrNilType)
	_, err = reg.Create("", reflect.TypeFor[T1]())
	assert.ErrorIs(t, err, apis.ErrEmptyName)
	_, err = reg.Create("x", reflect.TypeFor[*T1]())
	assert.ErrorIs(t, err, apis.ErrNotStruct)
	assert.ErrorIs(t, reg.Adopt(nil), apis.ErrNilType)
	assert.Equal(t, 0, reg.Count())
}

func TestAdopt_KeepsDescriptor(t *testing.T) {
	cfg := config.DefaultConfig()
	src := registry.New(cfg)
	c, err := src.Create("T1", reflect.TypeFor[T1]())
	require.NoError(t, err)
	h, err := c.AddInstance(&T1{})
	require.NoError(t, err)

	dst := registry.New(cfg)
	require.NoError(t, dst.Adopt(c))

	got, ok := dst.Class("T1")
	require.True(t, ok)
	assert.Same(t, c, got)
	assert.Equal(t, []apis.Handle{h}, got.Instances())
}

func TestClassOf_MaxUnwrapLimit(t *testing.T) {
	reg := registry.New(config.NewConfig(config.WithMaxUnwrap(1)))
	_, err := reg.Create("T1", reflect.TypeFor[T1]())
	require.NoError(t, err)

	_, ok := reg.ClassOf(reflect.TypeFor[*T1]())
	assert.True(t, ok)
	_, ok = reg.ClassOf(reflect.TypeFor[**T1]())
	assert.False(t, ok)
}

func TestClassesAndReset(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	for _, tc := range []struct {
		name string
		typ  reflect.Type
	}{
		{"T2", reflect.TypeFor[T2]()},
		{"T0", reflect.TypeFor[T0]()},
		{"T1", reflect.TypeFor[T1]()},
	} {
		_, err := reg.Create(tc.name, tc.typ)
		require.NoError(t, err)
	}

	var names []string
	for _, c := range reg.Classes() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"T2", "T0", "T1"}, names, "creation order")

	reg.Reset()
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.Classes())
	_, ok := reg.Class("T1")
	assert.False(t, ok)
	_, ok = reg.ClassOf(reflect.TypeFor[T1]())
	assert.False(t, ok)
}

func TestLookupNilAndUnknown(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	_, ok := reg.ClassOf(nil)
	assert.False(t, ok)
	_, ok = reg.ClassOf(reflect.TypeFor[struct{ x int }]())
	assert.False(t, ok)
	_, ok = reg.Class("nope")
	assert.False(t, ok)
}

func TestCreate_InheritsArenaSettings(t *testing.T) {
	reg := registry.New(config.NewConfig(config.WithRecycleSlots(false)))
	c, err := reg.Create("T1", reflect.TypeFor[T1]())
	require.NoError(t, err)
	require.IsType(t, &class.Descriptor{}, c)

	h1, err := c.AddInstance(&T1{})
	require.NoError(t, err)
	require.NoError(t, c.Release(h1))
	h2, err := c.AddInstance(&T1{})
	require.NoError(t, err)
	assert.NotEqual(t, h1.Index, h2.Index)
}
