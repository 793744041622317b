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

package builder_test

import (
	"reflect"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"dirpx.dev/rflct/apis"
	"dirpx.dev/rflct/builder"
	"dirpx.dev/rflct/config"
	"dirpx.dev/rflct/registry"
)

// userType is a plain named type with no special behavior.
type userType struct{ n int }

// hotType implements apis.ClassNamer and is used to verify that the
// namer strategy takes priority over other strategies.
type hotType struct{ n int }

func (hotType) ClassName() string { return "hot" }

// TestBuildRegistry_Basic asserts that BuildRegistry returns a working,
// empty Registry when there is nothing to migrate.
func TestBuildRegistry_Basic(t *testing.T) {
	reg := builder.New().BuildRegistry(config.DefaultConfig(), nil, nil)
	require.NotNil(t, reg)
	assert.Equal(t, 0, reg.Count())

	_, err := reg.Create("userType", reflect.TypeFor[userType]())
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Count())
}

// TestBuildRegistry_MigratesClasses asserts that descriptors, their
// fields, and their instances survive a rebuild in creation order.
func TestBuildRegistry_MigratesClasses(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	prev := b.BuildRegistry(cfg, nil, nil)

	u, err := prev.Create("user", reflect.TypeFor[userType]())
	require.NoError(t, err)
	h, err := prev.Create("hot", reflect.TypeFor[hotType]())
	require.NoError(t, err)
	uh, err := u.AddInstance(&userType{n: 1})
	require.NoError(t, err)

	next := b.BuildRegistry(config.NewConfig(config.WithMaxUnwrap(1)), prev, nil)
	require.Equal(t, 2, next.Count())

	classes := next.Classes()
	assert.Same(t, u, classes[0])
	assert.Same(t, h, classes[1])
	assert.Equal(t, []apis.Handle{uh}, classes[0].Instances())

	// The new registry normalizes with the new configuration.
	_, ok := next.ClassOf(reflect.TypeFor[**userType]())
	assert.False(t, ok)
	_, ok = prev.ClassOf(reflect.TypeFor[**userType]())
	assert.True(t, ok)
}

// TestBuildResolver_Order verifies resolution priority: the namer first,
// then the type index, then the name derived from the Go type when the
// class is bound to that type.
func TestBuildResolver_Order(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	reg := b.BuildRegistry(cfg, nil, nil)

	type fromRegistry struct{}
	_, err := reg.Create("hot", reflect.TypeFor[fromRegistry]())
	require.NoError(t, err)
	_, err = reg.Create("by-type", reflect.TypeFor[hotType]())
	require.NoError(t, err)
	_, err = reg.Create("builder_test.userType", reflect.TypeFor[struct{ x int }]())
	require.NoError(t, err)

	res := b.BuildResolver(cfg, reg, nil, nil)
	require.NotNil(t, res)

	// (1) The namer wins over the type index.
	c, ok := res.Resolve(hotType{}, cfg)
	require.True(t, ok)
	assert.Equal(t, "hot", c.Name())

	// (2) Without an instance, the type index is next.
	c, ok = res.ResolveType(reflect.TypeFor[hotType](), cfg)
	require.True(t, ok)
	assert.Equal(t, "by-type", c.Name())

	// (3) A class spelled like the Go type but bound to another struct is
	// not a match.
	_, ok = res.Resolve(&userType{}, cfg)
	assert.False(t, ok)

	// (4) The qualified Go type name is the fallback for a registry whose
	// type index misses.
	plain := registry.New(cfg)
	_, err = plain.Create("builder_test.userType", reflect.TypeFor[userType]())
	require.NoError(t, err)
	res = b.BuildResolver(cfg, indexless{plain}, nil, nil)
	c, ok = res.Resolve(&userType{}, cfg)
	require.True(t, ok)
	assert.Equal(t, "builder_test.userType", c.Name())
}

// indexless is a registry without a type index.
type indexless struct{ apis.Registry }

func (indexless) ClassOf(reflect.Type) (apis.Class, bool) { return nil, false }

// TestBuildResolver_WithExternalRegistry asserts that BuildResolver
// accepts any apis.Registry implementation.
func TestBuildResolver_WithExternalRegistry(t *testing.T) {
	r := registry.New(config.DefaultConfig())
	_, err := r.Create("u", reflect.TypeFor[userType]())
	require.NoError(t, err)

	res := builder.New().BuildResolver(config.DefaultConfig(), r, nil, nil)
	c, ok := res.ResolveType(reflect.TypeFor[*userType](), config.DefaultConfig())
	require.True(t, ok)
	assert.Equal(t, "u", c.Name())

	_, ok = res.ResolveType(reflect.TypeFor[[]userType](), config.DefaultConfig())
	assert.False(t, ok)
}

// TestBuildResolver_Concurrency_Smoke hammers the resolver in parallel.
func TestBuildResolver_Concurrency_Smoke(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	reg := b.BuildRegistry(cfg, nil, nil)
	_, err := reg.Create("userType", reflect.TypeFor[userType]())
	require.NoError(t, err)
	_, err = reg.Create("hot", reflect.TypeFor[hotType]())
	require.NoError(t, err)
	res := b.BuildResolver(cfg, reg, nil, nil)

	types := []reflect.Type{
		reflect.TypeFor[userType](),
		reflect.TypeFor[hotType](),
		reflect.TypeFor[*userType](),
	}

	var g errgroup.Group
	for w := 0; w < runtime.GOMAXPROCS(0)*4; w++ {
		g.Go(func() error {
			for i := 0; i < 2000; i++ {
				if _, ok := res.ResolveType(types[(i+w)%len(types)], cfg); !ok {
					return apis.ErrUnknownClass
				}
				if c, ok := res.Resolve(hotType{}, cfg); !ok || c.Name() != "hot" {
					return apis.ErrUnknownClass
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// Compile-time check: builder.New() must satisfy apis.Builder.
var _ apis.Builder = builder.New()
