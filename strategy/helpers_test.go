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

	"github.com/stretchr/testify/require"

	"dirpx.dev/rflct/apis"
	"dirpx.dev/rflct/config"
	"dirpx.dev/rflct/registry"
)

type Widget struct{ id int }
type Gadget struct{ id int }

// Named reports its class by name.
type Named struct{ class string }

func (n *Named) ClassName() string { return n.class }

// newRegistry creates a registry holding one class per name/type pair.
func newRegistry(t *testing.T, pairs ...any) apis.Registry {
	t.Helper()
	reg := registry.New(config.DefaultConfig())
	for i := 0; i < len(pairs); i += 2 {
		_, err := reg.Create(pairs[i].(string), pairs[i+1].(reflect.Type))
		require.NoError(t, err)
	}
	return reg
}
