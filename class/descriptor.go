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

package class

import (
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/rflct/apis"
	"dirpx.dev/rflct/arena"
)

// Descriptor is the apis.Class implementation. It owns the ordered field
// list and the arena of registered instances. All methods are safe for
// concurrent use.
type Descriptor struct {
	name string
	typ  reflect.Type
	ptr  reflect.Type
	weak bool

	mu        sync.RWMutex
	fields    []apis.Field
	instances *arena.Arena
	weakRef   func(any) arena.Ref
}

var _ apis.Class = (*Descriptor)(nil)

// NewDescriptor creates an empty class descriptor bound to the struct type t.
func NewDescriptor(name string, t reflect.Type, cfg apis.Config) (*Descriptor, error) {
	if name == "" {
		return nil, apis.ErrEmptyName
	}
	if t == nil {
		return nil, apis.ErrNilType
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is %s", apis.ErrNotStruct, name, t)
	}
	return &Descriptor{
		name:      name,
		typ:       t,
		ptr:       reflect.PointerTo(t),
		weak:      cfg.WeakInstances,
		instances: arena.New(cfg.ArenaCapacity, cfg.RecycleSlots),
	}, nil
}

func (c *Descriptor) Name() string               { return c.name }
func (c *Descriptor) InstanceType() reflect.Type { return c.typ }

// AddField appends f without a uniqueness check.
func (c *Descriptor) AddField(f apis.Field) error {
	if f == nil {
		return apis.ErrNilField
	}
	if f.Owner() != c.name {
		return fmt.Errorf("%w: %s.%s added to %s", apis.ErrForeignField, f.Owner(), f.Name(), c.name)
	}
	c.mu.Lock()
	c.fields = append(c.fields, f)
	c.mu.Unlock()
	return nil
}

// Fields returns a copy of the fields in declaration order.
func (c *Descriptor) Fields() []apis.Field {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]apis.Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Field returns the first field named name.
func (c *Descriptor) Field(name string) (apis.Field, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, f := range c.fields {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// Len returns the number of fields.
func (c *Descriptor) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.fields)
}

// AddInstance registers instance, which must be a non-nil pointer to the
// class struct type. With WeakInstances set the instance is held weakly
// once a Declaration has been bound to the descriptor; until then it is
// held strongly.
func (c *Descriptor) AddInstance(instance any) (apis.Handle, error) {
	v := reflect.ValueOf(instance)
	if !v.IsValid() || v.Type() != c.ptr || v.IsNil() {
		return apis.Handle{}, fmt.Errorf("%w: class %s needs %s, got %T", apis.ErrWrongInstanceType, c.name, c.ptr, instance)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	ref := arena.Strong(instance)
	if c.weak && c.weakRef != nil {
		c.instances.Sweep()
		ref = c.weakRef(instance)
	}
	return c.instances.Add(ref), nil
}

// Instances returns live handles in registration order.
func (c *Descriptor) Instances() []apis.Handle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.instances.Handles()
}

// Instance returns the instance behind h.
func (c *Descriptor) Instance(h apis.Handle) (any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.instances.Get(h)
}

// Release invalidates h. Later lookups of h fail with apis.ErrStaleHandle.
func (c *Descriptor) Release(h apis.Handle) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.instances.Release(h)
}

func (c *Descriptor) setWeakRef(fn func(any) arena.Ref) {
	c.mu.Lock()
	c.weakRef = fn
	c.mu.Unlock()
}
