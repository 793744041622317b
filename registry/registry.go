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

package registry

import (
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/rflct/apis"
	"dirpx.dev/rflct/class"
	"dirpx.dev/rflct/config"
	uref "dirpx.dev/rflct/utils/reflect"
)

// New constructs an empty Registry. Classes it creates inherit the
// arena settings of cfg; MaxUnwrap drives ClassOf normalization.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{
		cfg:    cfg,
		byName: make(map[string]apis.Class),
		byType: make(map[reflect.Type]apis.Class),
	}
}

// registry is an append-only, mutex-guarded class list with name and
// type indexes.
type registry struct {
	// cfg is the configuration used for new descriptors and normalization.
	cfg apis.Config
	// mu guards every field below.
	mu sync.RWMutex
	// classes keeps creation order.
	classes []apis.Class
	byName  map[string]apis.Class
	byType  map[reflect.Type]apis.Class
}

// Create builds, appends and returns a new class descriptor.
func (r *registry) Create(name string, t reflect.Type) (apis.Class, error) {
	// Validate inputs early, before taking the lock.
	c, err := class.NewDescriptor(name, t, r.cfg)
	if err != nil {
		return nil, err
	}
	if err := r.Adopt(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Adopt appends an existing class. Names and struct types must be unique.
func (r *registry) Adopt(c apis.Class) error {
	if c == nil {
		return apis.ErrNilType
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[c.Name()]; ok {
		return fmt.Errorf("%w: %s", apis.ErrDuplicateClass, c.Name())
	}
	if prev, ok := r.byType[c.InstanceType()]; ok {
		return fmt.Errorf("%w: %s already bound to %s as %s", apis.ErrDuplicateClass, c.Name(), c.InstanceType(), prev.Name())
	}
	r.classes = append(r.classes, c)
	r.byName[c.Name()] = c
	r.byType[c.InstanceType()] = c
	return nil
}

// Classes returns a snapshot in creation order.
func (r *registry) Classes() []apis.Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]apis.Class, len(r.classes))
	copy(out, r.classes)
	return out
}

// Class returns the class named name.
func (r *registry) Class(name string) (apis.Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[name]
	return c, ok
}

// ClassOf returns the class bound to the nearest named struct behind t.
func (r *registry) ClassOf(t reflect.Type) (apis.Class, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byType[nt]
	return c, ok
}

// Count returns the number of classes.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes)
}

// Reset drops every class.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes = nil
	r.byName = make(map[string]apis.Class)
	r.byType = make(map[reflect.Type]apis.Class)
}
