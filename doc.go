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

// Package rflct provides a declared-up-front reflection registry: classes
// list their fields once, instances register themselves on construction,
// and any code holding the registry can enumerate fields and read or write
// them by name.
//
// # Design
//
// A class is a Go struct type plus a declaration that names it and lists
// its fields in source order. Each field declaration carries:
//
//   - the field name, unique within the class,
//   - an access specifier ("public", "protected", "private"), parsed into
//     apis.AccessLevel with apis.AccessUnknown for anything else,
//   - a type spelling, parsed into apis.TypeIdentity: a primitive kind for
//     the closed vocabulary (int, long, double, ...) or a nominal identity
//     keyed by the spelling,
//   - a locator, func(*C) *V, that binds the member location.
//
// Declarations are plain values:
//
//	var objectClass = class.Define[Object]("Object", func(d *class.Decl[Object]) {
//	    class.Field(d, "private", "int", "id", func(o *Object) *int { return &o.id })
//	    class.Field(d, "protected", "int", "count", func(o *Object) *int { return &o.count })
//	    class.Field(d, "public", "string", "name", func(o *Object) *string { return &o.name })
//	})
//
// # Registration
//
// A Service owns the registry. The process registers every declaration
// once, in an explicit order, before constructing instances:
//
//	svc := rflct.New(rflct.WithConfig(cfg), rflct.WithLogger(log))
//	if err := svc.Bootstrap(objectClass, otherClass); err != nil {
//	    return err
//	}
//
// Registering a declaration creates its class descriptor exactly once and
// moves every declared field from unregistered to registered exactly once,
// in declaration order. A declaration that the bootstrap pass missed is
// registered by its first Construct instead; the registration is guarded
// by a mutex so concurrent first constructions cannot duplicate or lose
// fields.
//
// Every construction registers the instance:
//
//	a := &Object{id: 5}
//	h, err := rflct.Construct(svc, objectClass, a)
//
// Instances live in a per-class arena and are addressed by generational
// handles. Releasing a handle, or the GC collecting the instance when
// WeakInstances is set, makes the handle stale; later lookups fail with
// apis.ErrStaleHandle instead of reaching a dead object.
//
// # Field access
//
// Access is checked on every call:
//
//	f, _ := svc.Class("Object")
//	id, _ := f.Field("id")
//	v, err := field.Get[int](id, a)   // 5
//	err = field.Set(id, a, 7)         // a.id == 7
//
// Requesting a type that does not match the declared identity or the
// storage type fails with apis.ErrTypeMismatch. Passing an instance of
// another class fails with apis.ErrWrongInstanceType. Code that does not
// know the static type uses Field.Load and Field.Store with the tagged
// apis.Value.
//
// # Class resolution
//
// Service.Track and Service.ClassOf find the class of an arbitrary value
// through a resolver chain, in priority order:
//
//  1. If the value implements apis.ClassNamer, use the class it names.
//  2. Otherwise, look the normalized Go type up in the registry.
//  3. Otherwise, look up a class named after the Go type ("pkg.Type",
//     then "Type") and accept it only if it is bound to that type.
//
// # Concurrency model
//
// Reads of the service snapshot are lock-free. The registry and every
// class descriptor are safe for concurrent use. Field values are not
// guarded: callers serialize concurrent writes to the same field of the
// same instance.
//
// Reconfiguration (SetConfig, SetBuilder, SetRegistry) takes a build
// mutex, rebuilds the non-pinned layers and publishes a new snapshot.
// The default builder migrates class descriptors into the rebuilt
// registry, so fields and registered instances survive; descriptors keep
// the arena settings they were created with. A class first registered by
// a Construct that races a rebuild can land in the registry being
// replaced, so bootstrap every declaration before reconfiguring
// concurrently.
package rflct
