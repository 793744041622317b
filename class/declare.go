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
	"log/slog"
	"reflect"
	"sync"
	"weak"

	"dirpx.dev/rflct/apis"
	"dirpx.dev/rflct/arena"
	"dirpx.dev/rflct/field"
)

// fieldState tracks one declared field against the class it is bound to.
type fieldState uint8

const (
	unregistered fieldState = iota
	registered
)

type fieldDecl struct {
	name  string
	build func() (apis.Field, error)
	field apis.Field
	state fieldState
}

// Decl collects the field declarations of class C in source order.
// It is only valid inside the declare function passed to Define.
type Decl[C any] struct {
	class  string
	fields []*fieldDecl
	seen   map[string]struct{}
	err    error
}

// Field declares a field of C. access is an access specifier
// ("public", "protected", "private"), spelling the declared type and loc
// the member location:
//
//	class.Field(d, "private", "int", "id", func(o *Object) *int { return &o.id })
func Field[C, V any](d *Decl[C], access, spelling, name string, loc func(*C) *V) {
	declare(d, name, func() (apis.Field, error) {
		return field.New(d.class, name, access, spelling, false, loc)
	})
}

// StaticField is Field with the static flag recorded. The flag does not
// change how the field is accessed.
func StaticField[C, V any](d *Decl[C], access, spelling, name string, loc func(*C) *V) {
	declare(d, name, func() (apis.Field, error) {
		return field.New(d.class, name, access, spelling, true, loc)
	})
}

func declare[C any](d *Decl[C], name string, build func() (apis.Field, error)) {
	if d.err != nil {
		return
	}
	if name == "" {
		d.err = fmt.Errorf("%w: field of %s", apis.ErrEmptyName, d.class)
		return
	}
	if _, dup := d.seen[name]; dup {
		d.err = fmt.Errorf("%w: %s.%s", apis.ErrDuplicateField, d.class, name)
		return
	}
	d.seen[name] = struct{}{}
	d.fields = append(d.fields, &fieldDecl{name: name, build: build})
}

// Declaration is a class declared for the struct type C. It is created
// once, typically in a package-level variable, and registered during the
// bootstrap pass or lazily by its first Construct.
type Declaration[C any] struct {
	name    string
	typ     reflect.Type
	declare func(*Decl[C])

	mu    sync.Mutex
	decl  *Decl[C]
	bound apis.Class
}

var _ apis.Declaration = (*Declaration[struct{}])(nil)

// Define declares class name for struct type C. declare lists the fields
// and must not depend on any instance; it runs once, on first registration.
func Define[C any](name string, declare func(d *Decl[C])) *Declaration[C] {
	return &Declaration[C]{
		name:    name,
		typ:     reflect.TypeFor[C](),
		declare: declare,
	}
}

func (d *Declaration[C]) ClassName() string          { return d.name }
func (d *Declaration[C]) InstanceType() reflect.Type { return d.typ }

// Register creates the class in reg if it does not exist yet and adds
// every declared field that is not registered in it, in declaration order.
// Each field moves from unregistered to registered exactly once per class
// descriptor; repeated calls are no-ops returning the same class.
func (d *Declaration[C]) Register(reg apis.Registry, cfg apis.Config, log *slog.Logger) (apis.Class, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	decl, err := d.collect()
	if err != nil {
		return nil, err
	}

	c, ok := reg.Class(d.name)
	if ok {
		if c.InstanceType() != d.typ {
			return nil, fmt.Errorf("%w: %s already bound to %s", apis.ErrDuplicateClass, d.name, c.InstanceType())
		}
		if c != d.bound {
			d.bind(c, decl)
		}
	}

	// Every pending field is built and checked before the registry is
	// touched, so a failing declaration leaves no partial class behind.
	var (
		pending []*fieldDecl
		built   []apis.Field
	)
	for _, fd := range decl.fields {
		if ok && fd.state == registered {
			continue
		}
		f, err := fd.build()
		if err != nil {
			return nil, err
		}
		if err := field.Consistent(f); err != nil {
			if cfg.StrictSpelling {
				return nil, err
			}
			log.Warn("field spelling disagrees with storage type",
				slog.String("class", d.name), slog.String("field", fd.name), slog.Any("error", err))
		}
		pending = append(pending, fd)
		built = append(built, f)
	}

	if !ok {
		if c, err = reg.Create(d.name, d.typ); err != nil {
			return nil, err
		}
		log.Debug("class registered", slog.String("class", d.name), slog.String("type", d.typ.String()))
		d.bind(c, decl)
	}

	for i, fd := range pending {
		f := built[i]
		if err := c.AddField(f); err != nil {
			return nil, err
		}
		fd.field, fd.state = f, registered
		log.Debug("field registered",
			slog.String("class", d.name),
			slog.String("field", f.Name()),
			slog.String("type", f.Type().String()),
			slog.String("access", f.Access().String()))
	}
	return c, nil
}

// Construct registers obj as an instance of the class, registering the
// declaration first if nothing has done so yet.
func (d *Declaration[C]) Construct(reg apis.Registry, cfg apis.Config, log *slog.Logger, obj *C) (apis.Handle, error) {
	c, err := d.Register(reg, cfg, log)
	if err != nil {
		return apis.Handle{}, err
	}
	return c.AddInstance(obj)
}

// collect runs the declare function once.
func (d *Declaration[C]) collect() (*Decl[C], error) {
	if d.decl == nil {
		if d.name == "" {
			return nil, apis.ErrEmptyName
		}
		decl := &Decl[C]{class: d.name, seen: make(map[string]struct{})}
		if d.declare != nil {
			d.declare(decl)
		}
		d.decl = decl
	}
	return d.decl, d.decl.err
}

// bind points the field states at c. Fields c already carries (a migrated
// or externally created descriptor) count as registered.
func (d *Declaration[C]) bind(c apis.Class, decl *Decl[C]) {
	for _, fd := range decl.fields {
		if f, ok := c.Field(fd.name); ok {
			fd.field, fd.state = f, registered
		} else {
			fd.field, fd.state = nil, unregistered
		}
	}
	if desc, ok := c.(*Descriptor); ok {
		desc.setWeakRef(weakRef[C])
	}
	d.bound = c
}

func weakRef[C any](v any) arena.Ref {
	wp := weak.Make(v.(*C))
	return func() (any, bool) {
		p := wp.Value()
		if p == nil {
			return nil, false
		}
		return p, true
	}
}
