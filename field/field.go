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

package field

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/rflct/apis"
	"dirpx.dev/rflct/typeid"
)

// ErrNilLocator is returned when a field is declared without a locator.
var ErrNilLocator = errors.New("rflct(field): nil field locator")

// New builds the descriptor of field name of class owner. C is the class
// struct type and V the field storage type; loc binds the member location.
// access and spelling are parsed with apis.ParseAccess and
// typeid.ParsePrimitive.
func New[C, V any](owner, name, access, spelling string, static bool, loc func(*C) *V) (apis.Field, error) {
	if owner == "" || name == "" {
		return nil, apis.ErrEmptyName
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrNilLocator, owner, name)
	}
	return &descriptor[C, V]{
		owner:   owner,
		name:    name,
		typ:     typeid.ParsePrimitive(spelling),
		access:  apis.ParseAccess(access),
		static:  static,
		storage: reflect.TypeFor[V](),
		loc:     loc,
	}, nil
}

// Auto is New with the type spelling derived from V.
func Auto[C, V any](owner, name, access string, static bool, loc func(*C) *V) (apis.Field, error) {
	return New(owner, name, access, typeid.Spelling(reflect.TypeFor[V]()), static, loc)
}

// Consistent reports whether the declared identity of f matches its Go
// storage type. It returns an ErrTypeMismatch error otherwise.
func Consistent(f apis.Field) error {
	if got := typeid.FromReflectType(f.StorageType()); !got.Equal(f.Type()) {
		return fmt.Errorf("%w: %s.%s declared as %s but stored as %s",
			apis.ErrTypeMismatch, f.Owner(), f.Name(), f.Type(), f.StorageType())
	}
	return nil
}

// descriptor is the apis.Field implementation for a field of type V in
// class struct C. It is immutable after construction.
type descriptor[C, V any] struct {
	owner   string
	name    string
	typ     apis.TypeIdentity
	access  apis.AccessLevel
	static  bool
	storage reflect.Type
	loc     func(*C) *V
}

var _ apis.Field = (*descriptor[struct{}, int])(nil)

func (d *descriptor[C, V]) Name() string              { return d.name }
func (d *descriptor[C, V]) Type() apis.TypeIdentity   { return d.typ }
func (d *descriptor[C, V]) Access() apis.AccessLevel  { return d.access }
func (d *descriptor[C, V]) IsStatic() bool            { return d.static }
func (d *descriptor[C, V]) Owner() string             { return d.owner }
func (d *descriptor[C, V]) StorageType() reflect.Type { return d.storage }

// Storage returns the *V inside instance.
func (d *descriptor[C, V]) Storage(instance any) (any, error) {
	return d.ptr(instance)
}

// Load copies the field value out of instance.
func (d *descriptor[C, V]) Load(instance any) (apis.Value, error) {
	p, err := d.ptr(instance)
	if err != nil {
		return apis.Value{}, err
	}
	return apis.NewValue(d.typ, *p), nil
}

// Store writes v into instance after checking its tag and Go type.
func (d *descriptor[C, V]) Store(instance any, v apis.Value) error {
	if !v.Type().Equal(d.typ) {
		return fmt.Errorf("%w: %s.%s is %s, value is %s", apis.ErrTypeMismatch, d.owner, d.name, d.typ, v.Type())
	}
	raw, ok := v.Interface().(V)
	// A nil payload is the zero value of an interface-typed field.
	if !ok && (v.Interface() != nil || d.storage.Kind() != reflect.Interface) {
		return fmt.Errorf("%w: %s.%s stores %s, value holds %T", apis.ErrTypeMismatch, d.owner, d.name, d.storage, v.Interface())
	}
	p, err := d.ptr(instance)
	if err != nil {
		return err
	}
	*p = raw
	return nil
}

func (d *descriptor[C, V]) ptr(instance any) (*V, error) {
	obj, ok := instance.(*C)
	if !ok || obj == nil {
		return nil, fmt.Errorf("%w: %s.%s needs *%s, got %T",
			apis.ErrWrongInstanceType, d.owner, d.name, reflect.TypeFor[C](), instance)
	}
	return d.loc(obj), nil
}
