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
	"fmt"

	"dirpx.dev/rflct/apis"
	"dirpx.dev/rflct/typeid"
)

// Ref returns a pointer to the field f inside instance.
//
// T must match both the declared identity of f and its storage type;
// otherwise the error wraps apis.ErrTypeMismatch. An instance that is not
// of the owning class yields apis.ErrWrongInstanceType.
func Ref[T any](f apis.Field, instance any) (*T, error) {
	if f == nil {
		return nil, apis.ErrNilField
	}
	if want := typeid.Of[T](); !want.Equal(f.Type()) {
		return nil, fmt.Errorf("%w: %s.%s is %s, requested %s", apis.ErrTypeMismatch, f.Owner(), f.Name(), f.Type(), want)
	}
	p, err := f.Storage(instance)
	if err != nil {
		return nil, err
	}
	tp, ok := p.(*T)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s stores %s, requested %T", apis.ErrTypeMismatch, f.Owner(), f.Name(), f.StorageType(), tp)
	}
	return tp, nil
}

// Get reads the field f of instance as T.
func Get[T any](f apis.Field, instance any) (T, error) {
	p, err := Ref[T](f, instance)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set writes v into the field f of instance.
func Set[T any](f apis.Field, instance any, v T) error {
	p, err := Ref[T](f, instance)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
