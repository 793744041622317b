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

package apis

import "reflect"

// Registry is the collection of all class descriptors.
// Implementations are append-only apart from Reset and safe for concurrent use.
type Registry interface {
	// Create builds a class descriptor for name bound to the struct type t,
	// appends it and returns it.
	Create(name string, t reflect.Type) (Class, error)
	// Adopt appends an existing descriptor. Builders use it to migrate
	// classes into a rebuilt registry.
	Adopt(c Class) error
	// Classes returns all classes in creation order.
	Classes() []Class
	// Class returns the class named name.
	Class(name string) (Class, bool)
	// ClassOf returns the class bound to t, after normalizing t.
	ClassOf(t reflect.Type) (Class, bool)
	// Count returns the number of classes.
	Count() int
	// Reset drops every class.
	Reset()
}
