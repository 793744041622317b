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

import (
	"log/slog"
	"reflect"
)

// Declaration is a class declared up front: its name, its Go struct type
// and the fields it declares. Registering it is idempotent.
type Declaration interface {
	// ClassName returns the declared class name.
	ClassName() string
	// InstanceType returns the declared struct type.
	InstanceType() reflect.Type
	// Register creates the class in reg on the first call and adds every
	// declared field that is not registered yet. Later calls return the
	// same class. log may be nil.
	Register(reg Registry, cfg Config, log *slog.Logger) (Class, error)
}
