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

import "fmt"

// Handle refers to a registered instance inside its class's arena.
// The zero Handle is never issued.
type Handle struct {
	// Index is the arena slot.
	Index uint32
	// Gen is the slot generation at registration time.
	Gen uint32
}

// IsValid reports whether h was issued by an arena. It does not report
// whether the instance is still live.
func (h Handle) IsValid() bool {
	return h.Index != 0
}

// String returns a compact "index@gen" form.
func (h Handle) String() string {
	return fmt.Sprintf("%d@%d", h.Index, h.Gen)
}
