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

package arena

import (
	"fmt"
	"math"

	"fortio.org/safecast"

	"dirpx.dev/rflct/apis"
)

// Ref yields the instance held by a slot. It returns false once the
// instance is gone (weak references collected by the GC).
type Ref func() (any, bool)

// Strong returns a Ref that keeps v alive.
func Strong(v any) Ref {
	return func() (any, bool) { return v, true }
}

type slot struct {
	gen  uint32
	ref  Ref
	live bool
}

// Arena stores instance references in slots addressed by generational
// handles. A released slot bumps its generation, so every handle issued
// for the previous occupant turns stale instead of dangling.
//
// Arena is not safe for concurrent use; the owning class serializes access.
type Arena struct {
	slots   []slot // index 0 reserved so the zero Handle is never valid
	free    []uint32
	order   []apis.Handle
	recycle bool
	live    int
}

// New creates an arena with an optional capacity hint. When recycle is
// true released slots are reused.
func New(capacity int, recycle bool) *Arena {
	if capacity <= 0 {
		capacity = 16
	}
	return &Arena{
		slots:   make([]slot, 1, capacity+1),
		recycle: recycle,
	}
}

// Add stores ref and returns its handle.
func (a *Arena) Add(ref Ref) apis.Handle {
	var h apis.Handle
	if n := len(a.free); a.recycle && n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.ref, s.live = ref, true
		h = apis.Handle{Index: idx, Gen: s.gen}
	} else {
		idx, err := safecast.Conv[uint32](len(a.slots))
		if err != nil {
			panic(fmt.Errorf("instance arena overflow: %w", err))
		}
		a.slots = append(a.slots, slot{gen: 1, ref: ref, live: true})
		h = apis.Handle{Index: idx, Gen: 1}
	}
	a.order = append(a.order, h)
	a.live++
	return h
}

// Get returns the instance behind h.
func (a *Arena) Get(h apis.Handle) (any, error) {
	s := a.lookup(h)
	if s == nil {
		return nil, fmt.Errorf("%w: %s", apis.ErrStaleHandle, h)
	}
	v, ok := s.ref()
	if !ok {
		return nil, fmt.Errorf("%w: %s collected", apis.ErrStaleHandle, h)
	}
	return v, nil
}

// Release invalidates h and frees its slot.
func (a *Arena) Release(h apis.Handle) error {
	s := a.lookup(h)
	if s == nil {
		return fmt.Errorf("%w: %s", apis.ErrStaleHandle, h)
	}
	a.drop(h.Index, s)
	a.compact()
	return nil
}

// Sweep releases every slot whose reference has been collected and
// returns how many were released.
func (a *Arena) Sweep() int {
	n := 0
	for _, h := range a.order {
		s := a.lookup(h)
		if s == nil {
			continue
		}
		if _, ok := s.ref(); !ok {
			a.drop(h.Index, s)
			n++
		}
	}
	if n > 0 {
		a.compact()
	}
	return n
}

// Handles returns the handles of live instances in registration order.
func (a *Arena) Handles() []apis.Handle {
	out := make([]apis.Handle, 0, a.live)
	for _, h := range a.order {
		s := a.lookup(h)
		if s == nil {
			continue
		}
		if _, ok := s.ref(); ok {
			out = append(out, h)
		}
	}
	return out
}

// Len returns the number of occupied slots, including collected weak
// references not yet swept.
func (a *Arena) Len() int { return a.live }

func (a *Arena) lookup(h apis.Handle) *slot {
	if !h.IsValid() || int(h.Index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.Index]
	if !s.live || s.gen != h.Gen {
		return nil
	}
	return s
}

func (a *Arena) drop(idx uint32, s *slot) {
	s.ref, s.live = nil, false
	a.live--
	// A slot whose generation would wrap is retired for good.
	if s.gen == math.MaxUint32 {
		return
	}
	s.gen++
	if a.recycle {
		a.free = append(a.free, idx)
	}
}

// compact drops dead handles from the registration order.
func (a *Arena) compact() {
	kept := a.order[:0]
	for _, h := range a.order {
		if a.lookup(h) != nil {
			kept = append(kept, h)
		}
	}
	clear(a.order[len(kept):])
	a.order = kept
}
