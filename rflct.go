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

package rflct

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"dirpx.dev/rflct/apis"
	"dirpx.dev/rflct/builder"
	"dirpx.dev/rflct/class"
	"dirpx.dev/rflct/config"
)

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("rflct: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("rflct: builder returned nil resolver")
)

// Service owns one registry together with the configuration, resolver,
// builder and logger that operate on it. It is created once at bootstrap
// and passed to the code that needs to query classes.
//
// Reads load an immutable snapshot without locking. Writers serialize on
// a build mutex, assemble a new snapshot and publish it atomically.
type Service struct {
	// buildMu serializes writers (reconfigurations/swaps) so we never publish
	// partially-built snapshots.
	buildMu sync.Mutex
	// st is the current snapshot.
	st atomic.Pointer[state]
}

// state is a published snapshot.
// Never mutate fields of a published state; writers create a new one.
type state struct {
	// cfg is the configuration.
	cfg apis.Config
	// ext is the extension payload handed to the builder.
	ext any
	// reg is the class registry.
	reg apis.Registry
	// res resolves the class of instances.
	res apis.Resolver
	// bld builds reg and res.
	bld apis.Builder
	// log receives registration events.
	log *slog.Logger
	// preg indicates whether reg is pinned (not rebuilt on reconfiguration).
	preg bool
}

// Option configures New.
type Option func(*options)

type options struct {
	cfg *apis.Config
	bld apis.Builder
	reg apis.Registry
	log *slog.Logger
	ext any
}

// WithConfig sets the initial configuration.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) { o.cfg = &cfg }
}

// WithBuilder replaces the default builder.
func WithBuilder(b apis.Builder) Option {
	return func(o *options) { o.bld = b }
}

// WithRegistry installs reg as a pinned registry.
func WithRegistry(reg apis.Registry) Option {
	return func(o *options) { o.reg = reg }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithExt sets the extension payload passed to the builder.
func WithExt(ext any) Option {
	return func(o *options) { o.ext = ext }
}

// New creates a Service with an empty registry.
func New(opts ...Option) *Service {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg := config.DefaultConfig()
	if o.cfg != nil {
		cfg = *o.cfg
	}
	bld := o.bld
	if bld == nil {
		bld = builder.New()
	}
	log := o.log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	reg, preg := o.reg, o.reg != nil
	if reg == nil {
		reg = bld.BuildRegistry(cfg, nil, o.ext)
	}
	if reg == nil {
		panic(ErrNilRegistry)
	}
	res := bld.BuildResolver(cfg, reg, nil, o.ext)
	if res == nil {
		panic(ErrNilResolver)
	}

	s := &Service{}
	s.st.Store(&state{cfg: cfg, ext: o.ext, reg: reg, res: res, bld: bld, log: log, preg: preg})
	return s
}

// Bootstrap registers decls in the given order. It stops at the first
// failing declaration. Registering an already registered declaration is
// a no-op, so Bootstrap may be called again with additional classes.
func (s *Service) Bootstrap(decls ...apis.Declaration) error {
	st := s.st.Load()
	for _, d := range decls {
		if d == nil {
			continue
		}
		if _, err := d.Register(st.reg, st.cfg, st.log); err != nil {
			st.log.Error("bootstrap failed", slog.String("class", d.ClassName()), slog.Any("error", err))
			return fmt.Errorf("rflct: bootstrap %s: %w", d.ClassName(), err)
		}
	}
	st.log.Debug("bootstrap complete", slog.Int("classes", st.reg.Count()))
	return nil
}

// Construct registers obj as an instance of the class declared by d,
// registering d first when the bootstrap pass has not.
func Construct[C any](s *Service, d *class.Declaration[C], obj *C) (apis.Handle, error) {
	st := s.st.Load()
	return d.Construct(st.reg, st.cfg, st.log, obj)
}

// Track registers obj with the class the resolver finds for it. Weak
// tracking follows the class: see apis.Config.WeakInstances.
func (s *Service) Track(obj any) (apis.Handle, error) {
	c, ok := s.ClassOf(obj)
	if !ok {
		return apis.Handle{}, fmt.Errorf("%w: %T", apis.ErrUnknownClass, obj)
	}
	return c.AddInstance(obj)
}

// Class returns the class named name.
func (s *Service) Class(name string) (apis.Class, bool) {
	return s.st.Load().reg.Class(name)
}

// ClassOf resolves the class of v through the resolver chain.
func (s *Service) ClassOf(v any) (apis.Class, bool) {
	st := s.st.Load()
	return st.res.Resolve(v, st.cfg)
}

// Config returns the configuration.
func (s *Service) Config() apis.Config {
	return s.st.Load().cfg
}

// Registry returns the registry.
func (s *Service) Registry() apis.Registry {
	return s.st.Load().reg
}

// Resolver returns the resolver.
func (s *Service) Resolver() apis.Resolver {
	return s.st.Load().res
}

// Builder returns the builder.
func (s *Service) Builder() apis.Builder {
	return s.st.Load().bld
}

// Logger returns the logger.
func (s *Service) Logger() *slog.Logger {
	return s.st.Load().log
}

// ExtAs returns the extension payload of s as type T.
func ExtAs[T any](s *Service) (T, bool) {
	ext, ok := s.st.Load().ext.(T)
	return ext, ok
}

// SetConfig replaces the configuration. An unpinned registry is rebuilt
// by the builder (which migrates existing classes); the resolver is
// always rebuilt.
func (s *Service) SetConfig(cfg apis.Config) {
	s.rebuild(func(n *state) { n.cfg = cfg })
}

// SetBuilder replaces the builder and rebuilds with it.
func (s *Service) SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	s.rebuild(func(n *state) { n.bld = b })
}

// SetLogger replaces the logger.
func (s *Service) SetLogger(log *slog.Logger) {
	if log == nil {
		return
	}
	s.swap(func(n *state) { n.log = log })
}

// SetRegistry installs reg, pins it and rebuilds the resolver over it.
func (s *Service) SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	s.rebuild(func(n *state) { n.reg, n.preg = reg, true })
}

// IsRegistryPinned returns whether the registry is pinned.
func (s *Service) IsRegistryPinned() bool {
	return s.st.Load().preg
}

// PinRegistry stops reconfiguration from rebuilding the registry.
func (s *Service) PinRegistry() {
	s.swap(func(n *state) { n.preg = true })
}

// UnpinRegistry lets reconfiguration rebuild the registry again.
func (s *Service) UnpinRegistry() {
	s.swap(func(n *state) { n.preg = false })
}

// rebuild applies mutate to a copy of the snapshot, rebuilds the registry
// unless pinned, rebuilds the resolver and publishes the result.
func (s *Service) rebuild(mutate func(*state)) {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	old := s.st.Load()
	n := *old
	mutate(&n)

	if !n.preg {
		n.reg = n.bld.BuildRegistry(n.cfg, old.reg, n.ext)
	}
	if n.reg == nil {
		panic(ErrNilRegistry)
	}
	n.res = n.bld.BuildResolver(n.cfg, n.reg, old.res, n.ext)
	if n.res == nil {
		panic(ErrNilResolver)
	}
	s.st.Store(&n)
}

// swap publishes a copy of the snapshot with mutate applied.
func (s *Service) swap(mutate func(*state)) {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	n := *s.st.Load()
	mutate(&n)
	s.st.Store(&n)
}
