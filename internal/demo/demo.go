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

// Package demo declares the sample classes the rflct CLI inspects.
package demo

import (
	"fmt"

	"dirpx.dev/rflct"
	"dirpx.dev/rflct/apis"
	"dirpx.dev/rflct/class"
)

// Object is the canonical three-field sample class.
type Object struct {
	id    int
	count int
	name  string
}

func (*Object) ClassName() string        { return "Object" }
func (*Object) ClassDescription() string { return "Sample object with an id, a counter and a name." }

// NewObject returns an Object whose count mirrors id.
func NewObject(id int, name string) *Object {
	return &Object{id: id, count: id, name: name}
}

// Sensor covers the remaining primitive kinds.
type Sensor struct {
	enabled bool
	code    byte
	level   int16
	total   int64
	reading float32
	scale   float64
}

// ObjectClass declares Object.
var ObjectClass = class.Define("Object", func(d *class.Decl[Object]) {
	class.Field(d, "private", "int", "id", func(o *Object) *int { return &o.id })
	class.Field(d, "protected", "int", "count", func(o *Object) *int { return &o.count })
	class.Field(d, "public", "string", "name", func(o *Object) *string { return &o.name })
})

// SensorClass declares Sensor.
var SensorClass = class.Define("Sensor", func(d *class.Decl[Sensor]) {
	class.Field(d, "public", "bool", "enabled", func(s *Sensor) *bool { return &s.enabled })
	class.Field(d, "protected", "char", "code", func(s *Sensor) *byte { return &s.code })
	class.Field(d, "protected", "short", "level", func(s *Sensor) *int16 { return &s.level })
	class.StaticField(d, "private", "long", "total", func(s *Sensor) *int64 { return &s.total })
	class.Field(d, "public", "float", "reading", func(s *Sensor) *float32 { return &s.reading })
	class.Field(d, "public", "double", "scale", func(s *Sensor) *float64 { return &s.scale })
})

// Declarations lists the sample classes in bootstrap order.
func Declarations() []apis.Declaration {
	return []apis.Declaration{ObjectClass, SensorClass}
}

// Scene keeps the sample instances reachable while the service tracks
// them, which matters when instances are held weakly.
type Scene struct {
	Objects []*Object
	Sensors []*Sensor
}

// Populate bootstraps the sample classes into s and constructs
// Object(5), Object(10), Object(15) and two sensors.
func Populate(s *rflct.Service) (*Scene, error) {
	if err := s.Bootstrap(Declarations()...); err != nil {
		return nil, err
	}
	scene := &Scene{}
	for i, id := range []int{5, 10, 15} {
		o := NewObject(id, fmt.Sprintf("object-%c", 'a'+i))
		if _, err := rflct.Construct(s, ObjectClass, o); err != nil {
			return nil, err
		}
		scene.Objects = append(scene.Objects, o)
	}
	for _, sn := range []*Sensor{
		{enabled: true, code: 'A', level: 3, total: 1 << 40, reading: 21.5, scale: 1},
		{code: 'B', level: -2, reading: -4.25, scale: 0.5},
	} {
		if _, err := rflct.Construct(s, SensorClass, sn); err != nil {
			return nil, err
		}
		scene.Sensors = append(scene.Sensors, sn)
	}
	return scene, nil
}
