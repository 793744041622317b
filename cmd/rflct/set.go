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

package main

import (
	"fmt"
	"io"
	"reflect"
	"strconv"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dirpx.dev/rflct/apis"
)

type setOptions struct {
	class    string
	instance int
	field    string
	value    string
}

func newSetCmd() *cobra.Command {
	var opts setOptions
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Write a field of a registered instance by name",
		Example: `  rflct set --class Object --instance 1 --field id --value 7
  rflct set --class Sensor --instance 2 --field level --value -12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			return s.set(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.class, "class", "", "class name")
	cmd.Flags().IntVar(&opts.instance, "instance", 1, "instance position, starting at 1, in registration order")
	cmd.Flags().StringVar(&opts.field, "field", "", "field name")
	cmd.Flags().StringVar(&opts.value, "value", "", "new value, parsed according to the field type")
	_ = cmd.MarkFlagRequired("class")
	_ = cmd.MarkFlagRequired("field")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func (s *session) set(out io.Writer, opts setOptions) error {
	c, ok := s.svc.Class(opts.class)
	if !ok {
		return fmt.Errorf("%w: %s", apis.ErrUnknownClass, opts.class)
	}
	f, ok := c.Field(opts.field)
	if !ok {
		return fmt.Errorf("class %s has no field %q", c.Name(), opts.field)
	}
	handles := c.Instances()
	if opts.instance < 1 || opts.instance > len(handles) {
		return fmt.Errorf("instance %d out of range (class %s has %d)", opts.instance, c.Name(), len(handles))
	}
	inst, err := c.Instance(handles[opts.instance-1])
	if err != nil {
		return err
	}

	v, err := parseValue(f, opts.value)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", c.Name(), f.Name(), err)
	}
	before, err := f.Load(inst)
	if err != nil {
		return err
	}
	if err := f.Store(inst, v); err != nil {
		return err
	}
	after, err := f.Load(inst)
	if err != nil {
		return err
	}

	name := s.paint(color.FgCyan, color.Bold)
	fmt.Fprintf(out, "%s[%d] (%s)\n", name.Sprintf("%s.%s", c.Name(), f.Name()), opts.instance, f.Type())
	fmt.Fprintf(out, "  before: %s\n", s.paint(color.FgRed).Sprint(before))
	fmt.Fprintf(out, "  after:  %s\n", s.paint(color.FgGreen).Sprint(after))
	return nil
}

// parseValue parses raw into a Value tagged with the identity of f and
// holding exactly the storage type of f. Integers that do not fit the
// storage type are rejected.
func parseValue(f apis.Field, raw string) (apis.Value, error) {
	st := f.StorageType()
	var v any
	switch st.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return apis.Value{}, err
		}
		v = b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Uint8:
		n, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return apis.Value{}, err
		}
		if v, err = narrow(st.Kind(), n); err != nil {
			return apis.Value{}, err
		}
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(raw, st.Bits())
		if err != nil {
			return apis.Value{}, err
		}
		v = x
	case reflect.String:
		v = raw
	default:
		return apis.Value{}, fmt.Errorf("cannot parse values of type %s", st)
	}
	return apis.NewValue(f.Type(), reflect.ValueOf(v).Convert(st).Interface()), nil
}

// narrow converts n to the integer kind k, failing when it does not fit.
func narrow(k reflect.Kind, n int64) (any, error) {
	switch k {
	case reflect.Int8:
		return safecast.Conv[int8](n)
	case reflect.Uint8:
		return safecast.Conv[uint8](n)
	case reflect.Int16:
		return safecast.Conv[int16](n)
	case reflect.Int32:
		return safecast.Conv[int32](n)
	case reflect.Int:
		return safecast.Conv[int](n)
	default:
		return n, nil
	}
}
