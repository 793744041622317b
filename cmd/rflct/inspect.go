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
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"dirpx.dev/rflct/apis"
)

type inspectOptions struct {
	class  string
	values bool
	dump   bool
}

func newInspectCmd() *cobra.Command {
	var opts inspectOptions
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List classes, their fields and registered instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			return s.inspect(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.class, "class", "", "only show the named class")
	cmd.Flags().BoolVar(&opts.values, "values", false, "print the field values of every instance")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "dump instances with go-spew")
	return cmd
}

func (s *session) inspect(out io.Writer, opts inspectOptions) error {
	classes := s.svc.Registry().Classes()
	if opts.class != "" {
		c, ok := s.svc.Class(opts.class)
		if !ok {
			return fmt.Errorf("%w: %s", apis.ErrUnknownClass, opts.class)
		}
		classes = []apis.Class{c}
	}

	title := s.paint(color.FgCyan, color.Bold)
	dim := s.paint(color.Faint)
	for i, c := range classes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		handles := c.Instances()
		fmt.Fprintf(out, "%s %s\n", title.Sprint("class "+c.Name()),
			dim.Sprintf("(%s, %d fields, %d instances)", c.InstanceType(), c.Len(), len(handles)))
		if d, ok := reflect.New(c.InstanceType()).Interface().(apis.ClassDescriber); ok {
			fmt.Fprintf(out, "  %s\n", d.ClassDescription())
		}

		rows := [][]string{{"FIELD", "ACCESS", "TYPE", "STATIC"}}
		for _, f := range c.Fields() {
			static := ""
			if f.IsStatic() {
				static = "static"
			}
			rows = append(rows, []string{f.Name(), f.Access().String(), f.Type().String(), static})
		}
		s.table(out, rows)

		if opts.values && len(handles) > 0 {
			if err := s.values(out, c, handles); err != nil {
				return err
			}
		}
		if opts.dump {
			cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
			for _, h := range handles {
				inst, err := c.Instance(h)
				if err != nil {
					continue
				}
				fmt.Fprintf(out, "%s ", dim.Sprint(h.String()))
				cfg.Fdump(out, inst)
			}
		}
	}
	return nil
}

// values prints one row per live instance, in registration order.
func (s *session) values(out io.Writer, c apis.Class, handles []apis.Handle) error {
	header := []string{"#", "HANDLE"}
	fields := c.Fields()
	for _, f := range fields {
		header = append(header, strings.ToUpper(f.Name()))
	}
	rows := [][]string{header}
	for i, h := range handles {
		inst, err := c.Instance(h)
		if err != nil {
			continue
		}
		row := []string{fmt.Sprint(i + 1), h.String()}
		for _, f := range fields {
			v, err := f.Load(inst)
			if err != nil {
				return fmt.Errorf("load %s.%s: %w", c.Name(), f.Name(), err)
			}
			row = append(row, v.String())
		}
		rows = append(rows, row)
	}
	fmt.Fprintln(out)
	s.table(out, rows)
	return nil
}

// table writes rows with columns padded to their display width. The
// first row is the header.
func (s *session) table(out io.Writer, rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	head := s.paint(color.Bold)
	for r, row := range rows {
		var b strings.Builder
		b.WriteString("  ")
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == len(row)-1 {
				b.WriteString(cell)
			} else {
				b.WriteString(runewidth.FillRight(cell, widths[i]))
			}
		}
		line := strings.TrimRight(b.String(), " ")
		if r == 0 {
			line = head.Sprint(line)
		}
		fmt.Fprintln(out, line)
	}
}
