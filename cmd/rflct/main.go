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
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dirpx.dev/rflct"
	"dirpx.dev/rflct/apis"
	"dirpx.dev/rflct/config"
	"dirpx.dev/rflct/internal/demo"
	"dirpx.dev/rflct/internal/version"
)

// newRootCmd assembles the command tree. Each invocation gets a fresh
// tree so flag state never leaks between runs.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rflct",
		Short:         "Inspect and edit the demo reflection registry",
		Long:          `rflct builds the sample class registry and lets you list classes, fields and instance values, or write a field by name.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("log-level", "", "override the configured log level (debug|info|warn|error)")

	root.AddCommand(newInspectCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the command output.
func useColor(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := cmd.OutOrStdout().(*os.File)
		return ok && isTerminal(f), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", mode)
	}
}

// loadConfig reads --config when given and applies --log-level.
func loadConfig(cmd *cobra.Command) (apis.Config, error) {
	flags := cmd.Root().PersistentFlags()
	path, err := flags.GetString("config")
	if err != nil {
		return apis.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	level, err := flags.GetString("log-level")
	if err != nil {
		return apis.Config{}, fmt.Errorf("failed to get log-level flag: %w", err)
	}

	var opts []config.Option
	if level != "" {
		if _, err := config.ParseLevel(level); err != nil {
			return apis.Config{}, err
		}
		opts = append(opts, config.WithLogLevel(level))
	}
	if path == "" {
		return config.NewConfig(opts...), nil
	}
	return config.Load(path, opts...)
}

// session is a populated demo service for one command run.
type session struct {
	svc   *rflct.Service
	scene *demo.Scene
	color bool
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	colorize, err := useColor(cmd)
	if err != nil {
		return nil, err
	}
	var logOut io.Writer = cmd.ErrOrStderr()
	svc := rflct.New(rflct.WithConfig(cfg), rflct.WithLogger(config.Logger(cfg, logOut)))
	scene, err := demo.Populate(svc)
	if err != nil {
		return nil, fmt.Errorf("failed to build demo registry: %w", err)
	}
	return &session{svc: svc, scene: scene, color: colorize}, nil
}

// paint returns a color that is disabled unless the session colorizes.
func (s *session) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if s.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
