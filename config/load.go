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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"dirpx.dev/rflct/apis"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("rflct(config): unsupported config format")

// Load reads a config file and applies it over DefaultConfig. The format
// is picked from the extension: .yaml/.yml or .toml. Keys absent from
// the file keep their defaults. opts are applied after the file.
func Load(path string, opts ...Option) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("rflct(config): %w", err)
	}
	cfg, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return apis.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return sanitize(cfg), nil
}

// Decode parses data in the format named by ext (with or without the
// leading dot) over DefaultConfig. Unknown keys and an invalid log_level
// are errors in both formats.
func Decode(data []byte, ext string) (apis.Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return apis.Config{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "toml":
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return apis.Config{}, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undec := meta.Undecoded(); len(undec) > 0 {
			return apis.Config{}, fmt.Errorf("unknown TOML key %q", undec[0].String())
		}
	default:
		return apis.Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return apis.Config{}, err
	}
	return sanitize(cfg), nil
}
