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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/rflct/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "rflct.yaml", `
strict_spelling: false
weak_instances: true
arena_capacity: 128
log_level: debug
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.False(t, cfg.StrictSpelling)
	assert.True(t, cfg.WeakInstances)
	assert.Equal(t, 128, cfg.ArenaCapacity)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Absent keys keep their defaults.
	assert.Equal(t, config.DefaultMaxUnwrap, cfg.MaxUnwrap)
	assert.True(t, cfg.RecycleSlots)
}

func TestLoad_TOML(t *testing.T) {
	p := writeFile(t, "rflct.toml", `
max_unwrap = 2
recycle_slots = false
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.MaxUnwrap)
	assert.False(t, cfg.RecycleSlots)
	assert.True(t, cfg.StrictSpelling)
}

func TestLoad_OptionsOverrideFile(t *testing.T) {
	p := writeFile(t, "rflct.yml", "log_level: warn\n")
	cfg, err := config.Load(p, config.WithLogLevel("error"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_SanitizesValues(t *testing.T) {
	p := writeFile(t, "rflct.yaml", "max_unwrap: -4\narena_capacity: 0\n")
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultMaxUnwrap, cfg.MaxUnwrap)
	assert.Equal(t, config.DefaultArenaCapacity, cfg.ArenaCapacity)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "rflct.json", "{}"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(writeFile(t, "bad.yaml", "arena_capacity: [1, 2"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "unknown.toml", "colour = true\n"))
	assert.ErrorContains(t, err, "colour")

	_, err = config.Load(writeFile(t, "unknown.yaml", "colour: true\n"))
	assert.ErrorContains(t, err, "colour")
}

func TestDecode_InvalidLogLevel(t *testing.T) {
	_, err := config.Decode([]byte("log_level: loud\n"), "yaml")
	assert.ErrorContains(t, err, "loud")
	_, err = config.Decode([]byte("log_level = \"loud\"\n"), "toml")
	assert.ErrorContains(t, err, "loud")

	cfg, err := config.Decode([]byte("log_level: WARN\n"), "yaml")
	require.NoError(t, err)
	assert.Equal(t, "WARN", cfg.LogLevel)
}

func TestDecode_EmptyYAMLKeepsDefaults(t *testing.T) {
	cfg, err := config.Decode(nil, "yaml")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestDecode_ExtensionForms(t *testing.T) {
	for _, ext := range []string{"yaml", ".yaml", "YML", ".yml"} {
		cfg, err := config.Decode([]byte("weak_instances: true"), ext)
		require.NoError(t, err, ext)
		assert.True(t, cfg.WeakInstances, ext)
	}
}
