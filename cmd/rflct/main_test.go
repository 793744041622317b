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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--color", "off"}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestInspect_AllClasses(t *testing.T) {
	out, _, err := run(t, "inspect")
	require.NoError(t, err)

	assert.Contains(t, out, "class Object")
	assert.Contains(t, out, "3 fields, 3 instances")
	assert.Contains(t, out, "Sample object with an id")
	assert.Contains(t, out, "class Sensor")
	assert.Regexp(t, `id\s+private\s+int`, out)
	assert.Regexp(t, `total\s+private\s+long\s+static`, out)
	assert.NotContains(t, out, "\x1b[")
}

func TestInspect_ClassValues(t *testing.T) {
	out, _, err := run(t, "inspect", "--class", "Object", "--values")
	require.NoError(t, err)

	assert.NotContains(t, out, "class Sensor")
	assert.Regexp(t, `1\s+1@1\s+5\s+5\s+object-a`, out)
	assert.Regexp(t, `3\s+3@1\s+15\s+15\s+object-c`, out)
}

func TestInspect_Dump(t *testing.T) {
	out, _, err := run(t, "inspect", "--class", "Sensor", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "demo.Sensor")
	assert.Contains(t, out, "reading:")
}

func TestInspect_UnknownClass(t *testing.T) {
	_, _, err := run(t, "inspect", "--class", "Nope")
	assert.ErrorContains(t, err, "Nope")
}

func TestSet(t *testing.T) {
	out, _, err := run(t, "set", "--class", "Object", "--instance", "1", "--field", "id", "--value", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Object.id[1] (int)")
	assert.Contains(t, out, "before: 5")
	assert.Contains(t, out, "after:  7")
}

func TestSet_ParsesByFieldType(t *testing.T) {
	cases := []struct {
		field, value, after string
	}{
		{"enabled", "false", "false"},
		{"code", "0x43", "67"},
		{"level", "-12", "-12"},
		{"total", "9000000000", "9000000000"},
		{"reading", "1.5", "1.5"},
		{"scale", "2.25", "2.25"},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			out, _, err := run(t, "set", "--class", "Sensor", "--field", tc.field, "--value", tc.value)
			require.NoError(t, err)
			assert.Contains(t, out, "after:  "+tc.after)
		})
	}
}

func TestSet_Errors(t *testing.T) {
	cases := map[string][]string{
		"overflow":    {"--class", "Sensor", "--field", "level", "--value", "70000"},
		"negative":    {"--class", "Sensor", "--field", "code", "--value", "-1"},
		"not a bool":  {"--class", "Sensor", "--field", "enabled", "--value", "maybe"},
		"bad index":   {"--class", "Object", "--instance", "4", "--field", "id", "--value", "1"},
		"no field":    {"--class", "Object", "--field", "missing", "--value", "1"},
		"no class":    {"--class", "Nope", "--field", "id", "--value", "1"},
		"missing arg": {"--class", "Object", "--field", "id"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"set"}, args...)...)
			assert.Error(t, err)
		})
	}
}

func TestConfigFlag(t *testing.T) {
	p := filepath.Join(t.TempDir(), "rflct.toml")
	require.NoError(t, os.WriteFile(p, []byte("log_level = \"debug\"\n"), 0o600))

	_, logs, err := run(t, "--config", p, "inspect")
	require.NoError(t, err)
	assert.Contains(t, logs, "field registered")

	_, logs, err = run(t, "--config", p, "--log-level", "error", "inspect")
	require.NoError(t, err)
	assert.Empty(t, logs)

	_, _, err = run(t, "--log-level", "loud", "inspect")
	assert.Error(t, err)
}

func TestColorFlag_Invalid(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--color", "sometimes", "inspect"})
	assert.ErrorContains(t, root.Execute(), "sometimes")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rflct ")

	out, _, err = run(t, "version", "--format", "json", "--full")
	require.NoError(t, err)
	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "rflct", payload.Tool)
	assert.Equal(t, "unknown", payload.GitCommit)

	_, _, err = run(t, "version", "--format", "xml")
	assert.Error(t, err)
}
