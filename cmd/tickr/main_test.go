package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the root command with isolated config and state paths.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})

	full := append([]string{
		"--config", filepath.Join(dir, "config.toml"),
		"--state-file", filepath.Join(dir, "state.json"),
	}, args...)
	rootCmd.SetArgs(full)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseMillis(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{"3661000", 3661000, false},
		{"-1", 0, true},
		{"1.5", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMillis(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "format", "0", "3661000", "360000000")
	require.NoError(t, err)
	assert.Equal(t, "00:00:00.000\n01:01:01.000\n100:00:00.000\n", out)

	_, err = execute(t, dir, "format", "-5")
	assert.Error(t, err)
}

func TestThemeCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "theme", "--format", "plain")
	require.NoError(t, err)
	assert.Equal(t, "Theme: light\n", out)

	out, err = execute(t, dir, "theme", "toggle", "--format", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: dark")
	assert.Contains(t, out, "Last change:")

	out, err = execute(t, dir, "theme", "toggle", "--format", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: light")

	out, err = execute(t, dir, "theme", "dark", "--format", "json")
	require.NoError(t, err)
	var status ThemeStatus
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, "dark", status.Theme)
	assert.Equal(t, filepath.Join(dir, "state.json"), status.StateFile)
	assert.NotEmpty(t, status.ChangedAt)

	out, err = execute(t, dir, "theme", "light", "--format", "yaml")
	require.NoError(t, err)
	status = ThemeStatus{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &status))
	assert.Equal(t, "light", status.Theme)
}

func TestWriteThemeStatus_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := writeThemeStatus(&buf, ThemeStatus{Theme: "light"}, "xml")
	assert.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	configInitOpts.force = false

	out, err := execute(t, dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "config.toml")
	assert.FileExists(t, filepath.Join(dir, "config.toml"))

	_, err = execute(t, dir, "config", "init")
	assert.Error(t, err)

	_, err = execute(t, dir, "config", "init", "--force")
	require.NoError(t, err)
	configInitOpts.force = false
}

func TestInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(filepath.Join(dir, "config.toml"), "[clock\n"))

	_, err := execute(t, dir, "format", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
