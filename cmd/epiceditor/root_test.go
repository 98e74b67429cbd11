package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags puts every flag of the tree back to its default so one
// execution does not see values or Changed state left by another.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestDumpCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yml")
	require.NoError(t, os.WriteFile(path, []byte("scar_epic_editor:\n  config:\n    focus_on_load: true\n"), 0o644))

	out, err := execute(t, "dump", "-f", path, "--format", "json", "--log-level", "error")
	require.NoError(t, err)

	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	cfg := doc["scar_epic_editor"]["config"].(map[string]any)
	assert.Equal(t, true, cfg["focus_on_load"])
}

func TestEnvironmentSelectsFormat(t *testing.T) {
	t.Setenv("EPICEDITOR_FORMAT", "json")

	out, err := execute(t, "defaults", "--log-level", "error")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yml")
	require.NoError(t, os.WriteFile(path, []byte("scar_epic_editor:\n  class: FromFile\n"), 0o644))

	_, err := execute(t, "dump", "-f", path, "--format", "json", "--log-level", "error")
	require.NoError(t, err)

	empty := t.TempDir()
	out, err := execute(t, "dump", "--config-dir", empty, "--log-level", "error")
	require.NoError(t, err)
	assert.False(t, json.Valid([]byte(out)), "format flag leaked from the previous run")
	assert.Contains(t, out, "class: EpicEditorType")
	assert.NotContains(t, out, "FromFile")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "epiceditor version dev")
}
