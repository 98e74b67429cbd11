package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nauticalab/epiceditor-config/internal/config"
	"github.com/nauticalab/epiceditor-config/internal/logger"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testSettings(files ...string) *Settings {
	s := DefaultSettings()
	s.Files = files
	return s
}

func TestRunDump(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.yml", "scar_epic_editor:\n  config:\n    autogrow: true\n    file:\n      auto_save: 250\n")

	t.Run("yaml dump reloads to the same document", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RunDump(&buf, DumpOptions{Settings: testSettings(path)}, logger.Nop()))

		dumped := writeFile(t, t.TempDir(), "dumped.yml", buf.String())
		first, err := config.Load(path)
		require.NoError(t, err)
		second, err := config.Load(dumped)
		require.NoError(t, err)
		assert.Equal(t, first.Document, second.Document)
		assert.Equal(t, "250", second.Options.Config.File.AutoSave)
	})

	t.Run("json dump", func(t *testing.T) {
		s := testSettings(path)
		s.Format = "json"

		var buf bytes.Buffer
		require.NoError(t, RunDump(&buf, DumpOptions{Settings: s}, logger.Nop()))

		var out map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		section := out["scar_epic_editor"].(map[string]any)
		assert.Equal(t, true, section["config"].(map[string]any)["autogrow"])
	})

	t.Run("client options", func(t *testing.T) {
		s := testSettings(path)
		s.Format = "json"

		var buf bytes.Buffer
		require.NoError(t, RunDump(&buf, DumpOptions{Settings: s, Client: true}, logger.Nop()))

		var out map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, true, out["autogrow"])
		assert.Equal(t, "250", out["file"].(map[string]any)["autoSave"])
	})

	t.Run("config dir when no files given", func(t *testing.T) {
		s := DefaultSettings()
		s.ConfigDir = dir

		var buf bytes.Buffer
		require.NoError(t, RunDump(&buf, DumpOptions{Settings: s}, logger.Nop()))
		assert.Contains(t, buf.String(), "autogrow: true")
	})

	t.Run("merge errors surface", func(t *testing.T) {
		bad := writeFile(t, t.TempDir(), "bad.yml", "scar_epic_editor:\n  clas: x\n")

		err := RunDump(&bytes.Buffer{}, DumpOptions{Settings: testSettings(bad)}, logger.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "clas")

		lenient := testSettings(bad)
		lenient.IgnoreUnknown = true
		assert.NoError(t, RunDump(&bytes.Buffer{}, DumpOptions{Settings: lenient}, logger.Nop()))
	})
}

func TestRunDumpStamp(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	path := writeFile(t, dir, "app.yml", "scar_epic_editor:\n  class: Stamped\n")

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("app.yml")
	require.NoError(t, err)
	hash, err := wt.Commit("add editor config", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RunDump(&buf, DumpOptions{Settings: testSettings(path), Stamp: true}, logger.Nop()))

	var out map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	rev := out[RevisionKey].(map[string]any)
	assert.Equal(t, hash.String(), rev["commit"])
	assert.Equal(t, false, rev["dirty"])

	// The stamp is a foreign key: the dump still loads.
	dumped := writeFile(t, t.TempDir(), "dumped.yml", buf.String())
	res, err := config.Load(dumped)
	require.NoError(t, err)
	assert.Equal(t, "Stamped", res.Options.Class)

	t.Run("outside a repository", func(t *testing.T) {
		plain := writeFile(t, t.TempDir(), "app.yml", "scar_epic_editor: {}\n")
		err := RunDump(&bytes.Buffer{}, DumpOptions{Settings: testSettings(plain), Stamp: true}, logger.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stamp")
	})
}

func TestRunDefaultsAndSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunDefaults(&buf, "yaml"))

	var out map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "EpicEditorType", out["scar_epic_editor"]["class"])

	buf.Reset()
	require.NoError(t, RunSchema(&buf))
	var schemaDoc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &schemaDoc))
	assert.Equal(t, "object", schemaDoc["type"])

	assert.Error(t, RunDefaults(&bytes.Buffer{}, "toml"))
}

func TestRunValidate(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yml", "scar_epic_editor:\n  config:\n    parser: markdown-it\n")
	other := writeFile(t, dir, "other.yml", "framework: {}\n")

	t.Run("valid with warning", func(t *testing.T) {
		var buf bytes.Buffer
		err := RunValidate(ctx, &buf, ValidateOptions{Settings: testSettings(good, other)})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Validating 2 editor configuration file(s)")
		assert.Contains(t, buf.String(), "valid (1 warnings)")
	})

	t.Run("errors and suggestions", func(t *testing.T) {
		bad := writeFile(t, t.TempDir(), "bad.yml", "scar_epic_editor:\n  config:\n    use_native_fullscreen: false\n    autogrow: 1\n")

		var buf bytes.Buffer
		err := RunValidate(ctx, &buf, ValidateOptions{Settings: testSettings(bad), Verbose: true})
		require.ErrorIs(t, err, ErrValidationFailed)

		out := buf.String()
		assert.Contains(t, out, "Unknown Key: config.use_native_fullscreen")
		assert.Contains(t, out, "Type Mismatch: config.autogrow")
		assert.Contains(t, out, "File: "+bad)
		assert.Contains(t, out, "historical spelling")
		assert.Contains(t, out, "Validation failed with 2 errors")
	})

	t.Run("config dir", func(t *testing.T) {
		s := DefaultSettings()
		s.ConfigDir = dir

		var buf bytes.Buffer
		require.NoError(t, RunValidate(ctx, &buf, ValidateOptions{Settings: s}))
		assert.Contains(t, buf.String(), "Validating 2")
	})
}
