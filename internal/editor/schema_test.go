package editor

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nauticalab/epiceditor-config/pkg/schema"
)

// expectedDefaults lists every leaf of the editor schema with its default.
var expectedDefaults = map[string]any{
	"class":                           "EpicEditorType",
	"js_path":                         "bundles/scarepiceditor/js/epiceditor.min.js",
	"config.container":                "epiceditor",
	"config.textarea":                 nil,
	"config.base_path":                "/bundles/scarepiceditor",
	"config.client_side_storage":      true,
	"config.local_storage_name":       "epiceditor",
	"config.use_native_fullsreen":     true,
	"config.parser":                   "marked",
	"config.focus_on_load":            false,
	"config.autogrow":                 false,
	"config.file.name":                "epiceditor",
	"config.file.default_content":     "",
	"config.file.auto_save":           "100",
	"config.theme.base":               "/themes/base/epiceditor.css",
	"config.theme.preview":            "/themes/preview/preview-dark.css",
	"config.theme.editor":             "/themes/editor/epic-dark.css",
	"config.button.preview":           true,
	"config.button.fullscreen":        true,
	"config.button.bar":               "auto",
	"config.shortcut.modifier":        18,
	"config.shortcut.fullscreen":      70,
	"config.shortcut.preview":         80,
	"config.string.toggle_preview":    "Toggle Preview Mode",
	"config.string.toggle_edit":       "Toggle Edit Mode",
	"config.string.toggle_fullscreen": "Enter Fullscreen",
}

func mergeEditor(t *testing.T, overrides ...any) schema.Document {
	t.Helper()
	doc, err := schema.NewMerger().Merge(BuildSchema(), overrides...)
	require.NoError(t, err)
	return doc
}

// nested turns a dotted path and a value into a nested override document.
func nested(path string, value any) map[string]any {
	parts := strings.Split(path, ".")
	out := map[string]any{parts[len(parts)-1]: value}
	for i := len(parts) - 2; i >= 0; i-- {
		out = map[string]any{parts[i]: out}
	}
	return out
}

func TestBuildSchemaDefaults(t *testing.T) {
	doc := mergeEditor(t)

	for path, want := range expectedDefaults {
		got, ok := doc.Get(path)
		require.True(t, ok, "missing %s", path)
		assert.Equal(t, want, got, path)
	}

	var leaves int
	BuildSchema().Walk(func(string, *schema.Node) { leaves++ })
	assert.Equal(t, len(expectedDefaults), leaves)
}

func TestBuildSchemaIsDeterministic(t *testing.T) {
	first := BuildSchema()
	second := BuildSchema()

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, Namespace, first.Name)
}

func TestBuildSchemaGroups(t *testing.T) {
	root := BuildSchema()

	for _, path := range []string{"config", "config.file", "config.theme", "config.button", "config.shortcut", "config.string"} {
		n, ok := root.Lookup(path)
		require.True(t, ok, path)
		assert.True(t, n.IsGroup(), path)
	}

	textarea, ok := root.Lookup("config.textarea")
	require.True(t, ok)
	assert.True(t, textarea.Nullable)

	preview, ok := root.Lookup("config.button.preview")
	require.True(t, ok)
	assert.Equal(t, schema.KindBoolOrString, preview.Kind)
}

func TestOverrideIsolation(t *testing.T) {
	root := BuildSchema()

	root.Walk(func(path string, leaf *schema.Node) {
		t.Run(path, func(t *testing.T) {
			var value any
			switch leaf.Kind {
			case schema.KindString:
				value = "custom-" + path
			case schema.KindBool:
				value = !expectedDefaults[path].(bool)
			case schema.KindNumber:
				value = 99
			case schema.KindBoolOrString:
				value = false
			}

			doc := mergeEditor(t, nested(path, value))

			for other, want := range expectedDefaults {
				got := doc.MustGet(other)
				if other == path {
					assert.Equal(t, value, got)
					continue
				}
				assert.Equal(t, want, got, "sibling %s changed", other)
			}
		})
	})
}

func TestPartialThemeOverride(t *testing.T) {
	doc := mergeEditor(t, map[string]any{
		"config": map[string]any{
			"theme": map[string]any{"base": "x.css"},
		},
	})

	theme, ok := doc.Get("config.theme")
	require.True(t, ok)
	assert.Equal(t, schema.Document{
		"base":    "x.css",
		"preview": "/themes/preview/preview-dark.css",
		"editor":  "/themes/editor/epic-dark.css",
	}, theme)
}

func TestButtonAcceptsString(t *testing.T) {
	doc := mergeEditor(t, map[string]any{
		"config": map[string]any{
			"button": map[string]any{"preview": "#my-button"},
		},
	})

	assert.Equal(t, "#my-button", doc.MustGet("config.button.preview"))
	assert.Equal(t, true, doc.MustGet("config.button.fullscreen"))
}

func TestEmptyOverrideScenario(t *testing.T) {
	doc := mergeEditor(t, map[string]any{})

	assert.Equal(t, "EpicEditorType", doc.MustGet("class"))
	assert.Equal(t, 18, doc.MustGet("config.shortcut.modifier"))
	assert.Equal(t, "Toggle Edit Mode", doc.MustGet("config.string.toggle_edit"))
}

func TestAutogrowAutoSaveScenario(t *testing.T) {
	doc := mergeEditor(t, map[string]any{
		"config": map[string]any{
			"autogrow": true,
			"file":     map[string]any{"auto_save": "500"},
		},
	})

	assert.Equal(t, true, doc.MustGet("config.autogrow"))
	assert.Equal(t, "500", doc.MustGet("config.file.auto_save"))
	assert.Equal(t, "epiceditor", doc.MustGet("config.file.name"))
	assert.Equal(t, true, doc.MustGet("config.client_side_storage"))
}

func TestAutoSaveNumberStaysString(t *testing.T) {
	doc := mergeEditor(t, map[string]any{
		"config": map[string]any{
			"file": map[string]any{"auto_save": 250},
		},
	})
	assert.Equal(t, "250", doc.MustGet("config.file.auto_save"))
}

func TestTypeMismatchPath(t *testing.T) {
	_, err := schema.NewMerger().Merge(BuildSchema(), map[string]any{
		"config": map[string]any{
			"theme": map[string]any{"base": map[string]any{"href": "x.css"}},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrTypeMismatch))
	assert.Contains(t, err.Error(), "config.theme.base")
}

func TestUnknownKeyRejected(t *testing.T) {
	_, err := schema.NewMerger().Merge(BuildSchema(), map[string]any{
		"config": map[string]any{"use_native_fullscreen": false},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrUnknownKey))
	assert.Contains(t, err.Error(), "config.use_native_fullscreen")
}

func TestRoundTrip(t *testing.T) {
	overrides := map[string]any{
		"js_path": "/js/editor.js",
		"config": map[string]any{
			"textarea": "body",
			"autogrow": true,
			"button":   map[string]any{"preview": "#preview"},
			"shortcut": map[string]any{"modifier": 17},
		},
	}
	first := mergeEditor(t, overrides)

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(first.Plain())
		require.NoError(t, err)

		var parsed map[string]any
		require.NoError(t, yaml.Unmarshal(data, &parsed))

		assert.Equal(t, first, mergeEditor(t, parsed))
	})

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(first)
		require.NoError(t, err)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal(data, &parsed))

		assert.Equal(t, first, mergeEditor(t, parsed))
	})
}
