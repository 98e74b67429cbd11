package editor

import "github.com/nauticalab/epiceditor-config/pkg/schema"

// Namespace is the top-level key holding the editor section in a host
// configuration document.
const Namespace = "scar_epic_editor"

// DefaultFormType identifies the form type that renders the widget.
const DefaultFormType = "EpicEditorType"

// BuildSchema returns the editor configuration schema. Every call returns an
// equivalent, freshly allocated tree.
func BuildSchema() *schema.Node {
	return schema.Group(Namespace,
		schema.String("class", DefaultFormType).
			Describe("Form type rendering the editor widget"),
		schema.String("js_path", "bundles/scarepiceditor/js/epiceditor.min.js").
			Describe("Public path of the EpicEditor script"),
		configNode(),
	)
}

func configNode() *schema.Node {
	return schema.Group("config",
		schema.String("container", "epiceditor"),
		schema.NullableString("textarea").
			Describe("Id of a textarea kept in sync with the editor"),
		schema.String("base_path", "/bundles/scarepiceditor"),
		schema.Bool("client_side_storage", true),
		schema.String("local_storage_name", "epiceditor"),
		schema.Bool("use_native_fullsreen", true),
		schema.String("parser", "marked"),
		schema.Bool("focus_on_load", false),
		schema.Bool("autogrow", false),
		fileNode(),
		themeNode(),
		buttonNode(),
		shortcutNode(),
		stringNode(),
	)
}

func fileNode() *schema.Node {
	return schema.Group("file",
		schema.String("name", "epiceditor"),
		schema.String("default_content", ""),
		// Milliseconds, kept as a string.
		schema.String("auto_save", "100"),
	)
}

func themeNode() *schema.Node {
	return schema.Group("theme",
		schema.String("base", "/themes/base/epiceditor.css"),
		schema.String("preview", "/themes/preview/preview-dark.css"),
		schema.String("editor", "/themes/editor/epic-dark.css"),
	)
}

func buttonNode() *schema.Node {
	return schema.Group("button",
		schema.BoolOrString("preview", true),
		schema.BoolOrString("fullscreen", true),
		schema.String("bar", "auto"),
	)
}

func shortcutNode() *schema.Node {
	return schema.Group("shortcut",
		schema.Number("modifier", 18),
		schema.Number("fullscreen", 70),
		schema.Number("preview", 80),
	)
}

func stringNode() *schema.Node {
	return schema.Group("string",
		schema.String("toggle_preview", "Toggle Preview Mode"),
		schema.String("toggle_edit", "Toggle Edit Mode"),
		schema.String("toggle_fullscreen", "Enter Fullscreen"),
	)
}
