// Package editor declares the configuration schema of the EpicEditor
// markdown widget and its typed view.
//
// The schema is namespaced under [Namespace] in host configuration files and
// groups its options as editor behavior (config), file handling (file),
// theming (theme), buttons (button), keyboard shortcuts (shortcut) and UI
// labels (string). Every option has a default, so an empty configuration is
// valid:
//
//	opts, doc, err := editor.Load(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(opts.Class) // EpicEditorType
//	v, _ := doc.Get("config.shortcut.modifier")
//	fmt.Println(v) // 18
//
// The button.preview and button.fullscreen options accept a boolean or a
// string and keep whichever was supplied; see [BoolOrString].
//
// file.auto_save is a millisecond interval stored as a string ("100") and is
// never converted to a number.
package editor
