package editor

// ClientOptions returns the option object passed to the EpicEditor
// JavaScript constructor. Keys follow the widget's camelCase names; a null
// textarea is left out so the widget falls back to its own lookup.
func (o *Options) ClientOptions() map[string]any {
	c := o.Config
	out := map[string]any{
		"container":           c.Container,
		"basePath":            c.BasePath,
		"clientSideStorage":   c.ClientSideStorage,
		"localStorageName":    c.LocalStorageName,
		"useNativeFullscreen": c.UseNativeFullsreen,
		"parser":              c.Parser,
		"focusOnLoad":         c.FocusOnLoad,
		"autogrow":            c.Autogrow,
		"file": map[string]any{
			"name":           c.File.Name,
			"defaultContent": c.File.DefaultContent,
			"autoSave":       c.File.AutoSave,
		},
		"theme": map[string]any{
			"base":    c.Theme.Base,
			"preview": c.Theme.Preview,
			"editor":  c.Theme.Editor,
		},
		"button": map[string]any{
			"preview":    c.Button.Preview.Value(),
			"fullscreen": c.Button.Fullscreen.Value(),
			"bar":        c.Button.Bar,
		},
		"shortcut": map[string]any{
			"modifier":   c.Shortcut.Modifier,
			"fullscreen": c.Shortcut.Fullscreen,
			"preview":    c.Shortcut.Preview,
		},
		"string": map[string]any{
			"togglePreview":    c.Strings.TogglePreview,
			"toggleEdit":       c.Strings.ToggleEdit,
			"toggleFullscreen": c.Strings.ToggleFullscreen,
		},
	}
	if c.Textarea != nil {
		out["textarea"] = *c.Textarea
	}
	return out
}
