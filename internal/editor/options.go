package editor

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/nauticalab/epiceditor-config/pkg/schema"
)

// Options is the typed view of a merged editor document.
type Options struct {
	Class  string `yaml:"class" json:"class"`
	JSPath string `yaml:"js_path" json:"js_path"`
	Config Config `yaml:"config" json:"config"`
}

// Config holds the options handed to the editor widget.
type Config struct {
	Container          string  `yaml:"container" json:"container"`
	Textarea           *string `yaml:"textarea" json:"textarea"`
	BasePath           string  `yaml:"base_path" json:"base_path"`
	ClientSideStorage  bool    `yaml:"client_side_storage" json:"client_side_storage"`
	LocalStorageName   string  `yaml:"local_storage_name" json:"local_storage_name"`
	UseNativeFullsreen bool    `yaml:"use_native_fullsreen" json:"use_native_fullsreen"`
	Parser             string  `yaml:"parser" json:"parser"`
	FocusOnLoad        bool    `yaml:"focus_on_load" json:"focus_on_load"`
	Autogrow           bool    `yaml:"autogrow" json:"autogrow"`

	File     File     `yaml:"file" json:"file"`
	Theme    Theme    `yaml:"theme" json:"theme"`
	Button   Button   `yaml:"button" json:"button"`
	Shortcut Shortcut `yaml:"shortcut" json:"shortcut"`
	Strings  Strings  `yaml:"string" json:"string"`
}

// File configures the document the editor opens.
type File struct {
	Name           string `yaml:"name" json:"name"`
	DefaultContent string `yaml:"default_content" json:"default_content"`
	AutoSave       string `yaml:"auto_save" json:"auto_save"` // milliseconds
}

// Theme holds stylesheet paths relative to the base path.
type Theme struct {
	Base    string `yaml:"base" json:"base"`
	Preview string `yaml:"preview" json:"preview"`
	Editor  string `yaml:"editor" json:"editor"`
}

// Button configures the editor button bar.
type Button struct {
	Preview    BoolOrString `yaml:"preview" json:"preview"`
	Fullscreen BoolOrString `yaml:"fullscreen" json:"fullscreen"`
	Bar        string       `yaml:"bar" json:"bar"`
}

// Shortcut holds key codes.
type Shortcut struct {
	Modifier   int `yaml:"modifier" json:"modifier"`
	Fullscreen int `yaml:"fullscreen" json:"fullscreen"`
	Preview    int `yaml:"preview" json:"preview"`
}

// Strings holds UI labels.
type Strings struct {
	TogglePreview    string `yaml:"toggle_preview" json:"toggle_preview"`
	ToggleEdit       string `yaml:"toggle_edit" json:"toggle_edit"`
	ToggleFullscreen string `yaml:"toggle_fullscreen" json:"toggle_fullscreen"`
}

// BoolOrString holds either a boolean or a string, whichever the
// configuration supplied. The zero value is the boolean false.
type BoolOrString struct {
	isString bool
	b        bool
	s        string
}

// BoolValue returns a BoolOrString holding b.
func BoolValue(b bool) BoolOrString {
	return BoolOrString{b: b}
}

// StringValue returns a BoolOrString holding s.
func StringValue(s string) BoolOrString {
	return BoolOrString{isString: true, s: s}
}

// IsBool reports whether v holds a boolean.
func (v BoolOrString) IsBool() bool {
	return !v.isString
}

// Bool returns the boolean and whether v holds one.
func (v BoolOrString) Bool() (bool, bool) {
	return v.b, !v.isString
}

// String returns the string form of v. Booleans render as "true"/"false".
func (v BoolOrString) String() string {
	if v.isString {
		return v.s
	}
	return strconv.FormatBool(v.b)
}

// Value returns the held value as bool or string.
func (v BoolOrString) Value() any {
	if v.isString {
		return v.s
	}
	return v.b
}

// MarshalJSON implements json.Marshaler.
func (v BoolOrString) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Value())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *BoolOrString) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return v.set(raw)
}

// MarshalYAML implements yaml.Marshaler.
func (v BoolOrString) MarshalYAML() (any, error) {
	return v.Value(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *BoolOrString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected bool or string scalar", node.Line)
	}
	if node.Tag == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*v = BoolValue(b)
		return nil
	}
	*v = StringValue(node.Value)
	return nil
}

func (v *BoolOrString) set(raw any) error {
	switch x := raw.(type) {
	case bool:
		*v = BoolValue(x)
	case string:
		*v = StringValue(x)
	default:
		return fmt.Errorf("expected bool or string, got %T", raw)
	}
	return nil
}

// Decode builds the typed view of a merged document.
func Decode(doc schema.Document) (*Options, error) {
	var node yaml.Node
	if err := node.Encode(doc.Plain()); err != nil {
		return nil, fmt.Errorf("failed to encode editor document: %w", err)
	}

	var opts Options
	if err := node.Decode(&opts); err != nil {
		return nil, fmt.Errorf("failed to decode editor document: %w", err)
	}
	return &opts, nil
}

// Load merges the overrides against the editor schema and returns both the
// typed view and the merged document.
func Load(merger *schema.Merger, overrides ...any) (*Options, schema.Document, error) {
	if merger == nil {
		merger = schema.NewMerger()
	}
	doc, err := merger.Merge(BuildSchema(), overrides...)
	if err != nil {
		return nil, nil, err
	}
	opts, err := Decode(doc)
	if err != nil {
		return nil, nil, err
	}
	return opts, doc, nil
}

// Defaults returns the typed view with no overrides applied.
func Defaults() *Options {
	opts, _, err := Load(nil)
	if err != nil {
		panic(fmt.Sprintf("editor: default configuration does not decode: %v", err))
	}
	return opts
}
