package schema

import (
	"fmt"
	"strings"
)

// Document is a merged configuration: one nested mapping per group, one
// concrete value per leaf.
type Document map[string]any

// Get returns the value at a dotted path such as "config.shortcut.modifier".
// Groups are returned as Document.
func (d Document) Get(path string) (any, bool) {
	if path == "" {
		return d, true
	}
	var cur any = d
	for _, seg := range strings.Split(path, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	if m, ok := cur.(map[string]any); ok {
		return Document(m), true
	}
	return cur, true
}

// MustGet is Get for paths known to exist; it panics otherwise.
func (d Document) MustGet(path string) any {
	v, ok := d.Get(path)
	if !ok {
		panic(fmt.Sprintf("schema: no value at %q", path))
	}
	return v
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		switch x := v.(type) {
		case Document:
			out[k] = x.Clone()
		case map[string]any:
			out[k] = Document(x).Clone()
		default:
			out[k] = v
		}
	}
	return out
}

// Plain converts d to nested map[string]any values, the shape produced by
// YAML and JSON decoders.
func (d Document) Plain() map[string]any {
	out := make(map[string]any, len(d))
	for k, v := range d {
		switch x := v.(type) {
		case Document:
			out[k] = x.Plain()
		case map[string]any:
			out[k] = Document(x).Plain()
		default:
			out[k] = v
		}
	}
	return out
}
