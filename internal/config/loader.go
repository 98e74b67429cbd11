package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nauticalab/epiceditor-config/internal/editor"
	"github.com/nauticalab/epiceditor-config/pkg/schema"
)

// Errors returned while reading override files. Merge problems are reported
// with the schema package errors (schema.ErrTypeMismatch, schema.ErrUnknownKey).
var (
	ErrFileNotFound           = errors.New("configuration file not found")
	ErrUnsupportedFileType    = errors.New("unsupported configuration file type")
	ErrParse                  = errors.New("parse configuration file")
	ErrNamespaceNotAMapping   = errors.New("editor section is not a mapping")
	ErrHostDocumentNotMapping = errors.New("configuration document is not a mapping")
)

// Source describes one override file that took part in a load.
type Source struct {
	Path string
	// HasSection is false when the file holds no editor section.
	HasSection bool
	// Overrides is the editor section of the file, nil when absent.
	Overrides map[string]any
}

// Result is the outcome of a load: the merged document, its typed view and
// the files it was built from, in merge order.
type Result struct {
	Document schema.Document
	Options  *editor.Options
	Sources  []Source
}

// Loader reads host configuration files and merges their editor sections
// against the editor schema.
type Loader struct {
	merger *schema.Merger
	root   *schema.Node
}

// NewLoader returns a Loader merging with m. A nil m rejects unknown keys.
func NewLoader(m *schema.Merger) *Loader {
	if m == nil {
		m = schema.NewMerger()
	}
	return &Loader{merger: m, root: editor.BuildSchema()}
}

// Load reads every path, in order, and merges their editor sections. Later
// files win per key. With no paths the result holds the defaults.
func (l *Loader) Load(paths ...string) (*Result, error) {
	sources := make([]Source, 0, len(paths))
	overrides := make([]any, 0, len(paths))

	for _, path := range paths {
		src, err := ReadSource(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, *src)
		if src.Overrides != nil {
			overrides = append(overrides, src.Overrides)
		}
	}

	doc, err := l.merger.Merge(l.root, overrides...)
	if err != nil {
		return nil, fmt.Errorf("invalid editor configuration in %s: %w", strings.Join(paths, ", "), err)
	}

	opts, err := editor.Decode(doc)
	if err != nil {
		return nil, err
	}

	return &Result{Document: doc, Options: opts, Sources: sources}, nil
}

// LoadDir loads every .yaml, .yml and .json file of dir in lexical order.
// A missing directory yields the defaults.
func (l *Loader) LoadDir(dir string) (*Result, error) {
	paths, err := FindFiles(dir)
	if err != nil {
		return nil, err
	}
	return l.Load(paths...)
}

// Load merges the given files with the default loader.
func Load(paths ...string) (*Result, error) {
	return NewLoader(nil).Load(paths...)
}

// FindFiles lists the supported configuration files directly under dir,
// sorted by name. A missing directory yields no files.
func FindFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !isSupported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadSource reads one host configuration file and extracts its editor
// section.
func ReadSource(path string) (*Source, error) {
	if !isSupported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, path)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	host, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}

	section, ok, err := EditorSection(host)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Source{Path: path, HasSection: ok, Overrides: section}, nil
}

// ParseDocument parses a YAML or JSON host configuration document. An empty
// document parses to nil. Plain scalars that YAML would resolve to
// timestamps keep their source text.
func ParseDocument(data []byte) (map[string]any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return nil, nil
	}
	timestampsAsText(&root)

	var raw any
	if err := root.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrHostDocumentNotMapping
	}
	return doc, nil
}

func timestampsAsText(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!timestamp" {
		n.Tag = "!!str"
	}
	for _, c := range n.Content {
		timestampsAsText(c)
	}
}

// EditorSection returns the mapping stored under the editor namespace of a
// host document. Keys outside the namespace belong to other schemas and are
// ignored. A null section counts as present and empty.
func EditorSection(host map[string]any) (map[string]any, bool, error) {
	raw, ok := host[editor.Namespace]
	if !ok {
		return nil, false, nil
	}
	if raw == nil {
		return map[string]any{}, true, nil
	}
	section, ok := raw.(map[string]any)
	if !ok {
		return nil, true, fmt.Errorf("%w: %s", ErrNamespaceNotAMapping, editor.Namespace)
	}
	return section, true, nil
}

func isSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
