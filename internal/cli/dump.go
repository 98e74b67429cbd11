package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/nauticalab/epiceditor-config/internal/config"
	"github.com/nauticalab/epiceditor-config/internal/editor"
	"github.com/nauticalab/epiceditor-config/internal/git"
	"github.com/nauticalab/epiceditor-config/internal/logger"
	"github.com/nauticalab/epiceditor-config/pkg/schema"
)

// RevisionKey is the top-level key a stamped dump records its revision
// under. Loaders ignore it like any other foreign key.
const RevisionKey = "epiceditor_revision"

// DumpOptions holds configuration for the dump command
type DumpOptions struct {
	Settings *Settings
	// Client prints the widget option object instead of the merged document
	Client bool
	// Stamp records the revision of the configuration directory
	Stamp bool
}

// LoadResult merges the override files named by settings: Files when set,
// otherwise every supported file of ConfigDir.
func LoadResult(s *Settings, log *logger.Logger) (*config.Result, error) {
	loader := config.NewLoader(newMerger(s))

	var (
		res *config.Result
		err error
	)
	if len(s.Files) > 0 {
		res, err = loader.Load(s.Files...)
	} else {
		res, err = loader.LoadDir(s.ConfigDir)
	}
	if err != nil {
		return nil, err
	}

	for _, src := range res.Sources {
		ev := log.Debug().Str("file", src.Path)
		if !src.HasSection {
			ev.Msg("file has no editor section")
			continue
		}
		ev.Int("keys", len(src.Overrides)).Msg("merged override file")
	}
	return res, nil
}

// RunDump prints the merged configuration as a host document, wrapped in the
// editor namespace, so the output can be loaded again.
func RunDump(w io.Writer, opts DumpOptions, log *logger.Logger) error {
	s := opts.Settings

	res, err := LoadResult(s, log)
	if err != nil {
		return err
	}

	if opts.Client {
		return writeDocument(w, s.Format, res.Options.ClientOptions())
	}

	out := map[string]any{editor.Namespace: res.Document.Plain()}

	if opts.Stamp {
		dir := s.ConfigDir
		if len(s.Files) > 0 {
			dir = filepath.Dir(s.Files[len(s.Files)-1])
		}
		rev, err := git.GetRevision(dir)
		if err != nil {
			return fmt.Errorf("failed to stamp dump: %w", err)
		}
		log.Debug().Str("commit", rev.CommitHash).Bool("dirty", rev.IsDirty).Msg("stamping dump")
		out[RevisionKey] = rev
	}

	return writeDocument(w, s.Format, out)
}

// RunDefaults prints the editor defaults wrapped in the editor namespace.
func RunDefaults(w io.Writer, format string) error {
	doc := editor.BuildSchema().Defaults()
	return writeDocument(w, format, map[string]any{editor.Namespace: doc.Plain()})
}

// RunSchema prints the JSON Schema of the editor section.
func RunSchema(w io.Writer) error {
	return writeDocument(w, "json", schema.JSONSchema(editor.BuildSchema(), editor.Namespace))
}

func newMerger(s *Settings) *schema.Merger {
	if s.IgnoreUnknown {
		return schema.NewMerger(schema.WithUnknownKeys(schema.IgnoreUnknown))
	}
	return schema.NewMerger()
}
