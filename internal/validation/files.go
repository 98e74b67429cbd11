// Package validation checks EpicEditor override files one by one and
// reports every problem it finds, without stopping at the first bad file.
package validation

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/nauticalab/epiceditor-config/internal/config"
	"github.com/nauticalab/epiceditor-config/internal/editor"
	"github.com/nauticalab/epiceditor-config/pkg/schema"
)

// Error and warning types reported in a ValidationResult.
const (
	TypeMismatch = "type_mismatch"
	UnknownKey   = "unknown_key"
	Invalid      = "invalid"
	NoSection    = "no_section"
	NoFiles      = "no_files"
)

const defaultWorkers = 4

// ValidationResult contains all validation results
type ValidationResult struct {
	// Errors is a list of fatal validation errors
	Errors []ValidationError
	// Warnings is a list of non-fatal validation warnings
	Warnings []ValidationWarning
	// IsValid indicates if the validation passed (no errors)
	IsValid bool
}

// ValidationError represents a validation failure
type ValidationError struct {
	// Type is the category of error (type_mismatch, unknown_key, invalid)
	Type string
	// Path is the dotted key path inside the editor section, empty when the
	// whole file is at fault
	Path string
	// Message is a human-readable error description
	Message string
	// FilePath is the path to the configuration file causing the error
	FilePath string
}

// ValidationWarning represents a non-fatal validation issue
type ValidationWarning struct {
	Type     string
	Message  string
	FilePath string
}

// FileValidator validates override files against the editor schema.
type FileValidator struct {
	merger  *schema.Merger
	root    *schema.Node
	workers int
}

// Option configures a FileValidator.
type Option func(*FileValidator)

// WithMerger sets the merger used to check each file.
func WithMerger(m *schema.Merger) Option {
	return func(v *FileValidator) {
		if m != nil {
			v.merger = m
		}
	}
}

// WithWorkers sets the number of files checked concurrently.
func WithWorkers(n int) Option {
	return func(v *FileValidator) {
		if n > 0 {
			v.workers = n
		}
	}
}

// NewFileValidator creates a validator that rejects unknown keys and checks
// four files at a time unless told otherwise.
func NewFileValidator(opts ...Option) *FileValidator {
	v := &FileValidator{
		merger:  schema.NewMerger(),
		root:    editor.BuildSchema(),
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

type fileJob struct {
	index int
	path  string
}

type fileReport struct {
	index    int
	errors   []ValidationError
	warnings []ValidationWarning
}

// ValidateFiles checks every file on its own against the defaults. Results
// are reported in the order of paths regardless of which worker finished
// first. The returned error is non-nil only when ctx is cancelled.
func (v *FileValidator) ValidateFiles(ctx context.Context, paths []string) (*ValidationResult, error) {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationWarning{},
		IsValid:  true,
	}

	if len(paths) == 0 {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Type:    NoFiles,
			Message: "No configuration files to validate",
		})
		return result, nil
	}

	jobs := make(chan fileJob, len(paths))
	reports := make(chan fileReport, len(paths))

	workers := min(v.workers, len(paths))
	for i := 0; i < workers; i++ {
		go v.worker(ctx, jobs, reports)
	}

	for i, path := range paths {
		jobs <- fileJob{index: i, path: path}
	}
	close(jobs)

	collected := make([]fileReport, 0, len(paths))
	for range paths {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("validation cancelled: %w", ctx.Err())
		case r := <-reports:
			collected = append(collected, r)
		}
	}

	sort.Slice(collected, func(i, j int) bool { return collected[i].index < collected[j].index })
	for _, r := range collected {
		result.Errors = append(result.Errors, r.errors...)
		result.Warnings = append(result.Warnings, r.warnings...)
	}
	result.IsValid = len(result.Errors) == 0

	return result, nil
}

// ValidateDir validates every supported file found directly under dir.
func (v *FileValidator) ValidateDir(ctx context.Context, dir string) (*ValidationResult, error) {
	paths, err := config.FindFiles(dir)
	if err != nil {
		return nil, err
	}
	return v.ValidateFiles(ctx, paths)
}

func (v *FileValidator) worker(ctx context.Context, jobs <-chan fileJob, reports chan<- fileReport) {
	for job := range jobs {
		if ctx.Err() != nil {
			reports <- fileReport{index: job.index}
			continue
		}
		r := v.validateFile(job.path)
		r.index = job.index
		reports <- r
	}
}

func (v *FileValidator) validateFile(path string) fileReport {
	var r fileReport

	src, err := config.ReadSource(path)
	if err != nil {
		r.errors = append(r.errors, ValidationError{
			Type:     Invalid,
			Message:  fmt.Sprintf("Failed to load config: %v", err),
			FilePath: path,
		})
		return r
	}

	if !src.HasSection {
		r.warnings = append(r.warnings, ValidationWarning{
			Type:     NoSection,
			Message:  fmt.Sprintf("No %s section found", editor.Namespace),
			FilePath: path,
		})
		return r
	}

	doc, err := v.merger.Merge(v.root, src.Overrides)
	if err != nil {
		r.errors = append(r.errors, problemErrors(path, err)...)
		return r
	}

	if _, err := editor.Decode(doc); err != nil {
		r.errors = append(r.errors, ValidationError{
			Type:     Invalid,
			Message:  err.Error(),
			FilePath: path,
		})
	}

	return r
}

func problemErrors(path string, err error) []ValidationError {
	problems := schema.Problems(err)
	if len(problems) == 0 {
		return []ValidationError{{Type: Invalid, Message: err.Error(), FilePath: path}}
	}

	out := make([]ValidationError, 0, len(problems))
	for _, p := range problems {
		errType := Invalid
		switch {
		case errors.Is(p, schema.ErrTypeMismatch):
			errType = TypeMismatch
		case errors.Is(p, schema.ErrUnknownKey):
			errType = UnknownKey
		}
		out = append(out, ValidationError{
			Type:     errType,
			Path:     p.Path,
			Message:  p.Error(),
			FilePath: path,
		})
	}
	return out
}
