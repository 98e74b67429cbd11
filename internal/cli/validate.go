package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nauticalab/epiceditor-config/internal/config"
	"github.com/nauticalab/epiceditor-config/internal/validation"
)

// ErrValidationFailed is returned by RunValidate when any file has errors.
var ErrValidationFailed = errors.New("validation failed")

// ValidateOptions holds configuration for the validate command
type ValidateOptions struct {
	Settings *Settings
	Verbose  bool
}

// RunValidate checks every override file on its own and prints the result.
func RunValidate(ctx context.Context, w io.Writer, opts ValidateOptions) error {
	s := opts.Settings

	paths := s.Files
	if len(paths) == 0 {
		found, err := config.FindFiles(s.ConfigDir)
		if err != nil {
			return err
		}
		paths = found
	}

	fmt.Fprintf(w, "🔍 Validating %d editor configuration file(s)...\n", len(paths))

	validator := validation.NewFileValidator(
		validation.WithMerger(newMerger(s)),
		validation.WithWorkers(s.Workers),
	)
	result, err := validator.ValidateFiles(ctx, paths)
	if err != nil {
		return fmt.Errorf("validation aborted: %w", err)
	}

	printValidationResult(w, result, opts.Verbose)

	if !result.IsValid {
		return ErrValidationFailed
	}
	return nil
}

// printValidationResult prints the validation results in a user-friendly format
func printValidationResult(w io.Writer, result *validation.ValidationResult, verbose bool) {
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "⚠️  Warning: %s\n", warning.Message)
		if warning.FilePath != "" {
			fmt.Fprintf(w, "   File: %s\n", warning.FilePath)
		}
	}

	for _, err := range result.Errors {
		switch err.Type {
		case validation.TypeMismatch:
			fmt.Fprintf(w, "❌ Type Mismatch: %s\n", err.Message)
		case validation.UnknownKey:
			fmt.Fprintf(w, "❌ Unknown Key: %s\n", err.Message)
		case validation.Invalid:
			fmt.Fprintf(w, "❌ Configuration Error: %s\n", err.Message)
		default:
			fmt.Fprintf(w, "❌ Error: %s\n", err.Message)
		}
		if verbose && err.FilePath != "" {
			fmt.Fprintf(w, "   File: %s\n", err.FilePath)
		}
	}

	switch {
	case len(result.Errors) == 0 && len(result.Warnings) == 0:
		fmt.Fprintln(w, "✅ All configurations are valid!")
	case result.IsValid:
		fmt.Fprintf(w, "✅ All configurations are valid (%d warnings)\n", len(result.Warnings))
	default:
		fmt.Fprintf(w, "❌ Validation failed with %d errors and %d warnings\n", len(result.Errors), len(result.Warnings))
		printSuggestions(w, result)
	}
}

func printSuggestions(w io.Writer, result *validation.ValidationResult) {
	var hasMismatch, hasUnknown bool
	for _, err := range result.Errors {
		switch err.Type {
		case validation.TypeMismatch:
			hasMismatch = true
		case validation.UnknownKey:
			hasUnknown = true
		}
	}
	if !hasMismatch && !hasUnknown {
		return
	}

	fmt.Fprintln(w, "\n💡 Suggestions:")
	if hasMismatch {
		fmt.Fprintln(w, "   • Run 'epiceditor defaults' to see the expected type of every key")
	}
	if hasUnknown {
		fmt.Fprintln(w, "   • Check key spelling (note: use_native_fullsreen keeps its historical spelling)")
		fmt.Fprintln(w, "   • Use --ignore-unknown to drop keys the editor does not know")
	}
}
