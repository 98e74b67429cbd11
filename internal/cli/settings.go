package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// EnvPrefix prefixes every environment variable read into Settings.
const EnvPrefix = "EPICEDITOR_"

// Settings configures the epiceditor tool itself, not the editor.
type Settings struct {
	// ConfigDir is scanned for override files when Files is empty
	ConfigDir string `env:"CONFIG_DIR" validate:"required"`
	// Files are override files merged in order
	Files []string `env:"FILES" envSeparator:"," validate:"dive,config_ext"`
	// Format of dumped documents
	Format string `env:"FORMAT" validate:"oneof=yaml json"`
	// IgnoreUnknown drops unknown keys instead of rejecting them
	IgnoreUnknown bool `env:"IGNORE_UNKNOWN"`
	// Listen is the API server address
	Listen string `env:"LISTEN" validate:"required,hostname_port"`
	// LogLevel is a zerolog level name
	LogLevel string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	// LogConsole switches logs to human readable output
	LogConsole bool `env:"LOG_CONSOLE"`
	// Workers bounds concurrent file validation
	Workers int `env:"WORKERS" validate:"min=1,max=64"`
}

// DefaultSettings returns the settings used when neither a flag nor an
// environment variable sets a field.
func DefaultSettings() *Settings {
	return &Settings{
		ConfigDir: "./config",
		Format:    "yaml",
		Listen:    ":8080",
		LogLevel:  "info",
		Workers:   4,
	}
}

// Package-level validator used by Settings.Validate.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("config_ext", validateConfigExt); err != nil {
		panic(fmt.Errorf("register validator config_ext: %w", err))
	}
}

// validateConfigExt implements the "config_ext" tag: the file must be YAML
// or JSON.
func validateConfigExt(fl validator.FieldLevel) bool {
	switch strings.ToLower(filepath.Ext(fl.Field().String())) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Validate checks s and reports every invalid field at once.
func (s *Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	var msgs []string
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
}

// settingsBuilder layers partial Settings; earlier layers win.
type settingsBuilder struct {
	layers []*Settings
	err    error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{layers: make([]*Settings, 0, 3)}
}

// withFlags adds the values of flags explicitly set on the command line.
func (b *settingsBuilder) withFlags(flags *Settings) *settingsBuilder {
	if flags != nil {
		b.layers = append(b.layers, flags)
	}
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envSettings := &Settings{}
	if err := env.ParseWithOptions(envSettings, env.Options{Prefix: EnvPrefix}); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error reading environment settings: %w", err))
		return b
	}
	b.layers = append(b.layers, envSettings)
	return b
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.layers = append(b.layers, DefaultSettings())
	return b
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred while building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, layer := range b.layers {
		if err := mergo.Merge(settings, layer); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	return settings, settings.Validate()
}

// LoadSettings builds the tool settings: flags explicitly set on the command
// line win over EPICEDITOR_* environment variables, which win over defaults.
// Boolean fields can only be switched on by a layer, never back off.
func LoadSettings(flags *Settings) (*Settings, error) {
	return newSettingsBuilder().
		withFlags(flags).
		withEnv().
		withDefaults().
		build()
}
