package cli

import (
	"context"

	"github.com/nauticalab/epiceditor-config/internal/api"
	"github.com/nauticalab/epiceditor-config/internal/logger"
)

// ServeOptions holds configuration for the serve command
type ServeOptions struct {
	Settings *Settings
	Build    api.BuildInfo
}

// RunServe merges the configuration once and serves it until ctx is
// cancelled.
func RunServe(ctx context.Context, opts ServeOptions, log *logger.Logger) error {
	res, err := LoadResult(opts.Settings, log)
	if err != nil {
		return err
	}

	server, err := api.NewServer(api.ServerConfig{
		Addr:     opts.Settings.Listen,
		Document: res.Document,
		Options:  res.Options,
		Logger:   log,
		Build:    opts.Build,
	})
	if err != nil {
		return err
	}

	log.Info().Int("files", len(res.Sources)).Msg("editor configuration loaded")
	return server.StartWithContext(ctx)
}
