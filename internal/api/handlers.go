package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/invopop/jsonschema"

	"github.com/nauticalab/epiceditor-config/internal/editor"
	"github.com/nauticalab/epiceditor-config/internal/logger"
	"github.com/nauticalab/epiceditor-config/pkg/schema"
)

// Handler holds dependencies for HTTP handlers. Everything it serves is
// computed once when the server is built; handlers only read it.
type Handler struct {
	document      schema.Document
	clientOptions map[string]any
	defaults      schema.Document
	jsonSchema    *jsonschema.Schema

	version   string
	gitCommit string
	buildTime string
	goVersion string
}

// NewHandler creates a new Handler serving the given merged document.
func NewHandler(doc schema.Document, opts *editor.Options, build BuildInfo) *Handler {
	root := editor.BuildSchema()
	return &Handler{
		document:      doc,
		clientOptions: opts.ClientOptions(),
		defaults:      root.Defaults(),
		jsonSchema:    schema.JSONSchema(root, editor.Namespace),
		version:       build.Version,
		gitCommit:     build.GitCommit,
		buildTime:     build.BuildTime,
		goVersion:     build.GoVersion,
	}
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Version handles GET /api/v1/version
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, VersionResponse{
		Version:   h.version,
		GitCommit: h.gitCommit,
		BuildTime: h.buildTime,
		GoVersion: h.goVersion,
	})
}

// Config handles GET /api/v1/editor/config
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.document)
}

// ConfigValue handles GET /api/v1/editor/config/{path}
// The path is dotted, e.g. config.theme.base
func (h *Handler) ConfigValue(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "path")

	value, ok := h.document.Get(path)
	if !ok {
		logger.FromRequest(r).Debug().Str("path", path).Msg("configuration path not found")
		respondNotFound(w, r, fmt.Sprintf("No configuration value at %q", path))
		return
	}

	respondSuccess(w, r, ValueResponse{Path: path, Value: value})
}

// Options handles GET /api/v1/editor/options
// Returns the option object the editor widget constructor takes.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.clientOptions)
}

// Schema handles GET /api/v1/editor/schema
func (h *Handler) Schema(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.jsonSchema)
}

// Defaults handles GET /api/v1/editor/defaults
func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.defaults)
}
