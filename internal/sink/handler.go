// Package sink implements a small development upload endpoint: it accepts
// PUT/POST bodies the way a real ingestion service would and stores them on
// disk, so uploadhub can be exercised end to end without external services.
package sink

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/mkravets/uploadhub/internal/logging"
)

type Handler struct {
	dir      string // "" disables storing to disk
	maxBytes int64
	log      logging.Logger
}

func New(dir string, maxBytes int64, log logging.Logger) *Handler {
	return &Handler{dir: dir, maxBytes: maxBytes, log: log}
}

// Routes returns the router for the sink endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Put("/upload", h.upload)
	r.Post("/upload", h.upload)
	r.Get("/healthz", h.health)
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {

	name := r.Header.Get("X-File-Name")
	if name == "" {
		name = "upload.bin"
	}
	// strip any path components a client might send
	name = filepath.Base(name)

	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBytes+1))
	if err != nil {
		h.log.Error(r.Context(), "reading upload body", "error", err)
		http.Error(w, "read error", http.StatusInternalServerError)
		return
	}
	if int64(len(body)) > h.maxBytes {
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
		return
	}

	if h.dir != "" {
		if err := os.WriteFile(filepath.Join(h.dir, name), body, 0o644); err != nil {
			h.log.Error(r.Context(), "storing upload", "name", name, "error", err)
			http.Error(w, "store error", http.StatusInternalServerError)
			return
		}
	}

	h.log.Info(r.Context(), "file received",
		"name", name,
		"content_type", r.Header.Get("Content-Type"),
		"bytes", len(body))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok":    true,
		"name":  name,
		"bytes": len(body),
	})
}
