package handler

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// allowedPages is the allowlist of marketing page slugs.
// Only these values may be requested via GET /api/pages/{slug}.
var allowedPages = map[string]bool{
	"home":     true,
	"about":    true,
	"services": true,
	"faq":      true,
	"contact":  true,
}

// ContentConfig holds configuration for the ContentHandler.
type ContentConfig struct {
	// PagesDir is the directory from which marketing page Markdown is read.
	// Corresponds to the CONTENT_DIR environment variable.
	PagesDir string
}

// ContentHandler handles GET /api/pages/{slug}.
type ContentHandler struct {
	cfg ContentConfig
}

// NewContentHandler creates a ContentHandler with the given configuration.
func NewContentHandler(cfg ContentConfig) *ContentHandler {
	return &ContentHandler{cfg: cfg}
}

// Page handles GET /api/pages/{slug}.
// Returns the Markdown content of the requested marketing page.
// Responds 404 for unknown slugs and rejects traversal attempts with 400.
func (h *ContentHandler) Page(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	// Reject traversal characters before the allowlist check.
	if strings.Contains(slug, "/") || strings.Contains(slug, "\\") || strings.Contains(slug, "..") {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if !allowedPages[slug] {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	absDir, err := filepath.Abs(h.cfg.PagesDir)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	filePath := filepath.Join(absDir, slug+".md")

	// Confirm the resolved path is still within PagesDir.
	if !strings.HasPrefix(filePath, absDir+string(filepath.Separator)) && filePath != absDir {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
