package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"dynamic/catalogs/internal/domain"

	"github.com/go-chi/chi/v5"
)

const dashboardIndex = "index.html"

type handler struct {
	svc          CatalogService
	dashboardDir string
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Server is up!"))
}

func (h *handler) manifest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Manifest())
}

// catalog serves /{config}/catalog/{type}/<token>[/<params>].json. The content
// type comes from the token; the {type} segment is routing only.
func (h *handler) catalog(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Catalog(r.Context(), catalogTail(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// catalogTail returns the part of the path after /{config}/catalog/{type}/ still
// percent-encoded, so values are decoded exactly once by the path parser.
func catalogTail(r *http.Request) string {
	parts := strings.SplitN(strings.TrimPrefix(r.URL.EscapedPath(), "/"), "/", 4)
	if len(parts) < 4 {
		return chi.URLParam(r, "*")
	}
	return parts[3]
}

func (h *handler) genres(w http.ResponseWriter, r *http.Request) {
	contentType := domain.ContentTypeMovie
	if raw := r.URL.Query().Get("type"); raw != "" {
		parsed, err := domain.ParseContentType(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_TYPE", err.Error())
			return
		}
		contentType = parsed
	}

	genres, err := h.svc.Genres(r.Context(), contentType)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, genres)
}

type idResponse struct {
	ID string `json:"id"`
}

func (h *handler) extractListID(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.ExtractListID(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

func (h *handler) listCatalog(w http.ResponseWriter, r *http.Request) {
	contentType, err := domain.ParseContentType(r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", err.Error())
		return
	}

	token, err := h.svc.ListCatalog(r.Context(), r.URL.Query().Get("url"), contentType)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: token})
}

// dashboard serves the configuration UI, falling back to its index for client-side routes.
func (h *handler) dashboard(w http.ResponseWriter, r *http.Request) {
	rel := path.Clean("/" + chi.URLParam(r, "*"))
	name := filepath.Join(h.dashboardDir, filepath.FromSlash(rel))

	if info, err := os.Stat(name); err != nil || info.IsDir() {
		name = filepath.Join(h.dashboardDir, dashboardIndex)
		if _, err := os.Stat(name); err != nil {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "dashboard is not installed")
			return
		}
	}

	http.ServeFile(w, r, name)
}
