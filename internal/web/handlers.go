package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/evcraddock/message-part/internal/content"
)

type indexData struct {
	Parts []*content.Part
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("writing health response", "error", err)
	}
}

// handleIndex lists every part with links to its editor and display.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	parts, err := s.parts.List(r.Context())
	if err != nil {
		s.serverError(w, r, "loading parts", err)
		return
	}

	s.render(w, "index.html", indexData{Parts: parts})
}

// handleCreatePart adds a new part and opens its editor.
func (s *Server) handleCreatePart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.PostFormValue("title"))
	if title == "" {
		title = "Untitled message"
	}

	p, err := s.parts.Create(r.Context(), title)
	if err != nil {
		s.serverError(w, r, "creating part", err)
		return
	}

	slog.Info("part created", "part", p.ID, "title", p.Title)
	http.Redirect(w, r, editPath(p.ID), http.StatusSeeOther)
}

// handleDeletePart removes a part and its stored message.
func (s *Server) handleDeletePart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.parts.Delete(r.Context(), id)
	if errors.Is(err, content.ErrPartNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, "deleting part", err)
		return
	}

	slog.Info("part deleted", "part", id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// lookupPart resolves the {id} URL parameter, writing a 404 or 500 itself
// when it returns false.
func (s *Server) lookupPart(w http.ResponseWriter, r *http.Request) (*content.Part, bool) {
	p, err := s.parts.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, content.ErrPartNotFound) {
		http.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		s.serverError(w, r, "loading part", err)
		return nil, false
	}
	return p, true
}

// serverError logs err and answers 500.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, action string, err error) {
	slog.ErrorContext(r.Context(), action, "error", err, "path", r.URL.Path)
	http.Error(w, fmt.Sprintf("Error %s: %v", action, err), http.StatusInternalServerError)
}

// render executes a full page template.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
	}
}

// renderPartial executes a named template block (no layout).
func (s *Server) renderPartial(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering partial: %v", err), http.StatusInternalServerError)
	}
}

func displayPath(id string) string { return "/parts/" + id }

func editPath(id string) string { return "/parts/" + id + "/edit" }

// isFreshEntry reports whether r opens a surface rather than resubmitting it.
func isFreshEntry(r *http.Request) bool {
	return r.Method != http.MethodPost
}
