// Package web provides the HTTP server that hosts message parts: an editor
// page and a display page per part, plus a small index for managing parts.
package web

import (
	"database/sql"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/evcraddock/message-part/internal/content"
	"github.com/evcraddock/message-part/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server is the web UI HTTP server.
type Server struct {
	parts     *content.Repository
	templates *template.Template
	router    *chi.Mux
}

// NewServer creates a web server with the given database.
func NewServer(db *sql.DB) (*Server, error) {
	funcMap := template.FuncMap{
		"formatTime": tmplFormatTime,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s := &Server{
		parts:     content.NewRepository(db),
		templates: tmpl,
		router:    chi.NewRouter(),
	}

	r := s.router
	r.Use(middleware.RequestID)
	r.Use(logging.RequestLogger)
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Post("/parts", s.handleCreatePart)

	r.Route("/parts/{id}", func(r chi.Router) {
		r.Get("/", s.handleDisplay)
		r.Post("/", s.handleDisplay)
		r.Get("/edit", s.handleEditor)
		r.Post("/edit", s.handleEditor)
		r.Post("/delete", s.handleDeletePart)
	})

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting web UI", "url", fmt.Sprintf("http://localhost%s", addr))

	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func tmplFormatTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Local().Format("Jan 2, 2006 3:04 PM")
}
