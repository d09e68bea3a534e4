// Package api exposes a parsed FDL document over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fdlang/fdl/fdl"
	"github.com/fdlang/fdl/log"
)

// Server is the HTTP API server serving a single document.
type Server struct {
	router chi.Router
	doc    *fdl.Document
	log    log.Logger
}

// NewServer creates and configures the HTTP server around doc.
func NewServer(doc *fdl.Document, logger log.Logger) *Server {
	s := &Server{
		doc: doc,
		log: logger,
	}
	s.setupRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Get("/api/sections", s.handleListSections)
	r.Get("/api/sections/{section}", s.handleGetSection)
	r.Get("/api/sections/{section}/fields/{field}", s.handleGetField)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
