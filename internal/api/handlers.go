package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListSections lists section names in document order, duplicates
// included.
func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, s.doc.Len())
	for sec := range s.doc.Sections() {
		names = append(names, sec.Name)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"sections": names})
}

// handleGetSection returns the fields of the first section with the given
// name. Later duplicate fields are shadowed by the first occurrence.
func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "section")

	sec, ok := s.doc.Section(name)
	if !ok {
		jsonError(w, "section not found: "+name, http.StatusNotFound)
		return
	}

	fields := make(map[string]string, len(sec.Fields))
	for _, f := range sec.Fields {
		if _, dup := fields[f.Name]; dup {
			continue
		}
		fields[f.Name] = f.Value
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"section": name,
		"fields":  fields,
	})
}

// handleGetField returns a single field value using first-match lookup.
func (s *Server) handleGetField(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	field := chi.URLParam(r, "field")

	value, ok := s.doc.Fetch(section, field)
	if !ok {
		jsonError(w, "field not found: "+section+"."+field, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"section": section,
		"field":   field,
		"value":   value,
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
