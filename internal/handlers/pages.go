package handlers

import (
	"bytes"
	"log"
	"net/http"

	"showcase.dev/internal/render"
	"showcase.dev/internal/services"
)

// PageHandler serves the HTML projects section
type PageHandler struct {
	projectService *services.ProjectService
	renderer       *render.Renderer
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, rr *render.Renderer) *PageHandler {
	return &PageHandler{projectService: ps, renderer: rr}
}

// Index handles GET / - the full page in the state carried by the query
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	state := h.projectService.StateFromQuery(r.URL.Query())

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, h.projectService.GetAll(), state); err != nil {
		log.Printf("Error rendering page: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	respondHTML(w, buf.Bytes())
}

// Section handles GET /sections/projects - the section alone
func (h *PageHandler) Section(w http.ResponseWriter, r *http.Request) {
	state := h.projectService.StateFromQuery(r.URL.Query())

	var buf bytes.Buffer
	if err := h.renderer.Fragment(&buf, h.projectService.GetAll(), state); err != nil {
		log.Printf("Error rendering section: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	respondHTML(w, buf.Bytes())
}

// respondHTML writes a rendered HTML body
func respondHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Printf("Error writing HTML: %v", err)
	}
}
