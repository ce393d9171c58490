package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"showcase.dev/internal/assets"
	"showcase.dev/internal/catalog"
	"showcase.dev/internal/config"
	"showcase.dev/internal/middleware"
	"showcase.dev/internal/render"
	"showcase.dev/internal/services"
)

// SectionPath serves the projects section without the surrounding page
const SectionPath = "/sections/projects"

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, cat *catalog.Catalog) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	public := cfg.PublicFS()
	renderer, err := render.New(render.Options{
		Title:        cfg.Section.Title,
		Subtitle:     cfg.Section.Subtitle,
		FragmentPath: SectionPath,
		Motion:       cfg.Motion(),
		Resolver:     render.NewScreenshotResolver(public, cfg.PlaceholderURL),
	})
	if err != nil {
		return nil, fmt.Errorf("building renderer: %w", err)
	}

	// Initialize services
	projectService := services.NewProjectService(cat)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	pageHandler := NewPageHandler(projectService, renderer)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(assets.Static()))))
	if public != nil {
		r.Handle("/projects/*", http.FileServer(http.FS(public)))
	}

	// Pages
	r.Get("/", pageHandler.Index)
	r.Get(SectionPath, pageHandler.Section)

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
