package services

import (
	"net/url"

	"showcase.dev/internal/catalog"
	"showcase.dev/internal/models"
	"showcase.dev/internal/view"
)

// ProjectService handles project-related operations
type ProjectService struct {
	catalog *catalog.Catalog
}

// NewProjectService creates a new ProjectService
func NewProjectService(c *catalog.Catalog) *ProjectService {
	return &ProjectService{catalog: c}
}

// GetAll returns all projects in catalog order
func (s *ProjectService) GetAll() []models.Project {
	return s.catalog.All()
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (models.Project, error) {
	return s.catalog.Get(id)
}

// StateFromQuery rebuilds the section state from request query values
func (s *ProjectService) StateFromQuery(q url.Values) view.State {
	return view.Decode(q, s.catalog.Get)
}
