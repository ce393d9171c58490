// Package catalog holds the ordered, read-only list of portfolio projects.
//
// A Catalog is built once at startup and never mutated. Accessors hand out
// copies, so callers can not alter records or share sub-slices between them.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"showcase.dev/internal/models"
)

// ErrNotFound is returned when no project matches a lookup
var ErrNotFound = errors.New("project not found")

// Catalog is an ordered, immutable sequence of projects
type Catalog struct {
	projects []models.Project
	index    map[string]int
}

// New builds a catalog from the given projects, preserving order.
// Missing IDs are derived from titles; duplicate IDs are an error.
func New(projects []models.Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]models.Project, 0, len(projects)),
		index:    make(map[string]int, len(projects)),
	}

	for i, p := range projects {
		p = p.Clone()
		if p.ID == "" {
			p.ID = Slugify(p.Title)
		}
		if p.ID == "" {
			return nil, fmt.Errorf("project %d: empty id and title", i)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("project %d: duplicate id %q", i, p.ID)
		}
		c.index[p.ID] = len(c.projects)
		c.projects = append(c.projects, p)
	}

	return c, nil
}

// Load reads a catalog from a YAML file shaped like models.ProjectList
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var list models.ProjectList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	c, err := New(list.Projects)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Len returns the number of projects
func (c *Catalog) Len() int {
	return len(c.projects)
}

// All returns a copy of every project in catalog order
func (c *Catalog) All() []models.Project {
	out := make([]models.Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = p.Clone()
	}
	return out
}

// At returns the project at position i
func (c *Catalog) At(i int) (models.Project, error) {
	if i < 0 || i >= len(c.projects) {
		return models.Project{}, fmt.Errorf("index %d: %w", i, ErrNotFound)
	}
	return c.projects[i].Clone(), nil
}

// Get returns the project with the given ID
func (c *Catalog) Get(id string) (models.Project, error) {
	i, ok := c.index[id]
	if !ok {
		return models.Project{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return c.projects[i].Clone(), nil
}

// List returns the catalog wrapped for serialization
func (c *Catalog) List() models.ProjectList {
	return models.ProjectList{Projects: c.All()}
}

// Marshal encodes the catalog as YAML, in the format Load reads
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(c.List())
}

// Slugify turns a title into a lowercase, dash-separated identifier
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}
