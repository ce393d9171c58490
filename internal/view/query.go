package view

import (
	"net/url"

	"showcase.dev/internal/models"
)

// Query parameter names carrying the state between page loads
const (
	ParamProject = "project"
	ParamPreview = "preview"
	ParamEntered = "entered"
)

// Lookup resolves a project ID against the catalog
type Lookup func(id string) (models.Project, error)

// Decode rebuilds a State from query parameters. Unknown projects decode to
// closed and unknown modes to live, so stale links still render a page.
func Decode(q url.Values, lookup Lookup) State {
	var s State
	if q.Get(ParamEntered) == "1" {
		s = s.seen()
	}

	id := q.Get(ParamProject)
	if id == "" {
		return s
	}
	p, err := lookup(id)
	if err != nil {
		return s
	}

	s, _ = s.Select(p)
	if m, err := ParsePreviewMode(q.Get(ParamPreview)); err == nil {
		s, _ = s.SetMode(m)
	}
	return s
}

// Query encodes the state. The live mode, a missing selection and an
// unarmed latch are omitted.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.Entered() {
		q.Set(ParamEntered, "1")
	}
	if s.selected == nil {
		return q
	}
	q.Set(ParamProject, s.selected.ID)
	if s.Mode() != ModeLive {
		q.Set(ParamPreview, string(s.Mode()))
	}
	return q
}

// Href returns a link to path carrying the state, anchored on the section
func (s State) Href(path, fragment string) string {
	u := url.URL{Path: path, RawQuery: s.Query().Encode(), Fragment: fragment}
	return u.String()
}
