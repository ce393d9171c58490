package models

// Project represents a portfolio project card and its preview details
type Project struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Subtitle        string   `json:"subtitle" yaml:"subtitle"`
	Icon            string   `json:"icon" yaml:"icon"`
	Description     string   `json:"description" yaml:"description"`
	FullDescription string   `json:"full_description" yaml:"full_description"`
	TechStack       []string `json:"tech_stack" yaml:"tech_stack"`
	Features        []string `json:"features" yaml:"features"`
	Highlights      []string `json:"highlights" yaml:"highlights"`
	Gradient        string   `json:"gradient" yaml:"gradient"`
	DemoLink        string   `json:"demo_link" yaml:"demo_link"`
	Screenshot      string   `json:"screenshot" yaml:"screenshot"`
	GitHubLink      string   `json:"github_link,omitempty" yaml:"github_link,omitempty"`
}

// HasSource reports whether the project links to a source repository
func (p Project) HasSource() bool {
	return p.GitHubLink != ""
}

// Clone returns a copy that shares no slices with p
func (p Project) Clone() Project {
	c := p
	c.TechStack = cloneStrings(p.TechStack)
	c.Features = cloneStrings(p.Features)
	c.Highlights = cloneStrings(p.Highlights)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}
