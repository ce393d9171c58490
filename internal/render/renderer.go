// Package render turns the catalog and a view.State into HTML.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"

	"showcase.dev/internal/models"
	"showcase.dev/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// SectionID is the fragment every state link points back to
const SectionID = "projects"

// Linker returns the URL that leads to a state
type Linker func(view.State) string

// QueryLinker links states through query parameters on path
func QueryLinker(path string) Linker {
	return func(s view.State) string {
		return s.Href(path, SectionID)
	}
}

// Options configures a Renderer. When FragmentPath is set, the page script
// swaps the section fetched from it in place instead of following state links.
type Options struct {
	Title        string
	Subtitle     string
	AssetPath    string
	FragmentPath string
	Link         Linker
	Motion       view.Motion
	Resolver     *ScreenshotResolver
}

// Renderer renders the projects section. It is safe for concurrent use.
type Renderer struct {
	opts Options
	tmpl *template.Template
	md   goldmark.Markdown
}

// New parses the embedded templates
func New(opts Options) (*Renderer, error) {
	if opts.Link == nil {
		opts.Link = QueryLinker("/")
	}
	if opts.AssetPath == "" {
		opts.AssetPath = "/static/"
	}
	if opts.Resolver == nil {
		opts.Resolver = NewScreenshotResolver(nil, "")
	}

	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Renderer{opts: opts, tmpl: tmpl, md: newMarkdown()}, nil
}

// Page writes the full HTML document
func (r *Renderer) Page(w io.Writer, projects []models.Project, s view.State) error {
	data, err := r.Section(projects, s)
	if err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "page", data)
}

// Fragment writes the section alone
func (r *Renderer) Fragment(w io.Writer, projects []models.Project, s view.State) error {
	data, err := r.Section(projects, s)
	if err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "section", data)
}

// Section builds the template data for the given catalog and state
func (r *Renderer) Section(projects []models.Project, s view.State) (*SectionData, error) {
	m := r.opts.Motion
	data := &SectionData{
		ID:         SectionID,
		AssetPath:  r.opts.AssetPath,
		Fragment:   r.opts.FragmentPath,
		Title:      r.opts.Title,
		Subtitle:   r.opts.Subtitle,
		Threshold:  m.Threshold,
		RootStyle:  template.CSS(m.RootStyle()),
		TitleStyle: template.CSS(m.TitleTransition().Style()),
		InView:     s.Entered(),
		Inert:      s.IsOpen(),
		Cards:      make([]CardData, 0, len(projects)),
	}

	for i, p := range projects {
		card := CardData{
			Index:     i,
			Project:   p,
			Style:     template.CSS(m.CardTransition(i).Style()),
			GlowStyle: glowStyle(p.Gradient),
		}
		if next, err := s.Select(p); err == nil {
			card.Href = r.opts.Link(next)
		}
		data.Cards = append(data.Cards, card)
	}

	if p, ok := s.Selected(); ok {
		modal, err := r.modal(p, s)
		if err != nil {
			return nil, err
		}
		data.Modal = modal
	}

	return data, nil
}

func (r *Renderer) modal(p models.Project, s view.State) (*ModalData, error) {
	about, err := markdownHTML(r.md, p.FullDescription)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", p.ID, err)
	}

	live, _ := s.SetMode(view.ModeLive)
	shot, _ := s.SetMode(view.ModeScreenshot)
	link := r.opts.Link

	m := &ModalData{
		Project:   p,
		Phase:     s.Phase(),
		CloseHref: link(s.Close()),
		Toggles: []ToggleData{
			{Mode: view.ModeLive, Icon: "🌐", Label: "Live Preview", Href: link(live), Active: s.Mode() == view.ModeLive},
			{Mode: view.ModeScreenshot, Icon: "📸", Label: "Screenshot", Href: link(shot), Active: s.Mode() == view.ModeScreenshot},
		},
		About:   about,
		Sandbox: view.FrameSandbox,
		Notice:  view.EmbedNotice,
		Demo:    view.ExternalLink{Href: p.DemoLink, Label: "Open in New Tab →"},
		Actions: []ActionData{
			{Link: view.ExternalLink{Href: p.DemoLink, Label: "Open Live Site"}, Icon: "🚀", Class: "btn-primary"},
		},
	}
	if p.HasSource() {
		m.Actions = append(m.Actions, ActionData{
			Link:  view.ExternalLink{Href: p.GitHubLink, Label: "View Code"},
			Icon:  "💻",
			Class: "btn-outline",
		})
	}
	if s.Phase() == view.PhaseOpenScreenshot {
		m.Screenshot = r.opts.Resolver.Resolve(p.Screenshot)
	}

	return m, nil
}
