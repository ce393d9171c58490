package render

import (
	"html/template"

	"showcase.dev/internal/models"
	"showcase.dev/internal/view"
)

// SectionData is the template input for the projects section
type SectionData struct {
	ID         string
	AssetPath  string
	Fragment   string
	Title      string
	Subtitle   string
	Threshold  float64
	RootStyle  template.CSS
	TitleStyle template.CSS
	InView     bool
	Inert      bool
	Cards      []CardData
	Modal      *ModalData
}

// CardData is one grid card. Href is empty while the modal is open.
type CardData struct {
	Index     int
	Project   models.Project
	Href      string
	Style     template.CSS
	GlowStyle template.CSS
}

// ToggleData is one preview mode control
type ToggleData struct {
	Mode   view.PreviewMode
	Icon   string
	Label  string
	Href   string
	Active bool
}

// ActionData is an outbound action button in the details panel
type ActionData struct {
	Link  view.ExternalLink
	Icon  string
	Class string
}

// ModalData is the open preview modal
type ModalData struct {
	Project    models.Project
	Phase      view.Phase
	CloseHref  string
	Toggles    []ToggleData
	About      template.HTML
	Sandbox    string
	Notice     string
	Demo       view.ExternalLink
	Screenshot *view.Image
	Actions    []ActionData
}

// Live reports whether the live frame is shown
func (m *ModalData) Live() bool {
	return m.Phase == view.PhaseOpenLive
}
