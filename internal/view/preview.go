package view

// PlaceholderURL is shown when a screenshot can not be loaded
const PlaceholderURL = "https://via.placeholder.com/1200x800/667eea/ffffff?text=Screenshot+Not+Found"

// FrameSandbox is the capability set granted to embedded live previews
const FrameSandbox = "allow-scripts allow-same-origin allow-forms allow-popups"

// EmbedNotice is shown over every live preview since framing refusals
// can not be detected from the embedding page
const EmbedNotice = "⚠️ If preview doesn't load, the site may not allow embedding."

// Image is a screenshot with a one-time fallback to a placeholder
type Image struct {
	Src         string
	Placeholder string
	failed      bool
}

// NewImage returns an image for src falling back to placeholder.
// An empty placeholder means PlaceholderURL.
func NewImage(src, placeholder string) *Image {
	if placeholder == "" {
		placeholder = PlaceholderURL
	}
	return &Image{Src: src, Placeholder: placeholder}
}

// Fail records a load failure
func (i *Image) Fail() {
	i.failed = true
}

// Effective returns the source the page should display
func (i *Image) Effective() string {
	if i.failed || i.Src == "" {
		return i.Placeholder
	}
	return i.Src
}

// ExternalLink opens in a new browsing context without leaking the opener or referrer
type ExternalLink struct {
	Href  string
	Label string
}

// Target is the browsing context of external links
func (ExternalLink) Target() string { return "_blank" }

// Rel is the relationship of external links
func (ExternalLink) Rel() string { return "noopener noreferrer" }
