package render

import (
	"io/fs"
	"path"
	"strings"

	"showcase.dev/internal/view"
)

// ScreenshotResolver decides which source a screenshot is rendered with.
// Screenshots under the local public directory are checked up front and
// replaced by the placeholder when missing; remote ones are left to the
// browser's error handler.
type ScreenshotResolver struct {
	public      fs.FS
	placeholder string
}

// NewScreenshotResolver returns a resolver checking local paths against public.
// A nil public skips the check.
func NewScreenshotResolver(public fs.FS, placeholder string) *ScreenshotResolver {
	return &ScreenshotResolver{public: public, placeholder: placeholder}
}

// Resolve returns the image to render for src
func (r *ScreenshotResolver) Resolve(src string) *view.Image {
	img := view.NewImage(src, r.placeholder)
	if src == "" {
		img.Fail()
		return img
	}

	name, local := localName(src)
	if !local || r.public == nil {
		return img
	}
	if _, err := fs.Stat(r.public, name); err != nil {
		img.Fail()
	}
	return img
}

// localName maps a root-relative URL path to a name inside the public FS
func localName(src string) (string, bool) {
	if !strings.HasPrefix(src, "/") || strings.HasPrefix(src, "//") {
		return "", false
	}
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	name := strings.TrimPrefix(path.Clean(src), "/")
	if name == "" || !fs.ValidPath(name) {
		return "", false
	}
	return name, true
}
