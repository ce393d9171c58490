// Package snapshot writes every state of the projects section as static
// HTML files, linked to each other, for hosting without the server.
package snapshot

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"showcase.dev/internal/catalog"
	"showcase.dev/internal/render"
	"showcase.dev/internal/view"
)

// IndexFile is the page of the closed state
const IndexFile = "index.html"

// FileName returns the file a state is written to
func FileName(s view.State) string {
	p, ok := s.Selected()
	if !ok {
		return IndexFile
	}
	if s.Mode() == view.ModeScreenshot {
		return p.ID + "-screenshot.html"
	}
	return p.ID + ".html"
}

// Link points a state at its file, anchored on the section
func Link(s view.State) string {
	return FileName(s) + "#" + render.SectionID
}

// Result summarizes a snapshot run
type Result struct {
	Pages  []string
	Assets int
}

// Write renders the closed state and both preview modes of every project
// into dir, then copies static assets into dir/static.
func Write(dir string, cat *catalog.Catalog, opts render.Options, static fs.FS) (*Result, error) {
	opts.Link = Link
	opts.AssetPath = "static/"
	r, err := render.New(opts)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	projects := cat.All()
	states := []view.State{{}}
	for _, p := range projects {
		live, err := view.State{}.Select(p)
		if err != nil {
			return nil, err
		}
		shot, err := live.SetMode(view.ModeScreenshot)
		if err != nil {
			return nil, err
		}
		states = append(states, live, shot)
	}

	res := &Result{}
	for _, s := range states {
		var buf bytes.Buffer
		if err := r.Page(&buf, projects, s); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", FileName(s), err)
		}
		name := FileName(s)
		if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}
		res.Pages = append(res.Pages, name)
	}

	data, err := cat.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "catalog.yml"), data, 0644); err != nil {
		return nil, fmt.Errorf("writing catalog: %w", err)
	}

	if static != nil {
		n, err := copyFS(filepath.Join(dir, "static"), static)
		if err != nil {
			return nil, fmt.Errorf("copying assets: %w", err)
		}
		res.Assets = n
	}

	return res, nil
}

func copyFS(dst string, src fs.FS) (int, error) {
	n := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		n++
		return os.WriteFile(target, data, 0644)
	})
	return n, err
}
