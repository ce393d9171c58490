// Package view models the local UI state of the projects section: which
// project is open in the preview modal, how it is previewed, and the
// animation parameters the page is rendered with.
//
// State is a value. Transitions return a new State and never modify the
// receiver, so a single decoded state can safely derive the target of every
// control on the page.
package view

import (
	"errors"
	"fmt"

	"showcase.dev/internal/models"
)

var (
	// ErrAlreadyOpen is returned when selecting a project while another is open
	ErrAlreadyOpen = errors.New("a project is already open")
	// ErrClosed is returned when changing the preview mode with no project open
	ErrClosed = errors.New("no project is open")
	// ErrUnknownMode is returned for preview modes other than live and screenshot
	ErrUnknownMode = errors.New("unknown preview mode")
)

// PreviewMode selects how the open project is previewed
type PreviewMode string

const (
	ModeLive       PreviewMode = "live"
	ModeScreenshot PreviewMode = "screenshot"
)

// ParsePreviewMode validates a preview mode string
func ParsePreviewMode(s string) (PreviewMode, error) {
	switch PreviewMode(s) {
	case ModeLive, ModeScreenshot:
		return PreviewMode(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

// Phase is the rendered shape of a State
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpenLive
	PhaseOpenScreenshot
)

func (p Phase) String() string {
	switch p {
	case PhaseOpenLive:
		return "open-live"
	case PhaseOpenScreenshot:
		return "open-screenshot"
	default:
		return "closed"
	}
}

// State is the selection and preview mode of the projects section, plus
// the entrance latch of the grid. The zero value is closed with the live
// mode and the entrance not yet played.
type State struct {
	selected *models.Project
	mode     PreviewMode
	entrance Latch
}

// Entered reports whether the grid's entrance animation has already played
func (s State) Entered() bool {
	return s.entrance.Armed()
}

// Observe feeds a visibility notification of the section to the entrance latch.
// It reports whether this notification armed it.
func (s State) Observe(intersecting bool, ratio, threshold float64) (State, bool) {
	var armed bool
	s.entrance, armed = s.entrance.Observe(intersecting, ratio, threshold)
	return s, armed
}

// seen arms the latch for a state reached by interacting with the visible grid
func (s State) seen() State {
	s, _ = s.Observe(true, 1, 0)
	return s
}

// Selected returns the open project, if any
func (s State) Selected() (models.Project, bool) {
	if s.selected == nil {
		return models.Project{}, false
	}
	return s.selected.Clone(), true
}

// IsOpen reports whether a project is selected
func (s State) IsOpen() bool {
	return s.selected != nil
}

// Mode returns the preview mode, defaulting to live
func (s State) Mode() PreviewMode {
	if s.mode == "" {
		return ModeLive
	}
	return s.mode
}

// Phase folds selection and mode into one value for rendering
func (s State) Phase() Phase {
	switch {
	case s.selected == nil:
		return PhaseClosed
	case s.Mode() == ModeScreenshot:
		return PhaseOpenScreenshot
	default:
		return PhaseOpenLive
	}
}

// Select opens the modal for p in live mode.
// Only a closed state accepts a selection. A card can only be clicked once
// the grid is on screen, so selecting also arms the entrance latch.
func (s State) Select(p models.Project) (State, error) {
	if s.selected != nil {
		return s, ErrAlreadyOpen
	}
	p = p.Clone()
	return State{selected: &p, mode: ModeLive, entrance: s.entrance}.seen(), nil
}

// Close dismisses the modal and resets the preview mode. The entrance latch stays armed.
func (s State) Close() State {
	return State{mode: ModeLive, entrance: s.entrance}
}

// SetMode switches the preview mode of the open project
func (s State) SetMode(m PreviewMode) (State, error) {
	if _, err := ParsePreviewMode(string(m)); err != nil {
		return s, err
	}
	if s.selected == nil {
		return s, ErrClosed
	}
	return State{selected: s.selected, mode: m, entrance: s.entrance}, nil
}
