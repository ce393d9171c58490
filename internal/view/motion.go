package view

import (
	"fmt"
	"time"
)

// Pose is an animated element's opacity, vertical offset and scale
type Pose struct {
	Opacity float64
	Y       float64
	Scale   float64
}

// Transition is the timing of one animated element
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
	Ease     string
}

// Motion holds the entrance and modal animation parameters of the section
type Motion struct {
	Threshold float64
	Duration  time.Duration
	Stagger   time.Duration
	Ease      string
	Lift      float64

	Hidden      Pose
	ModalHidden Pose
}

// DefaultMotion matches the section's stock animation
func DefaultMotion() Motion {
	return Motion{
		Threshold:   DefaultThreshold,
		Duration:    600 * time.Millisecond,
		Stagger:     200 * time.Millisecond,
		Ease:        "ease-out",
		Lift:        -10,
		Hidden:      Pose{Opacity: 0, Y: 50, Scale: 1},
		ModalHidden: Pose{Opacity: 0, Y: 50, Scale: 0.8},
	}
}

// TitleTransition is the timing of the section heading
func (m Motion) TitleTransition() Transition {
	return Transition{Duration: m.Duration, Ease: m.Ease}
}

// CardTransition is the timing of the card at position i; delays grow linearly
func (m Motion) CardTransition(i int) Transition {
	if i < 0 {
		i = 0
	}
	return Transition{
		Duration: m.Duration,
		Delay:    time.Duration(i) * m.Stagger,
		Ease:     m.Ease,
	}
}

// Style renders the transition as CSS custom properties
func (t Transition) Style() string {
	return fmt.Sprintf("--enter-duration: %s; --enter-delay: %s; --enter-ease: %s;",
		seconds(t.Duration), seconds(t.Delay), t.Ease)
}

// Style renders the pose as CSS custom properties with the given prefix
func (p Pose) Style(prefix string) string {
	return fmt.Sprintf("--%s-opacity: %g; --%s-y: %gpx; --%s-scale: %g;",
		prefix, p.Opacity, prefix, p.Y, prefix, p.Scale)
}

// RootStyle renders the section-wide animation variables
func (m Motion) RootStyle() string {
	return fmt.Sprintf("%s %s --hover-lift: %gpx;",
		m.Hidden.Style("from"), m.ModalHidden.Style("modal-from"), m.Lift)
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%gs", d.Seconds())
}
