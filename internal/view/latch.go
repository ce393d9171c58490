package view

// DefaultThreshold is the visible fraction of the section that arms the entrance
const DefaultThreshold = 0.1

// Latch is a one-shot visibility trigger. It arms on the first notification
// that reports the section intersecting the viewport by at least the
// threshold; every notification after that is ignored.
type Latch struct {
	armed bool
}

// Observe feeds one visibility notification and reports whether it armed the latch
func (l Latch) Observe(intersecting bool, ratio, threshold float64) (Latch, bool) {
	if l.armed || !intersecting || ratio < threshold {
		return l, false
	}
	return Latch{armed: true}, true
}

// Armed reports whether the entrance animation has been triggered
func (l Latch) Armed() bool {
	return l.armed
}
