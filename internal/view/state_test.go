package view

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase.dev/internal/models"
)

var (
	projA = models.Project{ID: "a", Title: "A", DemoLink: "http://a", Screenshot: "/a.png"}
	projB = models.Project{ID: "b", Title: "B", DemoLink: "http://b", Screenshot: "/b.png"}
)

func lookup(id string) (models.Project, error) {
	switch id {
	case "a":
		return projA, nil
	case "b":
		return projB, nil
	}
	return models.Project{}, errors.New("missing")
}

func TestZeroStateIsClosedLive(t *testing.T) {
	var s State
	assert.False(t, s.IsOpen())
	assert.Equal(t, ModeLive, s.Mode())
	assert.Equal(t, PhaseClosed, s.Phase())
}

func TestSelectOpensLive(t *testing.T) {
	s, err := State{}.Select(projA)
	require.NoError(t, err)

	p, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", p.ID)
	assert.Equal(t, ModeLive, s.Mode())
	assert.Equal(t, PhaseOpenLive, s.Phase())
}

func TestSelectWhileOpenIsRejected(t *testing.T) {
	s, _ := State{}.Select(projA)

	next, err := s.Select(projB)
	assert.ErrorIs(t, err, ErrAlreadyOpen)

	p, _ := next.Selected()
	assert.Equal(t, "a", p.ID)
}

func TestModeDoesNotSurviveClose(t *testing.T) {
	s, _ := State{}.Select(projA)
	s, err := s.SetMode(ModeScreenshot)
	require.NoError(t, err)
	assert.Equal(t, PhaseOpenScreenshot, s.Phase())

	s = s.Close()
	assert.False(t, s.IsOpen())
	assert.Equal(t, ModeLive, s.Mode())

	s, err = s.Select(projB)
	require.NoError(t, err)
	assert.Equal(t, ModeLive, s.Mode())
}

func TestSetModeKeepsSelection(t *testing.T) {
	open, _ := State{}.Select(projA)

	shot, err := open.SetMode(ModeScreenshot)
	require.NoError(t, err)
	back, err := shot.SetMode(ModeLive)
	require.NoError(t, err)

	p, _ := back.Selected()
	assert.Equal(t, projA, p)
	assert.Equal(t, open, back)

	// setting the current value again is not a toggle
	again, err := shot.SetMode(ModeScreenshot)
	require.NoError(t, err)
	assert.Equal(t, ModeScreenshot, again.Mode())
}

func TestSetModeErrors(t *testing.T) {
	_, err := State{}.SetMode(ModeScreenshot)
	assert.ErrorIs(t, err, ErrClosed)

	open, _ := State{}.Select(projA)
	same, err := open.SetMode("fullscreen")
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Equal(t, open, same)
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	open, _ := State{}.Select(projA)
	_, _ = open.SetMode(ModeScreenshot)
	_ = open.Close()

	assert.True(t, open.IsOpen())
	assert.Equal(t, ModeLive, open.Mode())
}

func TestSelectedIsACopy(t *testing.T) {
	p := models.Project{ID: "a", TechStack: []string{"Go"}}
	s, _ := State{}.Select(p)
	p.TechStack[0] = "changed"

	got, _ := s.Selected()
	assert.Equal(t, "Go", got.TechStack[0])
}

func TestQueryRoundTrip(t *testing.T) {
	open, _ := State{}.Select(projB)
	shot, _ := open.SetMode(ModeScreenshot)

	for _, s := range []State{{}, open, shot} {
		got := Decode(s.Query(), lookup)
		assert.Equal(t, s.Phase(), got.Phase())
		assert.Equal(t, s.Query(), got.Query())
	}

	assert.Equal(t, "entered=1&preview=screenshot&project=b", shot.Query().Encode())
	assert.Equal(t, "entered=1&project=b", open.Query().Encode())
	assert.Equal(t, "entered=1", open.Close().Query().Encode())
	assert.Equal(t, "", State{}.Query().Encode())
}

func TestDecodeTolerance(t *testing.T) {
	s := Decode(url.Values{ParamProject: {"zzz"}}, lookup)
	assert.False(t, s.IsOpen())

	s = Decode(url.Values{ParamPreview: {"screenshot"}}, lookup)
	assert.Equal(t, PhaseClosed, s.Phase())

	s = Decode(url.Values{ParamProject: {"a"}, ParamPreview: {"bogus"}}, lookup)
	assert.Equal(t, PhaseOpenLive, s.Phase())
}

func TestHref(t *testing.T) {
	open, _ := State{}.Select(projA)
	assert.Equal(t, "/?entered=1&project=a#projects", open.Href("/", "projects"))
	assert.Equal(t, "/?entered=1#projects", open.Close().Href("/", "projects"))
	assert.Equal(t, "/#projects", State{}.Href("/", "projects"))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "closed", PhaseClosed.String())
	assert.Equal(t, "open-live", PhaseOpenLive.String())
	assert.Equal(t, "open-screenshot", PhaseOpenScreenshot.String())
}

func TestEntranceLatchSurvivesTransitions(t *testing.T) {
	var s State
	assert.False(t, s.Entered())

	open, err := s.Select(projA)
	require.NoError(t, err)
	assert.True(t, open.Entered())

	shot, _ := open.SetMode(ModeScreenshot)
	assert.True(t, shot.Entered())
	assert.True(t, shot.Close().Entered())

	_, armed := shot.Close().Observe(true, 1, DefaultThreshold)
	assert.False(t, armed)
}

func TestObserveArmsStateOnce(t *testing.T) {
	s, armed := State{}.Observe(true, 0.5, DefaultThreshold)
	assert.True(t, armed)
	assert.True(t, s.Entered())

	s, armed = s.Observe(false, 0, DefaultThreshold)
	assert.False(t, armed)
	s, armed = s.Observe(true, 0.5, DefaultThreshold)
	assert.False(t, armed)
	assert.True(t, s.Entered())
	assert.Equal(t, PhaseClosed, s.Phase())
}

func TestDecodeEntered(t *testing.T) {
	assert.True(t, Decode(url.Values{ParamEntered: {"1"}}, lookup).Entered())
	assert.False(t, Decode(url.Values{ParamEntered: {"yes"}}, lookup).Entered())
	assert.False(t, Decode(url.Values{}, lookup).Entered())

	// a selection carried in the URL was made from a visible grid
	assert.True(t, Decode(url.Values{ParamProject: {"a"}}, lookup).Entered())
}
