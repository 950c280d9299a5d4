package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/great123-artV/GradeX/internal/router"
	"github.com/great123-artV/GradeX/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestPhases(t *testing.T) {
	w, _ := newTestWelcome()

	assert.NotContains(t, w.View(100, 30), tagline)

	sendTicks(w, int(taglineAt/tickInterval))
	assert.Contains(t, w.View(100, 30), tagline)
	assert.NotContains(t, w.View(100, 30), "press any key")

	sendTicks(w, int((totalDur-taglineAt)/tickInterval))
	assert.Contains(t, w.View(100, 30), "press any key")
}

func TestTicksStopAfterAnimation(t *testing.T) {
	w, calls := newTestWelcome()

	cmd := sendTicks(w, 40)
	assert.Nil(t, cmd)
	assert.Equal(t, totalDur, w.elapsed)
	assert.Zero(t, *calls, "factory must wait for a key press")
}

func TestKeypressReplacesWithHome(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Home", msg.Screen.Title())
	assert.Equal(t, 1, *calls)

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'b'})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, *calls)
}

func TestCompactBanner(t *testing.T) {
	assert.Contains(t, RenderBanner(40), bannerCompact)
	assert.False(t, strings.Contains(RenderBanner(120), bannerCompact))
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	assert.Empty(t, w.Title())
}
