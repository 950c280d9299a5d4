package chat

import (
	"context"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/great123-artV/GradeX/internal/assistant"
	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/router"
)

type fixedSummary struct{}

func (fixedSummary) Summary(context.Context) (*courses.Summary, error) {
	engine := grading.NewEngine(grading.NewClassifier(grading.BandTable{}))
	p := courses.Profile{Name: "Ada", Level: "100L", Semester: "1st"}
	return courses.Summarize(engine, p, []courses.Course{
		{Code: "MTH 101", Units: 3, Score: 72, Level: "100L", Semester: "1st"},
	}), nil
}

func newTestChat() *ChatScreen {
	r := assistant.NewResponder(grading.BandTable{}, rand.New(rand.NewPCG(1, 2)))
	a := assistant.New(fixedSummary{}, nil, nil, r, assistant.DefaultConfig(), nil)
	return New(a)
}

// deliver runs cmd and feeds any replyMsg it yields back to s.
func deliver(s *ChatScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			deliver(s, c)
		}
	case replyMsg:
		s.Update(msg)
	}
}

func TestWelcomeOnInit(t *testing.T) {
	s := newTestChat()
	deliver(s, s.Init())

	require.Len(t, s.turns, 1)
	assert.Contains(t, s.turns[0].text, "Ada")
	assert.False(t, s.waiting)
}

func TestSendAndReply(t *testing.T) {
	s := newTestChat()
	deliver(s, s.Init())

	s.input.SetValue("what is my cgpa?")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, s.waiting)
	assert.Empty(t, s.input.Value())

	deliver(s, cmd)
	require.Len(t, s.turns, 3)
	assert.True(t, s.turns[1].fromUser)
	assert.Contains(t, s.turns[2].text, "CGPA")
	assert.Len(t, s.conv.History, 2)
	assert.Contains(t, s.View(100, 30), "CGPA")
}

func TestEmptyMessageIgnored(t *testing.T) {
	s := newTestChat()
	deliver(s, s.Init())

	s.input.SetValue("   ")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Len(t, s.turns, 1)
}

func TestEscPops(t *testing.T) {
	s := newTestChat()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}
