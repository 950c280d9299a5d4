package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/llm"
	"github.com/great123-artV/GradeX/internal/store"
)

type fixedSummary struct {
	sum *courses.Summary
	err error
}

func (f fixedSummary) Summary(context.Context) (*courses.Summary, error) {
	return f.sum, f.err
}

func testSummary() fixedSummary {
	all := []courses.Course{
		{Code: "A 101", Title: "A", Units: 3, Score: 70, Level: "100L", Semester: "1st"},
		{Code: "B 101", Title: "B", Units: 2, Score: 45, Level: "100L", Semester: "1st"},
		{Code: "F 103", Title: "F", Units: 2, Score: 30, Level: "100L", Semester: "1st"},
	}
	p := courses.Profile{Name: "Ada", Level: "100L", Semester: "1st"}
	return fixedSummary{sum: courses.Summarize(grading.NewEngine(grading.Classifier{}), p, all)}
}

// chatLog records chat turns; the other EventRepo methods are unused.
type chatLog struct {
	store.EventRepo

	mu   sync.Mutex
	msgs []store.ChatMessageData
	err  error
}

func (c *chatLog) AppendChatMessage(_ context.Context, data store.ChatMessageData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.msgs = append(c.msgs, data)
	return nil
}

func (c *chatLog) QueryChatMessages(_ context.Context, sessionID string, opts store.QueryOpts) ([]store.ChatMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []store.ChatMessage
	for i, m := range c.msgs {
		if sessionID == "" || m.SessionID == sessionID {
			out = append(out, store.ChatMessage{ID: i + 1, Sequence: int64(i + 1), ChatMessageData: m})
		}
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[len(out)-opts.Limit:]
	}
	return out, nil
}

func newTestAssistant(provider llm.Provider, events store.EventRepo) *Assistant {
	r := NewResponder(grading.BandTable{}, rand.New(rand.NewPCG(7, 7)))
	return New(testSummary(), provider, events, r, DefaultConfig(), nil)
}

func TestReply_UsesModel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"reply":"Your CGPA is 2.71. Clearing F 103 lifts it.","topic":"gpa"}`),
	})
	log := &chatLog{}
	a := newTestAssistant(mock, log)

	got, err := a.Reply(t.Context(), "s1", nil, "  how do I raise my cgpa?  ")
	require.NoError(t, err)

	assert.Equal(t, "Your CGPA is 2.71. Clearing F 103 lifts it.", got.Text)
	assert.Equal(t, TopicGPA, got.Topic)
	assert.Equal(t, SourceLLM, got.Source)
	assert.Equal(t, MoodConfused, got.Mood)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, ReplySchema, req.Schema)
	assert.Contains(t, req.System, "Student name: Ada")
	assert.Contains(t, req.System, "Current CGPA: 2.71 (Second Class Lower)")
	assert.Contains(t, req.System, "Carryovers: 1")
	assert.Contains(t, req.System, "F: 0-39 = 0.0 points")
	assert.Contains(t, req.System, "Semester GPA: 19.00 / 7 = 2.71")
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "how do I raise my cgpa?", req.Messages[0].Content)

	require.Len(t, log.msgs, 2)
	assert.Equal(t, store.ChatMessageData{SessionID: "s1", Role: "user", Content: "how do I raise my cgpa?", Mood: "confused"}, log.msgs[0])
	assert.Equal(t, "assistant", log.msgs[1].Role)
	assert.Equal(t, SourceLLM, log.msgs[1].Source)
}

func TestReply_FallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	log := &chatLog{}
	a := newTestAssistant(mock, log)

	got, err := a.Reply(t.Context(), "s1", nil, "what's my gpa")
	require.NoError(t, err)

	assert.Equal(t, SourceTemplate, got.Source)
	assert.Equal(t, TopicGPA, got.Topic)
	assert.Contains(t, got.Text, "Your current CGPA is 2.71 Ada")
	require.Len(t, log.msgs, 2)
	assert.Equal(t, SourceTemplate, log.msgs[1].Source)
}

func TestReply_FallsBackOnInvalidOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"reply":"hi","topic":"weather"}`)})
	a := newTestAssistant(mock, nil)

	got, err := a.Reply(t.Context(), "s1", nil, "hello")
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, got.Source)
	assert.Equal(t, TopicGreeting, got.Topic)
}

func TestReply_WithoutProvider(t *testing.T) {
	a := newTestAssistant(nil, nil)
	assert.False(t, a.HasModel())

	got, err := a.Reply(t.Context(), "", nil, "who are you")
	require.NoError(t, err)
	assert.Equal(t, TopicIdentity, got.Topic)
}

func TestReply_EmptyMessage(t *testing.T) {
	a := newTestAssistant(nil, nil)
	_, err := a.Reply(t.Context(), "", nil, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestReply_CanceledContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: context.Canceled})
	a := newTestAssistant(mock, nil)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := a.Reply(ctx, "", nil, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReply_SummaryError(t *testing.T) {
	a := New(fixedSummary{err: errors.New("disk gone")}, nil, nil, nil, DefaultConfig(), nil)
	_, err := a.Reply(t.Context(), "", nil, "hello")
	assert.ErrorContains(t, err, "disk gone")
}

func TestReply_LogFailureDoesNotFail(t *testing.T) {
	a := newTestAssistant(nil, &chatLog{err: errors.New("locked")})
	got, err := a.Reply(t.Context(), "s", nil, "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, got.Text)
}

func TestReply_TrimsHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"reply":"ok","topic":"general"}`)})
	a := newTestAssistant(mock, nil)
	a.cfg.HistoryLimit = 2

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "one"},
		{Role: llm.RoleAssistant, Content: "two"},
		{Role: llm.RoleUser, Content: "three"},
		{Role: llm.RoleAssistant, Content: "four"},
	}
	_, err := a.Reply(t.Context(), "", history, "five")
	require.NoError(t, err)

	msgs := mock.Calls[0].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, "three", msgs[0].Content)
	assert.Equal(t, "five", msgs[2].Content)
}

func TestConversation_SendAndHistory(t *testing.T) {
	log := &chatLog{}
	a := newTestAssistant(nil, log)
	conv := a.Start()
	require.NotEmpty(t, conv.ID)

	_, err := conv.Send(t.Context(), "hello")
	require.NoError(t, err)
	_, err = conv.Send(t.Context(), "thanks")
	require.NoError(t, err)
	assert.Len(t, conv.History, 4)

	stored, err := a.History(t.Context(), conv.ID, 3)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, llm.RoleAssistant, stored[0].Role)
	assert.Equal(t, "thanks", stored[1].Content)
}

func TestWelcome_FromSummary(t *testing.T) {
	a := newTestAssistant(nil, nil)
	got, err := a.Welcome(t.Context())
	require.NoError(t, err)
	assert.Contains(t, got.Text, "Hello Ada")
	assert.Contains(t, got.Text, "2.71 with 1 carryover")
}
