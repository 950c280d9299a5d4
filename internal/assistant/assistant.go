// Package assistant is the chat companion: it answers questions about the
// student's results with a language model when one is configured, and from
// templates otherwise. Every exchange is appended to the chat log.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/llm"
	"github.com/great123-artV/GradeX/internal/logging"
	"github.com/great123-artV/GradeX/internal/store"
)

// ErrEmptyMessage is returned for a blank chat message.
var ErrEmptyMessage = errors.New("message is empty")

// Reply sources.
const (
	SourceLLM      = "llm"
	SourceTemplate = "template"
)

// Reply is one assistant answer.
type Reply struct {
	Text   string `json:"reply"`
	Topic  Topic  `json:"topic"`
	Mood   Mood   `json:"mood"`
	Source string `json:"source"`
}

// SummarySource supplies the student's current standing.
type SummarySource interface {
	Summary(ctx context.Context) (*courses.Summary, error)
}

// Config tunes model calls.
type Config struct {
	MaxTokens   int
	Temperature float64

	// HistoryLimit caps how many earlier turns are sent with each request.
	HistoryLimit int
}

// DefaultConfig returns the chat defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    800,
		Temperature:  0.4,
		HistoryLimit: 20,
	}
}

// Assistant answers chat messages.
type Assistant struct {
	source    SummarySource
	provider  llm.Provider
	events    store.EventRepo
	responder *Responder
	table     grading.BandTable
	cfg       Config
	logger    log.Logger
}

// New returns an assistant. provider and events may be nil: without a
// provider every reply is templated, without events nothing is logged.
func New(source SummarySource, provider llm.Provider, events store.EventRepo, responder *Responder, cfg Config, logger log.Logger) *Assistant {
	if responder == nil {
		responder = NewResponder(grading.BandTable{}, nil)
	}
	return &Assistant{
		source:    source,
		provider:  provider,
		events:    events,
		responder: responder,
		table:     responder.table,
		cfg:       cfg,
		logger:    logging.Component(logger, "assistant"),
	}
}

// HasModel reports whether replies come from a language model.
func (a *Assistant) HasModel() bool {
	return a.provider != nil
}

// NewSessionID returns a fresh chat session ID.
func NewSessionID() string {
	return uuid.NewString()
}

// Welcome returns the opening message for a chat.
func (a *Assistant) Welcome(ctx context.Context) (Reply, error) {
	uc, err := a.userContext(ctx)
	if err != nil {
		return Reply{}, err
	}
	return a.responder.Welcome(uc), nil
}

// Reply answers message given the earlier turns of the conversation and
// records both turns under sessionID. A model failure falls back to the
// templated responder; only a canceled context or an unreadable record is
// returned as an error.
func (a *Assistant) Reply(ctx context.Context, sessionID string, history []llm.Message, message string) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, ErrEmptyMessage
	}
	uc, err := a.userContext(ctx)
	if err != nil {
		return Reply{}, err
	}

	reply, err := a.generate(ctx, uc, history, message)
	if err != nil {
		if ctx.Err() != nil {
			return Reply{}, ctx.Err()
		}
		level.Warn(a.logger).Log("msg", "model reply failed, using template", "err", err)
		reply = a.responder.Respond(message, uc)
	}

	a.record(ctx, store.ChatMessageData{
		SessionID: sessionID,
		Role:      string(llm.RoleUser),
		Content:   message,
		Mood:      string(reply.Mood),
	})
	a.record(ctx, store.ChatMessageData{
		SessionID: sessionID,
		Role:      string(llm.RoleAssistant),
		Content:   reply.Text,
		Source:    reply.Source,
	})
	return reply, nil
}

// History loads a session's recorded turns as model messages, oldest
// first, keeping at most limit of the most recent.
func (a *Assistant) History(ctx context.Context, sessionID string, limit int) ([]llm.Message, error) {
	if a.events == nil {
		return nil, nil
	}
	msgs, err := a.events.QueryChatMessages(ctx, sessionID, store.QueryOpts{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("loading chat history: %w", err)
	}
	out := make([]llm.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, llm.Message{Role: llm.Role(m.Role), Content: m.Content})
	}
	return out, nil
}

func (a *Assistant) generate(ctx context.Context, uc UserContext, history []llm.Message, message string) (Reply, error) {
	if a.provider == nil {
		return a.responder.Respond(message, uc), nil
	}

	if n := a.cfg.HistoryLimit; n > 0 && len(history) > n {
		history = history[len(history)-n:]
	}
	msgs := make([]llm.Message, 0, len(history)+1)
	msgs = append(msgs, history...)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: message})

	req := llm.Request{
		System:      systemPrompt(a.table, uc),
		Messages:    msgs,
		Schema:      ReplySchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}
	resp, err := a.provider.Generate(llm.WithPurpose(ctx, llm.PurposeChat), req)
	if err != nil {
		return Reply{}, fmt.Errorf("chat generation: %w", err)
	}

	var out replyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Reply{}, fmt.Errorf("parse chat reply: %w", err)
	}
	return Reply{
		Text:   strings.TrimSpace(out.Reply),
		Topic:  Topic(out.Topic),
		Mood:   DetectMood(message),
		Source: SourceLLM,
	}, nil
}

func (a *Assistant) userContext(ctx context.Context) (UserContext, error) {
	s, err := a.source.Summary(ctx)
	if err != nil {
		return UserContext{}, fmt.Errorf("loading student record: %w", err)
	}
	return NewUserContext(s), nil
}

func (a *Assistant) record(ctx context.Context, data store.ChatMessageData) {
	if a.events == nil {
		return
	}
	if err := a.events.AppendChatMessage(ctx, data); err != nil {
		level.Warn(a.logger).Log("msg", "failed to record chat message", "role", data.Role, "err", err)
	}
}

// Conversation tracks one chat session in memory.
type Conversation struct {
	ID      string
	History []llm.Message

	assistant *Assistant
}

// Start opens a new conversation.
func (a *Assistant) Start() *Conversation {
	return &Conversation{ID: NewSessionID(), assistant: a}
}

// Send replies to message and appends both turns to the history.
func (c *Conversation) Send(ctx context.Context, message string) (Reply, error) {
	reply, err := c.assistant.Reply(ctx, c.ID, c.History, message)
	if err != nil {
		return reply, err
	}
	c.History = append(c.History,
		llm.Message{Role: llm.RoleUser, Content: strings.TrimSpace(message)},
		llm.Message{Role: llm.RoleAssistant, Content: reply.Text},
	)
	return reply, nil
}
