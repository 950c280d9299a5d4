// Package chat is the terminal front end for the smart assistant.
package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/great123-artV/GradeX/internal/assistant"
	"github.com/great123-artV/GradeX/internal/router"
	"github.com/great123-artV/GradeX/internal/screen"
	"github.com/great123-artV/GradeX/internal/ui/components"
	"github.com/great123-artV/GradeX/internal/ui/layout"
	"github.com/great123-artV/GradeX/internal/ui/theme"
)

const maxMessageLen = 500

type replyMsg struct {
	Reply assistant.Reply
	Err   error
}

type turn struct {
	fromUser bool
	text     string
}

// ChatScreen holds one conversation.
type ChatScreen struct {
	asst    *assistant.Assistant
	conv    *assistant.Conversation
	input   components.TextInput
	turns   []turn
	waiting bool
	errMsg  string
}

var (
	_ screen.Screen          = (*ChatScreen)(nil)
	_ screen.KeyHintProvider = (*ChatScreen)(nil)
)

// New starts a conversation with asst.
func New(asst *assistant.Assistant) *ChatScreen {
	return &ChatScreen{
		asst:  asst,
		conv:  asst.Start(),
		input: components.NewTextInput("", "Ask about your GPA, study plans, where to find help...", components.AnyText, maxMessageLen),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	asst := s.asst
	welcome := func() tea.Msg {
		r, err := asst.Welcome(context.Background())
		return replyMsg{Reply: r, Err: err}
	}
	s.waiting = true
	return tea.Batch(s.input.Focus(), welcome)
}

func (s *ChatScreen) Title() string {
	return "Smart Assistant"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.turns = append(s.turns, turn{text: msg.Reply.Text})
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Pop()
		case "enter":
			return s, s.send()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) send() tea.Cmd {
	text := s.input.Value()
	if text == "" || s.waiting {
		return nil
	}
	s.input.SetValue("")
	s.turns = append(s.turns, turn{fromUser: true, text: text})
	s.waiting = true
	conv := s.conv
	return func() tea.Msg {
		r, err := conv.Send(context.Background(), text)
		return replyMsg{Reply: r, Err: err}
	}
}

func (s *ChatScreen) View(width, height int) string {
	bubbleWidth := max(width*3/4, 20)

	var blocks []string
	for _, t := range s.turns {
		if t.fromUser {
			b := theme.UserBubble.MaxWidth(bubbleWidth).Render(wrap(t.text, bubbleWidth-2))
			blocks = append(blocks, lipgloss.PlaceHorizontal(width-2, lipgloss.Right, b))
			continue
		}
		blocks = append(blocks, theme.AssistantBubble.Width(bubbleWidth).Render(t.text))
	}
	if s.waiting {
		blocks = append(blocks, theme.Hint.Render("  Gradex is typing..."))
	}
	if s.errMsg != "" {
		blocks = append(blocks, theme.ErrorText.Render("  "+s.errMsg))
	}

	footer := "\n" + s.input.View()
	avail := max(height-lipgloss.Height(footer)-1, 1)

	// Show the most recent lines that fit above the input.
	lines := strings.Split(strings.Join(blocks, "\n\n"), "\n")
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}
	body := lipgloss.NewStyle().Height(avail).Render(strings.Join(lines, "\n"))
	return body + footer
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(max(width, 1)).Render(s)
}
