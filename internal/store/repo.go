package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a write would violate a uniqueness rule.
	ErrDuplicate = errors.New("duplicate record")
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// CourseRecord is a persisted course row.
type CourseRecord struct {
	ID        uuid.UUID
	Code      string
	Title     string
	Units     int
	Score     float64
	Level     string
	Semester  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CourseFilter narrows List results. Empty fields match everything.
type CourseFilter struct {
	Level    string
	Semester string
}

// CourseRepo persists courses.
type CourseRepo interface {
	// Create inserts a course. ID, CreatedAt and UpdatedAt are assigned
	// and written back to rec. Returns ErrDuplicate if the same code
	// already exists for the term.
	Create(ctx context.Context, rec *CourseRecord) error

	// Update overwrites the mutable fields of an existing course.
	Update(ctx context.Context, rec *CourseRecord) error

	// Delete removes a course by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Get returns a course by ID, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*CourseRecord, error)

	// List returns courses ordered by level, semester, then code.
	List(ctx context.Context, f CourseFilter) ([]CourseRecord, error)

	// DeleteAll removes every course and returns how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}

// ProfileRecord is the single local student profile.
type ProfileRecord struct {
	Name       string
	Level      string
	Semester   string
	About      string
	PriorCGPA  float64
	PriorUnits int
	UpdatedAt  time.Time
}

// ProfileRepo persists the student profile.
type ProfileRepo interface {
	// Get returns the profile, creating a default one on first use.
	Get(ctx context.Context) (*ProfileRecord, error)

	// Save overwrites the profile.
	Save(ctx context.Context, p *ProfileRecord) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM calls for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ChatMessageData captures one assistant conversation turn.
type ChatMessageData struct {
	SessionID string
	Role      string // "user" or "assistant"
	Content   string
	Mood      string
	Source    string
}

// ChatMessage is a stored conversation turn.
type ChatMessage struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ChatMessageData
}

// EventRepo provides append and query access to the event tables.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates calls per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates calls per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendChatMessage records one conversation turn.
	AppendChatMessage(ctx context.Context, data ChatMessageData) error

	// QueryChatMessages returns a session's messages, oldest first. An
	// empty sessionID matches all sessions.
	QueryChatMessages(ctx context.Context, sessionID string, opts QueryOpts) ([]ChatMessage, error)
}
