package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "gradex.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("GRADEX_DB", filepath.Join(dir, "custom", "x.db"))
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p != filepath.Join(dir, "custom", "x.db") {
		t.Errorf("path = %q", p)
	}
	if _, err := os.Stat(filepath.Join(dir, "custom")); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}

	t.Setenv("GRADEX_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if want := filepath.Join(dir, "gradex", "gradex.db"); p != want {
		t.Errorf("path = %q, want %q", p, want)
	}
}

func TestCourseCRUD(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	rec := &CourseRecord{Code: "CSC 201", Title: "Data Structures", Units: 3, Score: 65, Level: "200L", Semester: "1st"}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.ID == uuid.Nil {
		t.Fatal("expected ID to be assigned")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	got, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Code != "CSC 201" || got.Units != 3 || got.Score != 65 {
		t.Errorf("get = %+v", got)
	}

	got.Score = 72.5
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ := repo.Get(ctx, rec.ID)
	if again.Score != 72.5 {
		t.Errorf("score after update = %v, want 72.5", again.Score)
	}

	if err := repo.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestCourseDuplicateInTerm(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	first := &CourseRecord{Code: "MTH 101", Units: 3, Score: 50, Level: "100L", Semester: "1st"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := &CourseRecord{Code: "MTH 101", Units: 2, Score: 40, Level: "100L", Semester: "1st"}
	if err := repo.Create(ctx, dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate create: err = %v, want ErrDuplicate", err)
	}

	// Same code in another term is a resit and is allowed.
	resit := &CourseRecord{Code: "MTH 101", Units: 3, Score: 55, Level: "200L", Semester: "1st"}
	if err := repo.Create(ctx, resit); err != nil {
		t.Errorf("create resit: %v", err)
	}
}

func TestCourseListFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	for _, rec := range []CourseRecord{
		{Code: "A1", Units: 1, Score: 1, Level: "100L", Semester: "1st"},
		{Code: "A2", Units: 1, Score: 1, Level: "100L", Semester: "2nd"},
		{Code: "A3", Units: 1, Score: 1, Level: "200L", Semester: "1st"},
	} {
		rec := rec
		if err := repo.Create(ctx, &rec); err != nil {
			t.Fatalf("create %s: %v", rec.Code, err)
		}
	}

	tests := []struct {
		filter CourseFilter
		want   int
	}{
		{CourseFilter{}, 3},
		{CourseFilter{Level: "100L"}, 2},
		{CourseFilter{Level: "100L", Semester: "2nd"}, 1},
		{CourseFilter{Semester: "1st"}, 2},
		{CourseFilter{Level: "400L"}, 0},
	}
	for _, tt := range tests {
		got, err := repo.List(ctx, tt.filter)
		if err != nil {
			t.Fatalf("list %+v: %v", tt.filter, err)
		}
		if len(got) != tt.want {
			t.Errorf("list %+v = %d rows, want %d", tt.filter, len(got), tt.want)
		}
	}

	n, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted %d, want 3", n)
	}
}

func TestProfileDefaultsAndSave(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Level != "100L" || p.Semester != "1st" {
		t.Errorf("default profile = %+v", p)
	}

	p.Name = "Ada"
	p.Level = "300L"
	p.PriorCGPA = 3.5
	p.PriorUnits = 60
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Ada" || got.Level != "300L" || got.PriorCGPA != 3.5 || got.PriorUnits != 60 {
		t.Errorf("profile after save = %+v", got)
	}

	count, err := s.Client().Profile.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("profile rows = %d, want 1", count)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "chat", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true, RequestBody: "req", ResponseBody: "resp"},
		{Provider: "anthropic", Model: "m1", Purpose: "chat", InputTokens: 20, OutputTokens: 15, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "m2", Purpose: "advice", InputTokens: 7, OutputTokens: 3, LatencyMs: 50, Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("expected newest first, got sequences %d, %d", got[0].Sequence, got[1].Sequence)
	}
	if got[0].Purpose != "advice" || got[0].ErrorMessage != "boom" {
		t.Errorf("newest = %+v", got[0])
	}

	oldest := got[1].Sequence - 1
	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: oldest})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 2 {
		t.Errorf("after %d: len = %d, want 2", oldest, len(after))
	}

	all, _ := repo.QueryLLMEvents(ctx, QueryOpts{})
	first, err := repo.GetLLMEvent(ctx, all[len(all)-1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first.RequestBody != "req" || first.ResponseBody != "resp" {
		t.Errorf("bodies = %q / %q", first.RequestBody, first.ResponseBody)
	}
	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil || missing != nil {
		t.Errorf("missing event = %v, %v; want nil, nil", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	chat := byPurpose[1]
	if chat.Purpose != "chat" || chat.Calls != 2 || chat.InputTokens != 30 || chat.OutputTokens != 20 || chat.AvgLatencyMs != 200 {
		t.Errorf("chat usage = %+v", chat)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "m1" || byModel[0].Calls != 2 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestChatMessages(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	msgs := []ChatMessageData{
		{SessionID: "s1", Role: "user", Content: "hi", Mood: "neutral"},
		{SessionID: "s1", Role: "assistant", Content: "hello", Source: "template"},
		{SessionID: "s2", Role: "user", Content: "other"},
		{SessionID: "s1", Role: "user", Content: "my gpa?"},
	}
	for _, m := range msgs {
		if err := repo.AppendChatMessage(ctx, m); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryChatMessages(ctx, "s1", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Content != "hi" || got[2].Content != "my gpa?" {
		t.Errorf("order = %q ... %q, want oldest first", got[0].Content, got[2].Content)
	}
	if got[1].Source != "template" {
		t.Errorf("source = %q", got[1].Source)
	}

	recent, err := repo.QueryChatMessages(ctx, "s1", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(recent) != 2 || recent[0].Content != "hello" || recent[1].Content != "my gpa?" {
		t.Errorf("recent = %+v", recent)
	}

	all, _ := repo.QueryChatMessages(ctx, "", QueryOpts{From: time.Now().Add(-time.Hour)})
	if len(all) != 4 {
		t.Errorf("all sessions = %d, want 4", len(all))
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendChatMessage(ctx, ChatMessageData{SessionID: "s", Role: "user", Content: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "chat", Success: true}); err != nil {
		t.Fatal(err)
	}

	chat, _ := repo.QueryChatMessages(ctx, "s", QueryOpts{})
	llm, _ := repo.QueryLLMEvents(ctx, QueryOpts{})
	if llm[0].Sequence != chat[0].Sequence+1 {
		t.Errorf("sequences chat=%d llm=%d, want consecutive", chat[0].Sequence, llm[0].Sequence)
	}
}
