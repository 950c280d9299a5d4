package courses

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/store"
)

// memCourseRepo implements store.CourseRepo in memory.
type memCourseRepo struct {
	rows map[uuid.UUID]store.CourseRecord
}

func newMemCourseRepo() *memCourseRepo {
	return &memCourseRepo{rows: make(map[uuid.UUID]store.CourseRecord)}
}

func (m *memCourseRepo) dup(rec *store.CourseRecord) bool {
	for id, r := range m.rows {
		if id != rec.ID && r.Code == rec.Code && r.Level == rec.Level && r.Semester == rec.Semester {
			return true
		}
	}
	return false
}

func (m *memCourseRepo) Create(_ context.Context, rec *store.CourseRecord) error {
	if m.dup(rec) {
		return store.ErrDuplicate
	}
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	m.rows[rec.ID] = *rec
	return nil
}

func (m *memCourseRepo) Update(_ context.Context, rec *store.CourseRecord) error {
	old, ok := m.rows[rec.ID]
	if !ok {
		return store.ErrNotFound
	}
	if m.dup(rec) {
		return store.ErrDuplicate
	}
	rec.CreatedAt = old.CreatedAt
	rec.UpdatedAt = time.Now()
	m.rows[rec.ID] = *rec
	return nil
}

func (m *memCourseRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memCourseRepo) Get(_ context.Context, id uuid.UUID) (*store.CourseRecord, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &r, nil
}

func (m *memCourseRepo) List(_ context.Context, f store.CourseFilter) ([]store.CourseRecord, error) {
	var out []store.CourseRecord
	for _, r := range m.rows {
		if f.Level != "" && r.Level != f.Level {
			continue
		}
		if f.Semester != "" && r.Semester != f.Semester {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		if a.Semester != b.Semester {
			return a.Semester < b.Semester
		}
		return a.Code < b.Code
	})
	return out, nil
}

func (m *memCourseRepo) DeleteAll(_ context.Context) (int, error) {
	n := len(m.rows)
	m.rows = make(map[uuid.UUID]store.CourseRecord)
	return n, nil
}

// memProfileRepo implements store.ProfileRepo in memory.
type memProfileRepo struct {
	p store.ProfileRecord
}

func (m *memProfileRepo) Get(_ context.Context) (*store.ProfileRecord, error) {
	p := m.p
	return &p, nil
}

func (m *memProfileRepo) Save(_ context.Context, p *store.ProfileRecord) error {
	m.p = *p
	return nil
}

func newTestService(level, semester string) *Service {
	profiles := &memProfileRepo{p: store.ProfileRecord{Level: level, Semester: semester}}
	return NewService(newMemCourseRepo(), profiles, grading.NewEngine(grading.NewClassifier(grading.BandTable{})), nil)
}

func mustAdd(t *testing.T, s *Service, in CourseInput) *Course {
	t.Helper()
	c, err := s.Add(context.Background(), in)
	require.NoError(t, err)
	return c
}

func TestAddNormalizesAndDerivesGrade(t *testing.T) {
	s := newTestService("200L", "1st")

	c := mustAdd(t, s, CourseInput{Code: "  csc   201 ", Title: " Data Structures ", Score: 65, Level: "200l", Semester: "1ST"})
	assert.Equal(t, "CSC 201", c.Code)
	assert.Equal(t, "Data Structures", c.Title)
	assert.Equal(t, DefaultUnits, c.Units)
	assert.Equal(t, "200L", c.Level)
	assert.Equal(t, "1st", c.Semester)
	assert.Len(t, c.ShortID(), 8)

	g := c.Grade(s.Classifier())
	assert.Equal(t, "B", g.Letter)
	assert.Equal(t, 4.0, g.Points)
}

func TestAddValidation(t *testing.T) {
	s := newTestService("100L", "1st")

	tests := []struct {
		name  string
		in    CourseInput
		field string
	}{
		{"missing code", CourseInput{Title: "T", Units: 3, Score: 50, Level: "100L", Semester: "1st"}, "code"},
		{"bad code chars", CourseInput{Code: "CSC-101", Title: "T", Units: 3, Score: 50, Level: "100L", Semester: "1st"}, "code"},
		{"blank title", CourseInput{Code: "CSC 101", Title: "   ", Units: 3, Score: 50, Level: "100L", Semester: "1st"}, "title"},
		{"units too high", CourseInput{Code: "CSC 101", Title: "T", Units: 7, Score: 50, Level: "100L", Semester: "1st"}, "units"},
		{"negative units", CourseInput{Code: "CSC 101", Title: "T", Units: -1, Score: 50, Level: "100L", Semester: "1st"}, "units"},
		{"score above 100", CourseInput{Code: "CSC 101", Title: "T", Units: 3, Score: 101, Level: "100L", Semester: "1st"}, "score"},
		{"negative score", CourseInput{Code: "CSC 101", Title: "T", Units: 3, Score: -5, Level: "100L", Semester: "1st"}, "score"},
		{"bad level", CourseInput{Code: "CSC 101", Title: "T", Units: 3, Score: 50, Level: "150L", Semester: "1st"}, "level"},
		{"bad semester", CourseInput{Code: "CSC 101", Title: "T", Units: 3, Score: 50, Level: "100L", Semester: "3rd"}, "semester"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Add(context.Background(), tt.in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Map(), tt.field)
		})
	}
}

func TestAddDuplicateInSameTerm(t *testing.T) {
	s := newTestService("100L", "1st")
	mustAdd(t, s, CourseInput{Code: "MTH 101", Title: "Maths", Units: 3, Score: 50, Level: "100L", Semester: "1st"})

	_, err := s.Add(context.Background(), CourseInput{Code: "mth 101", Title: "Maths", Units: 3, Score: 60, Level: "100L", Semester: "1st"})
	assert.ErrorIs(t, err, ErrDuplicateCode)

	// A resit in a later term is fine.
	mustAdd(t, s, CourseInput{Code: "MTH 101", Title: "Maths", Units: 3, Score: 60, Level: "200L", Semester: "1st"})
}

func TestUpdateGetDelete(t *testing.T) {
	s := newTestService("100L", "1st")
	ctx := context.Background()
	c := mustAdd(t, s, CourseInput{Code: "PHY 101", Title: "Physics", Units: 2, Score: 35, Level: "100L", Semester: "1st"})
	assert.True(t, s.Classifier().IsCarryover(c.Score))

	in := FromCourse(*c)
	in.Score = 71
	updated, err := s.Update(ctx, c.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "A", updated.Grade(s.Classifier()).Letter)

	got, err := s.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 71.0, got.Score)

	require.NoError(t, s.Delete(ctx, c.ID))
	_, err = s.Get(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, c.ID), ErrNotFound)

	_, err = s.Update(ctx, uuid.New(), in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolvePrefix(t *testing.T) {
	s := newTestService("100L", "1st")
	ctx := context.Background()
	c := mustAdd(t, s, CourseInput{Code: "GST 101", Title: "English", Units: 2, Score: 55, Level: "100L", Semester: "1st"})

	got, err := s.Resolve(ctx, c.ShortID())
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	got, err = s.Resolve(ctx, c.ID.String())
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = s.Resolve(ctx, "zzzz")
	assert.ErrorIs(t, err, ErrNotFound)

	mustAdd(t, s, CourseInput{Code: "GST 102", Title: "Philosophy", Units: 2, Score: 55, Level: "100L", Semester: "1st"})
	_, err = s.Resolve(ctx, "")
	assert.Error(t, err)
}

func TestImportIsAllOrNothing(t *testing.T) {
	s := newTestService("100L", "1st")
	ctx := context.Background()

	_, err := s.Import(ctx, []CourseInput{
		{Code: "A 101", Title: "A", Units: 3, Score: 50, Level: "100L", Semester: "1st"},
		{Code: "B 101", Title: "B", Units: 9, Score: 50, Level: "100L", Semester: "1st"},
		{Code: "a 101", Title: "A again", Units: 3, Score: 60, Level: "100L", Semester: "1st"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	m := verr.Map()
	assert.Contains(t, m, "row 2: units")
	assert.Contains(t, m, "row 3: code")

	all, err := s.List(ctx, store.CourseFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)

	added, err := s.Import(ctx, []CourseInput{
		{Code: "A 101", Title: "A", Units: 3, Score: 50, Level: "100L", Semester: "1st"},
		{Code: "B 101", Title: "B", Units: 2, Score: 70, Level: "100L", Semester: "2nd"},
	})
	require.NoError(t, err)
	assert.Len(t, added, 2)
}

func TestSaveProfile(t *testing.T) {
	s := newTestService("100L", "1st")
	ctx := context.Background()

	p, err := s.SaveProfile(ctx, ProfileInput{Name: " Ada ", Level: "300l", Semester: "2ND", PriorCGPA: 3.2, PriorUnits: 80})
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, Term{Level: "300L", Semester: "2nd"}, p.Term())

	_, err = s.SaveProfile(ctx, ProfileInput{Level: "300L", Semester: "1st", PriorCGPA: 5.5, PriorUnits: 10})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Map(), "prior_cgpa")
}

func TestCurrentSemesterAndCarryovers(t *testing.T) {
	s := newTestService("200L", "1st")
	ctx := context.Background()
	mustAdd(t, s, CourseInput{Code: "A 101", Title: "A", Units: 3, Score: 30, Level: "100L", Semester: "1st"})
	mustAdd(t, s, CourseInput{Code: "B 201", Title: "B", Units: 3, Score: 80, Level: "200L", Semester: "1st"})
	mustAdd(t, s, CourseInput{Code: "C 201", Title: "C", Units: 2, Score: 39.9, Level: "200L", Semester: "1st"})

	cur, term, err := s.CurrentSemester(ctx)
	require.NoError(t, err)
	assert.Equal(t, "200L 1st semester", term.String())
	assert.Len(t, cur, 2)

	carry, err := s.Carryovers(ctx)
	require.NoError(t, err)
	require.Len(t, carry, 2)
	assert.Equal(t, "A 101", carry[0].Code)
	assert.Equal(t, "C 201", carry[1].Code)
}

func TestTermOrdering(t *testing.T) {
	terms := []Term{
		{"300L", "1st"}, {"100L", "2nd"}, {"200L", "1st"}, {"100L", "1st"},
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].Before(terms[j]) })
	labels := make([]string, len(terms))
	for i, tt := range terms {
		labels[i] = tt.Label()
	}
	assert.Equal(t, []string{"100L-1st", "100L-2nd", "200L-1st", "300L-1st"}, labels)
}
