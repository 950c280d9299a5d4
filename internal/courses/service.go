package courses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/logging"
	"github.com/great123-artV/GradeX/internal/store"
)

// Service records courses and computes results from them.
type Service struct {
	courses  store.CourseRepo
	profiles store.ProfileRepo
	engine   grading.Engine
	logger   log.Logger
}

// NewService creates a Service. A nil logger discards output.
func NewService(courses store.CourseRepo, profiles store.ProfileRepo, engine grading.Engine, logger log.Logger) *Service {
	return &Service{
		courses:  courses,
		profiles: profiles,
		engine:   engine,
		logger:   logging.Component(logger, "courses"),
	}
}

// Engine returns the grading engine results are computed with.
func (s *Service) Engine() grading.Engine {
	return s.engine
}

// Classifier returns the engine's classifier.
func (s *Service) Classifier() grading.Classifier {
	return s.engine.Classifier()
}

// Add validates and records a new course.
func (s *Service) Add(ctx context.Context, in CourseInput) (*Course, error) {
	in, err := in.Validate()
	if err != nil {
		return nil, err
	}

	rec := in.record()
	if err := s.courses.Create(ctx, rec); err != nil {
		return nil, s.mapErr(err, in)
	}

	c := fromRecord(*rec)
	level.Debug(s.logger).Log("msg", "course added", "id", c.ID, "code", c.Code, "term", c.Term().Label())
	return &c, nil
}

// Update replaces every field of an existing course.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in CourseInput) (*Course, error) {
	in, err := in.Validate()
	if err != nil {
		return nil, err
	}

	rec := in.record()
	rec.ID = id
	if err := s.courses.Update(ctx, rec); err != nil {
		return nil, s.mapErr(err, in)
	}

	c := fromRecord(*rec)
	level.Debug(s.logger).Log("msg", "course updated", "id", c.ID, "code", c.Code)
	return &c, nil
}

// Delete removes a course.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		return err
	}
	level.Debug(s.logger).Log("msg", "course deleted", "id", id)
	return nil
}

// Get returns a course by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Course, error) {
	rec, err := s.courses.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	c := fromRecord(*rec)
	return &c, nil
}

// Resolve finds a course by full ID or by a unique ID prefix.
func (s *Service) Resolve(ctx context.Context, ref string) (*Course, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if id, err := uuid.Parse(ref); err == nil {
		return s.Get(ctx, id)
	}
	if ref == "" {
		return nil, fmt.Errorf("empty course ID: %w", ErrNotFound)
	}

	all, err := s.List(ctx, store.CourseFilter{})
	if err != nil {
		return nil, err
	}
	var match *Course
	for i := range all {
		if strings.HasPrefix(all[i].ID.String(), ref) {
			if match != nil {
				return nil, fmt.Errorf("%s: %w", ref, ErrAmbiguousID)
			}
			match = &all[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%s: %w", ref, ErrNotFound)
	}
	return match, nil
}

// List returns courses ordered by term and code.
func (s *Service) List(ctx context.Context, f store.CourseFilter) ([]Course, error) {
	recs, err := s.courses.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]Course, len(recs))
	for i, r := range recs {
		out[i] = fromRecord(r)
	}
	return out, nil
}

// Import validates every input first and records them only if all are
// valid. Field names in the returned *ValidationError carry the 1-based
// row number. Recording stops at the first storage error; the returned
// slice holds the courses added before it.
func (s *Service) Import(ctx context.Context, ins []CourseInput) ([]Course, error) {
	valid := make([]CourseInput, len(ins))
	problems := &ValidationError{}
	seen := make(map[string]int)
	for i, in := range ins {
		prefix := fmt.Sprintf("row %d: ", i+1)
		in = in.Normalize()
		if err := check(in, prefix); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				problems.Fields = append(problems.Fields, verr.Fields...)
				continue
			}
			return nil, err
		}
		key := in.Code + "|" + in.Level + "|" + in.Semester
		if first, ok := seen[key]; ok {
			problems.Fields = append(problems.Fields, FieldError{
				Field:   prefix + "code",
				Message: fmt.Sprintf("%s%s repeats row %d", prefix, in.Code, first),
			})
			continue
		}
		seen[key] = i + 1
		valid[i] = in
	}
	if len(problems.Fields) > 0 {
		return nil, problems
	}

	added := make([]Course, 0, len(valid))
	for _, in := range valid {
		c, err := s.Add(ctx, in)
		if err != nil {
			return added, err
		}
		added = append(added, *c)
	}
	level.Info(s.logger).Log("msg", "courses imported", "count", len(added))
	return added, nil
}

// Reset removes every course and returns how many were removed.
func (s *Service) Reset(ctx context.Context) (int, error) {
	return s.courses.DeleteAll(ctx)
}

// Profile returns the student profile.
func (s *Service) Profile(ctx context.Context) (Profile, error) {
	rec, err := s.profiles.Get(ctx)
	if err != nil {
		return Profile{}, err
	}
	return profileFromRecord(rec), nil
}

// SaveProfile validates and stores the profile.
func (s *Service) SaveProfile(ctx context.Context, in ProfileInput) (Profile, error) {
	in, err := in.Validate()
	if err != nil {
		return Profile{}, err
	}
	if top := s.Classifier().Table().Highest().Points; in.PriorCGPA > top {
		return Profile{}, &ValidationError{Fields: []FieldError{{
			Field:   "prior_cgpa",
			Message: fmt.Sprintf("prior_cgpa must be %.2f or less", top),
		}}}
	}

	rec := &store.ProfileRecord{
		Name:       in.Name,
		Level:      in.Level,
		Semester:   in.Semester,
		About:      in.About,
		PriorCGPA:  in.PriorCGPA,
		PriorUnits: in.PriorUnits,
	}
	if err := s.profiles.Save(ctx, rec); err != nil {
		return Profile{}, err
	}
	return profileFromRecord(rec), nil
}

// CurrentSemester returns the courses in the profile's current term.
func (s *Service) CurrentSemester(ctx context.Context) ([]Course, Term, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return nil, Term{}, err
	}
	cs, err := s.List(ctx, store.CourseFilter{Level: p.Level, Semester: p.Semester})
	if err != nil {
		return nil, Term{}, err
	}
	return cs, p.Term(), nil
}

// Carryovers returns every recorded course whose score is in the failing band.
func (s *Service) Carryovers(ctx context.Context) ([]Course, error) {
	all, err := s.List(ctx, store.CourseFilter{})
	if err != nil {
		return nil, err
	}
	cl := s.Classifier()
	var out []Course
	for _, c := range all {
		if cl.IsCarryover(c.Score) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Service) mapErr(err error, in CourseInput) error {
	switch {
	case errors.Is(err, store.ErrDuplicate):
		return fmt.Errorf("%s in %s: %w", in.Code, Term{in.Level, in.Semester}, ErrDuplicateCode)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%s: %w", in.Code, ErrNotFound)
	}
	return err
}
