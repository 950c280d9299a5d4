// Package courses manages a student's recorded courses and derives grades,
// GPA and CGPA from them through the grading engine.
package courses

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/store"
)

var (
	// ErrDuplicateCode is returned when a course code is already recorded
	// for the same level and semester.
	ErrDuplicateCode = errors.New("course code already recorded for this semester")

	// ErrNotFound is returned when a course ID does not exist.
	ErrNotFound = errors.New("course not found")

	// ErrAmbiguousID is returned when an ID prefix matches more than one course.
	ErrAmbiguousID = errors.New("course ID prefix is ambiguous")
)

// DefaultUnits is used when an input leaves units unset.
const DefaultUnits = 3

// Course is one recorded course. Its letter grade is derived, never stored.
type Course struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Units     int       `json:"units"`
	Score     float64   `json:"score"`
	Level     string    `json:"level"`
	Semester  string    `json:"semester"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Term is the level and semester the course belongs to.
func (c Course) Term() Term {
	return Term{Level: c.Level, Semester: c.Semester}
}

// Grade classifies the course score.
func (c Course) Grade(cl grading.Classifier) grading.Grade {
	return cl.Classify(c.Score)
}

// Scored converts the course to the engine's input shape.
func (c Course) Scored() grading.ScoredCourse {
	return grading.ScoredCourse{
		Code:     c.Code,
		Units:    c.Units,
		Score:    c.Score,
		Title:    c.Title,
		Level:    c.Level,
		Semester: c.Semester,
	}
}

// ShortID is the first eight hex digits of the ID, enough for the CLI.
func (c Course) ShortID() string {
	return c.ID.String()[:8]
}

// CourseInput is a request to create or replace a course.
type CourseInput struct {
	Code     string  `json:"code" validate:"required,notblank,course_code"`
	Title    string  `json:"title" validate:"required,notblank"`
	Units    int     `json:"units" validate:"min=1,max=6"`
	Score    float64 `json:"score" validate:"min=0,max=100"`
	Level    string  `json:"level" validate:"required,study_level"`
	Semester string  `json:"semester" validate:"required,oneof=1st 2nd"`
}

// Normalize canonicalizes free-form input: codes are upper-cased with
// single spaces, levels upper-cased and semesters lower-cased.
func (in CourseInput) Normalize() CourseInput {
	in.Code = strings.ToUpper(strings.Join(strings.Fields(in.Code), " "))
	in.Title = strings.TrimSpace(in.Title)
	in.Level = strings.ToUpper(strings.TrimSpace(in.Level))
	in.Semester = strings.ToLower(strings.TrimSpace(in.Semester))
	if in.Units == 0 {
		in.Units = DefaultUnits
	}
	return in
}

// Validate normalizes and checks the input.
func (in CourseInput) Validate() (CourseInput, error) {
	in = in.Normalize()
	if err := check(in, ""); err != nil {
		return in, err
	}
	return in, nil
}

// FromCourse builds an input that reproduces c, for partial edits.
func FromCourse(c Course) CourseInput {
	return CourseInput{
		Code:     c.Code,
		Title:    c.Title,
		Units:    c.Units,
		Score:    c.Score,
		Level:    c.Level,
		Semester: c.Semester,
	}
}

func (in CourseInput) record() *store.CourseRecord {
	return &store.CourseRecord{
		Code:     in.Code,
		Title:    in.Title,
		Units:    in.Units,
		Score:    in.Score,
		Level:    in.Level,
		Semester: in.Semester,
	}
}

func fromRecord(r store.CourseRecord) Course {
	return Course{
		ID:        r.ID,
		Code:      r.Code,
		Title:     r.Title,
		Units:     r.Units,
		Score:     r.Score,
		Level:     r.Level,
		Semester:  r.Semester,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
