package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/great123-artV/GradeX/ent"
	"github.com/great123-artV/GradeX/ent/course"
)

type courseRepo struct {
	client *ent.Client
}

func (r *courseRepo) Create(ctx context.Context, rec *CourseRecord) error {
	c, err := r.client.Course.Create().
		SetCode(rec.Code).
		SetTitle(rec.Title).
		SetUnits(rec.Units).
		SetScore(rec.Score).
		SetLevel(rec.Level).
		SetSemester(rec.Semester).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("create course %s: %w", rec.Code, ErrDuplicate)
		}
		return fmt.Errorf("create course %s: %w", rec.Code, err)
	}
	*rec = toCourseRecord(c)
	return nil
}

func (r *courseRepo) Update(ctx context.Context, rec *CourseRecord) error {
	c, err := r.client.Course.UpdateOneID(rec.ID).
		SetCode(rec.Code).
		SetTitle(rec.Title).
		SetUnits(rec.Units).
		SetScore(rec.Score).
		SetLevel(rec.Level).
		SetSemester(rec.Semester).
		Save(ctx)
	switch {
	case ent.IsNotFound(err):
		return fmt.Errorf("update course %s: %w", rec.ID, ErrNotFound)
	case ent.IsConstraintError(err):
		return fmt.Errorf("update course %s: %w", rec.Code, ErrDuplicate)
	case err != nil:
		return fmt.Errorf("update course %s: %w", rec.ID, err)
	}
	*rec = toCourseRecord(c)
	return nil
}

func (r *courseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Course.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("delete course %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete course %s: %w", id, err)
	}
	return nil
}

func (r *courseRepo) Get(ctx context.Context, id uuid.UUID) (*CourseRecord, error) {
	c, err := r.client.Course.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("get course %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get course %s: %w", id, err)
	}
	rec := toCourseRecord(c)
	return &rec, nil
}

func (r *courseRepo) List(ctx context.Context, f CourseFilter) ([]CourseRecord, error) {
	q := r.client.Course.Query()
	if f.Level != "" {
		q = q.Where(course.Level(f.Level))
	}
	if f.Semester != "" {
		q = q.Where(course.Semester(f.Semester))
	}

	rows, err := q.Order(
		ent.Asc(course.FieldLevel),
		ent.Asc(course.FieldSemester),
		ent.Asc(course.FieldCode),
	).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	out := make([]CourseRecord, 0, len(rows))
	for _, c := range rows {
		out = append(out, toCourseRecord(c))
	}
	return out, nil
}

func (r *courseRepo) DeleteAll(ctx context.Context) (int, error) {
	n, err := r.client.Course.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete courses: %w", err)
	}
	return n, nil
}

func toCourseRecord(c *ent.Course) CourseRecord {
	return CourseRecord{
		ID:        c.ID,
		Code:      c.Code,
		Title:     c.Title,
		Units:     c.Units,
		Score:     c.Score,
		Level:     c.Level,
		Semester:  c.Semester,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
