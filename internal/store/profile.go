package store

import (
	"context"
	"fmt"

	"github.com/great123-artV/GradeX/ent"
	"github.com/great123-artV/GradeX/ent/profile"
)

type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context) (*ProfileRecord, error) {
	p, err := r.first(ctx)
	if err != nil {
		return nil, err
	}
	rec := toProfileRecord(p)
	return &rec, nil
}

func (r *profileRepo) Save(ctx context.Context, rec *ProfileRecord) error {
	p, err := r.first(ctx)
	if err != nil {
		return err
	}

	p, err = p.Update().
		SetName(rec.Name).
		SetLevel(rec.Level).
		SetSemester(rec.Semester).
		SetAbout(rec.About).
		SetPriorCgpa(rec.PriorCGPA).
		SetPriorUnits(rec.PriorUnits).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	*rec = toProfileRecord(p)
	return nil
}

// first returns the lowest-ID profile row, creating it with schema
// defaults when the table is empty.
func (r *profileRepo) first(ctx context.Context) (*ent.Profile, error) {
	p, err := r.client.Profile.Query().Order(ent.Asc(profile.FieldID)).First(ctx)
	if err == nil {
		return p, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	p, err = r.client.Profile.Create().Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

func toProfileRecord(p *ent.Profile) ProfileRecord {
	return ProfileRecord{
		Name:       p.Name,
		Level:      p.Level,
		Semester:   p.Semester,
		About:      p.About,
		PriorCGPA:  p.PriorCgpa,
		PriorUnits: p.PriorUnits,
		UpdatedAt:  p.UpdatedAt,
	}
}
