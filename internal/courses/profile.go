package courses

import (
	"strings"

	"github.com/great123-artV/GradeX/internal/store"
)

// Profile is the local student's details and current term.
type Profile struct {
	Name       string  `json:"name"`
	Level      string  `json:"level"`
	Semester   string  `json:"semester"`
	About      string  `json:"about,omitempty"`
	PriorCGPA  float64 `json:"prior_cgpa"`
	PriorUnits int     `json:"prior_units"`
}

// Term is the student's current term.
func (p Profile) Term() Term {
	return Term{Level: p.Level, Semester: p.Semester}
}

// ProfileInput is a request to update the profile.
type ProfileInput struct {
	Name       string  `json:"name" validate:"max=80"`
	Level      string  `json:"level" validate:"required,study_level"`
	Semester   string  `json:"semester" validate:"required,oneof=1st 2nd"`
	About      string  `json:"about" validate:"max=500"`
	PriorCGPA  float64 `json:"prior_cgpa" validate:"min=0"`
	PriorUnits int     `json:"prior_units" validate:"min=0"`
}

// Validate normalizes and checks the input.
func (in ProfileInput) Validate() (ProfileInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.About = strings.TrimSpace(in.About)
	in.Level = strings.ToUpper(strings.TrimSpace(in.Level))
	in.Semester = strings.ToLower(strings.TrimSpace(in.Semester))
	if err := check(in, ""); err != nil {
		return in, err
	}
	return in, nil
}

// Input returns an input that reproduces p, for partial edits.
func (p Profile) Input() ProfileInput {
	return ProfileInput{
		Name:       p.Name,
		Level:      p.Level,
		Semester:   p.Semester,
		About:      p.About,
		PriorCGPA:  p.PriorCGPA,
		PriorUnits: p.PriorUnits,
	}
}

func profileFromRecord(r *store.ProfileRecord) Profile {
	return Profile{
		Name:       r.Name,
		Level:      r.Level,
		Semester:   r.Semester,
		About:      r.About,
		PriorCGPA:  r.PriorCGPA,
		PriorUnits: r.PriorUnits,
	}
}
