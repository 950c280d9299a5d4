package grading

// DegreeClass is the classification band a CGPA falls into on the 5.0 scale.
type DegreeClass string

const (
	FirstClass        DegreeClass = "first-class"
	SecondClassUpper  DegreeClass = "second-class-upper"
	SecondClassLower  DegreeClass = "second-class-lower"
	ThirdClass        DegreeClass = "third-class"
	Pass              DegreeClass = "pass"
	ProbationStanding DegreeClass = "probation"
)

// ClassOfDegree classifies a CGPA. The value is rounded for display first
// so a CGPA shown as 4.50 is never reported as second class.
func ClassOfDegree(cgpa float64) DegreeClass {
	c := Round(cgpa, DisplayPrecision)
	switch {
	case c >= 4.5:
		return FirstClass
	case c >= 3.5:
		return SecondClassUpper
	case c >= 2.5:
		return SecondClassLower
	case c >= 1.5:
		return ThirdClass
	case c >= 1.0:
		return Pass
	default:
		return ProbationStanding
	}
}

// DisplayName returns a human-readable name.
func (d DegreeClass) DisplayName() string {
	switch d {
	case FirstClass:
		return "First Class"
	case SecondClassUpper:
		return "Second Class Upper"
	case SecondClassLower:
		return "Second Class Lower"
	case ThirdClass:
		return "Third Class"
	case Pass:
		return "Pass"
	case ProbationStanding:
		return "Probation"
	default:
		return string(d)
	}
}

// Carryovers returns the courses whose score fails under c.
func (c Classifier) Carryovers(courses []ScoredCourse) []ScoredCourse {
	var out []ScoredCourse
	for _, sc := range courses {
		if c.IsCarryover(sc.Score) {
			out = append(out, sc)
		}
	}
	return out
}
