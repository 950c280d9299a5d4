package assistant

import (
	"fmt"
	"strings"

	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
)

// DefaultName addresses a student who has not set a name.
const DefaultName = "Student"

// UserContext is the slice of the student's record the assistant talks about.
type UserContext struct {
	Name       string
	CGPA       float64
	CurrentGPA float64
	Carryovers int
	Courses    int
	PriorUnits int
	Level      string
	Semester   string
	Class      grading.DegreeClass

	// Trace is the step log of the current term's aggregation.
	Trace []string
}

// NewUserContext extracts the assistant's view of a summary.
func NewUserContext(s *courses.Summary) UserContext {
	name := strings.TrimSpace(s.Profile.Name)
	if name == "" {
		name = DefaultName
	}
	return UserContext{
		Name:       name,
		CGPA:       s.DisplayCGPA(),
		CurrentGPA: s.DisplayGPA(),
		Carryovers: s.Carryovers,
		Courses:    s.Courses,
		PriorUnits: s.Profile.PriorUnits,
		Level:      s.Profile.Level,
		Semester:   s.Profile.Semester,
		Class:      s.Class,
		Trace:      append([]string(nil), s.Current.Steps...),
	}
}

// HasRecord reports whether there is anything to compute a CGPA from.
func (u UserContext) HasRecord() bool {
	return u.Courses > 0 || u.PriorUnits > 0
}

// dataBlock renders the context for the model's system prompt.
func (u UserContext) dataBlock() string {
	var b strings.Builder
	b.WriteString("CURRENT USER DATA\n")
	fmt.Fprintf(&b, "- Student name: %s\n", u.Name)
	if u.HasRecord() {
		fmt.Fprintf(&b, "- Current CGPA: %.2f (%s)\n", u.CGPA, u.Class.DisplayName())
		fmt.Fprintf(&b, "- Current semester GPA: %.2f\n", u.CurrentGPA)
	} else {
		b.WriteString("- Current CGPA: Not calculated\n")
		b.WriteString("- Current semester GPA: Not calculated\n")
	}
	fmt.Fprintf(&b, "- Carryovers: %d\n", u.Carryovers)
	fmt.Fprintf(&b, "- Level: %s\n", orNotSet(u.Level))
	fmt.Fprintf(&b, "- Semester: %s\n", orNotSet(u.Semester))
	if len(u.Trace) > 0 {
		b.WriteString("\nCalculation steps for the current semester:\n")
		for _, s := range u.Trace {
			fmt.Fprintf(&b, "  %s\n", s)
		}
	}
	b.WriteString("\nUse this data to personalize your responses when relevant.")
	return b.String()
}

func orNotSet(s string) string {
	if s == "" {
		return "Not set"
	}
	return s
}
