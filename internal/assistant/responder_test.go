package assistant

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/great123-artV/GradeX/internal/grading"
)

func seeded() *Responder {
	return NewResponder(grading.BandTable{}, rand.New(rand.NewPCG(1, 2)))
}

func testContext() UserContext {
	return UserContext{
		Name:       "Ada",
		CGPA:       2.71,
		CurrentGPA: 2.71,
		Carryovers: 1,
		Courses:    3,
		Level:      "100L",
		Semester:   "1st",
		Class:      grading.SecondClassLower,
		Trace:      []string{"Semester GPA: 19.00 / 7 = 2.71"},
	}
}

func TestRespond_Topics(t *testing.T) {
	tests := []struct {
		message string
		topic   Topic
		contain string
	}{
		{"what's my cgpa", TopicGPA, "Your current CGPA is 2.71 Ada"},
		{"any study tips before exams", TopicStudy, ""},
		{"who do I see about a wrong grade", TopicGPA, ""},
		{"where is the HOD office", TopicGuidance, "The HOD handles serious academic matters Ada"},
		{"where do I fix my portal password", TopicGuidance, "ICT Centre"},
		{"who are you", TopicIdentity, "Liona"},
		{"thanks a lot", TopicThanks, ""},
		{"hello", TopicGreeting, "Hello Ada"},
		{"my carryover situation", TopicGuidance, "below 40 marks"},
		{"blah", TopicGeneral, ""},
	}
	r := seeded()
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got := r.Respond(tt.message, testContext())
			assert.Equal(t, tt.topic, got.Topic)
			assert.Equal(t, SourceTemplate, got.Source)
			assert.NotEmpty(t, got.Text)
			if tt.contain != "" {
				assert.Contains(t, got.Text, tt.contain)
			}
		})
	}
}

func TestRespond_CGPAExplanation(t *testing.T) {
	got := seeded().Respond("calculate my gpa", testContext())

	assert.Contains(t, got.Text, "You have 1 carryover")
	assert.Contains(t, got.Text, "Prioritize clearing it")
	assert.Contains(t, got.Text, "second class lower range")
	assert.Contains(t, got.Text, "Semester GPA: 19.00 / 7 = 2.71")
	// GPA equals CGPA, so no separate semester line.
	assert.NotContains(t, got.Text, "This semester GPA")
}

func TestRespond_CGPAWithoutRecord(t *testing.T) {
	got := seeded().Respond("my gpa", UserContext{Name: "Ada"})

	assert.Contains(t, got.Text, "You have not added any courses yet Ada")
	assert.Contains(t, got.Text, "A (70-100) gives you 5 points")
	assert.Contains(t, got.Text, "F (0-39) gives you 0 points")
}

func TestRespond_CustomScalePassMark(t *testing.T) {
	table := grading.MustBandTable("strict", []grading.GradeBand{
		{Min: 50, Max: 100, Letter: "P", Points: 5},
		{Min: 0, Max: 49, Letter: "F", Points: 0},
	})
	r := NewResponder(table, rand.New(rand.NewPCG(1, 2)))

	got := r.Respond("explain carry over rules to me", testContext())

	assert.Contains(t, got.Text, "below 50 marks")
}

func TestRespond_MoodOpenerAndFollowUp(t *testing.T) {
	got := seeded().Respond("I failed and I need my result", testContext())

	assert.Equal(t, MoodSad, got.Mood)
	assert.True(t, strings.HasPrefix(got.Text, "I can sense things are not easy right now Ada"))
	assert.True(t, strings.HasSuffix(got.Text, "Are you feeling better or do you want me to explain further"))
}

func TestRespond_SlangOpener(t *testing.T) {
	got := seeded().Respond("abeg wetin be my cgpa", testContext())

	assert.Equal(t, MoodPlayful, got.Mood)
	assert.Equal(t, TopicGPA, got.Topic)
	opener := strings.SplitN(got.Text, "\n\n", 2)[0]
	assert.Contains(t, []string{"I hear you my gee", "No wahala Ada", "I understand well well", "Na so"}, opener)
}

func TestRespond_Reproducible(t *testing.T) {
	a := seeded().Respond("give me study tips", testContext())
	b := seeded().Respond("give me study tips", testContext())
	assert.Equal(t, a.Text, b.Text)
}

func TestWelcome(t *testing.T) {
	r := seeded()

	got := r.Welcome(testContext())
	assert.Contains(t, got.Text, "Hello Ada")
	assert.Contains(t, got.Text, "Your current CGPA is 2.71 with 1 carryover to clear")

	fresh := r.Welcome(UserContext{Name: DefaultName})
	assert.NotContains(t, fresh.Text, "CGPA is")
	assert.Contains(t, fresh.Text, "How can I assist you today")
}
