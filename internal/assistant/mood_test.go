package assistant

import "testing"

func TestDetectMood(t *testing.T) {
	tests := []struct {
		message string
		want    Mood
	}{
		{"I don't understand how CGPA works", MoodConfused},
		{"Please explain my result", MoodConfused},
		{"I failed MTH 101", MoodSad},
		{"This grading is so unfair", MoodAngry},
		{"I'm exhausted, too much reading", MoodStressed},
		{"I passed everything!", MoodHappy},
		{"Finally the results are out", MoodExcited},
		{"Omo wetin be my CGPA", MoodPlayful},
		{"What courses should I register", MoodNeutral},
		{"", MoodNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := DetectMood(tt.message); got != tt.want {
				t.Errorf("DetectMood(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestHasSlang_WholeWords(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"abeg help me", true},
		{"How far with my result", true},
		{"no wahala", true},
		// "na" inside "name" and "final" must not count.
		{"my name is final", false},
		{"this is thin", false},
	}
	for _, tt := range tests {
		if got := HasSlang(tt.message); got != tt.want {
			t.Errorf("HasSlang(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestMatcher_GreetingNotInsideWords(t *testing.T) {
	m := newMatcher("which thing is this")
	if m.any("hi", "hey") {
		t.Error("expected no greeting match inside other words")
	}
	if !newMatcher("Hi there").has("hi") {
		t.Error("expected greeting match")
	}
}
