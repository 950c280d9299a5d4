package assistant

import (
	"strings"
	"unicode"
)

// Mood is the tone detected in a student's message.
type Mood string

const (
	MoodConfused Mood = "confused"
	MoodSad      Mood = "sad"
	MoodAngry    Mood = "angry"
	MoodStressed Mood = "stressed"
	MoodHappy    Mood = "happy"
	MoodExcited  Mood = "excited"
	MoodPlayful  Mood = "playful"
	MoodNeutral  Mood = "neutral"
)

// moodRules are checked in order; the first rule with a matching cue wins.
var moodRules = []struct {
	mood Mood
	cues []string
}{
	{MoodConfused, []string{"confused", "don't understand", "dont understand", "help me", "what is", "how do", "explain", "lost", "unclear"}},
	{MoodSad, []string{"sad", "failed", "fail", "disappointed", "depressed", "down", "bad", "unhappy"}},
	{MoodAngry, []string{"angry", "frustrated", "annoyed", "hate", "stupid", "unfair", "fed up"}},
	{MoodStressed, []string{"tired", "exhausted", "stressed", "overwhelmed", "too much", "pressure"}},
	{MoodHappy, []string{"happy", "great", "awesome", "passed", "good news"}},
	{MoodExcited, []string{"excited", "can't wait", "cant wait", "finally", "amazing", "yes"}},
}

var slang = []string{
	"wetin", "abeg", "sha", "omo", "guy", "bro", "bros", "na", "dey", "wahala",
	"how far", "gist", "jare", "sef", "shey", "comot", "chop", "e be like",
	"nor worry", "make i", "my gee", "sharp", "no wahala", "e choke",
	"normal level", "na so", "you sabi",
}

// DetectMood classifies the tone of message.
func DetectMood(message string) Mood {
	m := newMatcher(message)
	for _, r := range moodRules {
		if m.any(r.cues...) {
			return r.mood
		}
	}
	if m.any(slang...) {
		return MoodPlayful
	}
	return MoodNeutral
}

// HasSlang reports whether message uses Nigerian Pidgin or campus slang.
func HasSlang(message string) bool {
	return newMatcher(message).any(slang...)
}

// followsUp reports whether a reply in this mood should end by asking
// how the student is doing.
func (m Mood) followsUp() bool {
	return m == MoodSad || m == MoodStressed || m == MoodConfused
}

// matcher finds keywords in a message. Single-word cues match whole words
// only, so "hi" does not fire on "this". Cues containing spaces or
// apostrophes match as substrings of the lowercased text.
type matcher struct {
	lower string
	words map[string]bool
}

func newMatcher(message string) matcher {
	lower := strings.ToLower(message)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	words := make(map[string]bool, len(fields))
	for _, f := range fields {
		words[strings.Trim(f, "'")] = true
	}
	return matcher{lower: lower, words: words}
}

func (m matcher) has(cue string) bool {
	if strings.ContainsAny(cue, " '") {
		return strings.Contains(m.lower, cue)
	}
	return m.words[cue]
}

func (m matcher) any(cues ...string) bool {
	for _, c := range cues {
		if m.has(c) {
			return true
		}
	}
	return false
}
