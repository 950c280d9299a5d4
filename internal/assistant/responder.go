package assistant

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/great123-artV/GradeX/internal/grading"
)

// Topic is what a reply was about.
type Topic string

const (
	TopicGPA      Topic = "gpa"
	TopicStudy    Topic = "study"
	TopicGuidance Topic = "guidance"
	TopicPlanning Topic = "planning"
	TopicThanks   Topic = "thanks"
	TopicGreeting Topic = "greeting"
	TopicIdentity Topic = "identity"
	TopicGeneral  Topic = "general"
	TopicOffTopic Topic = "off_topic"
)

// Responder answers from templates without any model. Replies depend only
// on the message, the user context and the random source.
type Responder struct {
	table grading.BandTable

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewResponder returns a responder describing table. A zero table means
// the default scale; a nil rnd is seeded from the clock.
func NewResponder(table grading.BandTable, rnd *rand.Rand) *Responder {
	if table.IsZero() {
		table = grading.DefaultBandTable()
	}
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Responder{table: table, rnd: rnd}
}

// Respond builds a templated reply to message.
func (r *Responder) Respond(message string, uc UserContext) Reply {
	m := newMatcher(message)
	mood := DetectMood(message)
	name := uc.Name

	var parts []string
	if opener := r.moodOpener(mood, m.any(slang...), name); opener != "" {
		parts = append(parts, opener)
	}

	body, topic := r.route(m, message, uc)
	parts = append(parts, body)

	if mood.followsUp() {
		parts = append(parts, "Are you feeling better or do you want me to explain further")
	}
	return Reply{
		Text:   strings.Join(parts, "\n\n"),
		Topic:  topic,
		Mood:   mood,
		Source: SourceTemplate,
	}
}

func (r *Responder) route(m matcher, message string, uc UserContext) (string, Topic) {
	name := uc.Name
	switch {
	case m.any("who made you", "who created you", "who built you", "who are you", "what are you", "noskytech"):
		return identity(), TopicIdentity
	case m.any("cgpa", "gpa", "grade", "grades", "calculate", "result", "results"):
		return r.explainCGPA(uc), TopicGPA
	case m.any("study", "read", "reading", "exam", "exams", "prepare", "revision", "tips"):
		return r.studyTip(name), TopicStudy
	case m.any("who", "where", "office", "meet", "how to"):
		if g := r.guidance(m, name); g != "" {
			return g, TopicGuidance
		}
		return lines(
			"I can help you with grades CGPA calculations UNN procedures and study tips "+name,
			"What do you need",
		), TopicGeneral
	case m.any("thank", "thanks", "thank you"):
		return r.pick(
			lines("You are welcome "+name, "I am always here when you need me"),
			lines("Anytime "+name, "Feel free to reach out again"),
			lines("It is my pleasure", "Your success matters to me "+name),
		), TopicThanks
	case m.any("hello", "hi", "hey", "good morning", "good afternoon", "good evening"):
		return lines(
			"Hello "+name,
			"Good to hear from you",
			"How can I help today",
			"I can assist with CGPA calculations UNN procedures or study tips",
		), TopicGreeting
	}
	if g := r.guidance(m, name); g != "" {
		return g, TopicGuidance
	}
	return r.pick(
		lines("Tell me more about what you need help with "+name, "I am here for grades study advice or UNN guidance"),
		lines("I am listening "+name, "Share what is on your mind and let us work through it"),
		lines("How can I assist you "+name, "Whether it is CGPA UNN rules or study tips I got you"),
	), TopicGeneral
}

func (r *Responder) moodOpener(mood Mood, slangy bool, name string) string {
	if slangy || mood == MoodPlayful {
		return r.pick(
			lines("I hear you my gee", "Let me sort this out for you sharp sharp"),
			lines("No wahala "+name, "I got you on this one"),
			lines("I understand well well", "Let me break it down"),
			lines("Na so", "I go help you handle am"),
		)
	}
	switch mood {
	case MoodSad:
		return lines("I can sense things are not easy right now "+name, "It is okay to feel this way", "I am here to help")
	case MoodAngry:
		return lines("I understand your frustration "+name, "Let us work through this calmly", "I am on your side")
	case MoodConfused:
		return lines("No worries "+name, "Let me break this down simply for you")
	case MoodStressed:
		return lines("Take a deep breath "+name, "Let us handle this slowly together")
	case MoodHappy:
		return lines("That is great to hear "+name, "I am glad things are going well")
	case MoodExcited:
		return lines("I can feel the energy "+name, "Let us make the most of it")
	}
	return ""
}

func (r *Responder) explainCGPA(uc UserContext) string {
	if !uc.HasRecord() {
		parts := []string{
			"You have not added any courses yet " + uc.Name,
			"Once you add them I can calculate your CGPA",
			"Quick breakdown of the " + r.table.Name() + " grading scale",
		}
		var bands []string
		for _, b := range r.table.Bands() {
			bands = append(bands, fmt.Sprintf("%s (%d-%d) gives you %s points",
				b.Letter, b.Min, b.Max, strconv.FormatFloat(b.Points, 'f', -1, 64)))
		}
		parts = append(parts,
			strings.Join(bands, "\n"),
			"To get your CGPA multiply each course unit by your grade point then add everything and divide by total units",
		)
		return lines(parts...)
	}

	parts := []string{fmt.Sprintf("Your current CGPA is %.2f %s", uc.CGPA, uc.Name)}
	if uc.CurrentGPA > 0 && uc.CurrentGPA != uc.CGPA {
		parts = append(parts, fmt.Sprintf("This semester GPA is %.2f", uc.CurrentGPA))
	}
	if uc.Carryovers > 0 {
		parts = append(parts,
			fmt.Sprintf("You have %d %s", uc.Carryovers, plural(uc.Carryovers, "carryover", "carryovers")),
			"Prioritize clearing "+plural(uc.Carryovers, "it", "them")+" as soon as possible",
		)
	}

	switch grading.ClassOfDegree(uc.CGPA) {
	case grading.FirstClass:
		parts = append(parts, "You are doing excellently", "First class is within reach", "Keep up the great work")
	case grading.SecondClassUpper:
		parts = append(parts, "Solid performance", "You are in second class upper range", "With a bit more effort you could push higher")
	case grading.SecondClassLower:
		parts = append(parts, "You are in second class lower range", "There is room for improvement", "Want some tips on how to boost your grades")
	case grading.ThirdClass:
		parts = append(parts, "Your CGPA is in third class range", "Do not be discouraged", "Many students have turned things around from here")
	default:
		parts = append(parts, "I can see your CGPA is low right now", "This does not define you", "Let us work on a plan to improve")
	}

	if len(uc.Trace) > 0 {
		parts = append(parts, "Here is how I worked it out\n"+strings.Join(uc.Trace, "\n"))
	}
	return lines(parts...)
}

func (r *Responder) studyTip(name string) string {
	return r.pick(
		lines("Consistency beats intensity "+name, "Two to three hours of focused study daily is better than cramming", "Try studying at the same time every day"),
		lines("Active recall works wonders", "Close your notes after each section and try to recall what you read", "This strengthens memory better than passive reading"),
		lines("Study in focused chunks "+name, "Forty five minutes on then fifteen minutes break", "Your brain stays sharper this way"),
		lines("Past questions are your best friend", "Most lecturers repeat patterns", "Get at least five years worth and practice under timed conditions"),
		lines("Group study can help if the group is serious", "Explaining concepts to others reinforces your own understanding", "Just make sure it stays focused"),
		lines("Find what works for you "+name, "Some people learn by reading others by listening", "Experiment and lean into your strengths"),
	)
}

func identity() string {
	return lines(
		"I am Liona your Academic Assistant built by Noskytech for UNN students",
		"I live inside Gradex and help with GPA and CGPA calculations study planning and campus procedures",
	)
}

// Welcome is the greeting shown when a chat opens.
func (r *Responder) Welcome(uc UserContext) Reply {
	intro := lines(
		"Hello "+uc.Name,
		"I am Liona your Academic Assistant",
		"Built by Noskytech to help UNN students like you",
	)
	parts := []string{intro}
	if uc.HasRecord() {
		standing := fmt.Sprintf("Your current CGPA is %.2f", uc.CGPA)
		if uc.Carryovers > 0 {
			standing += fmt.Sprintf(" with %d %s to clear", uc.Carryovers, plural(uc.Carryovers, "carryover", "carryovers"))
		}
		parts = append(parts, standing)
	}
	parts = append(parts,
		"I can help with CGPA calculations UNN procedures study tips and guidance on who to meet for any issue",
		"How can I assist you today",
	)
	return Reply{
		Text:   lines(parts...),
		Topic:  TopicGreeting,
		Mood:   MoodNeutral,
		Source: SourceTemplate,
	}
}

func (r *Responder) pick(options ...string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return options[r.rnd.IntN(len(options))]
}

// lines joins paragraphs with a blank line, the chat's only formatting.
func lines(parts ...string) string {
	return strings.Join(parts, "\n\n")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
