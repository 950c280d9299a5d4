package assistant

import (
	"fmt"
	"strings"

	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/llm"
)

const systemPromptHead = `You are Gradex Smart Assistant, the academic assistant inside the Gradex app, powered by Noskytech.

Your only job is to help students understand and improve their academic performance on a 5.0 grading scale.
Be precise, friendly and strictly academic.

You may:
1. Calculate GPA and CGPA on the scale below
2. Analyze academic performance
3. Give actionable study advice tailored to the student's grades
4. Predict possible CGPA outcomes from grades the student provides
5. Explain why GPA goes up or down
6. Help with course load planning

You must never tell jokes, answer questions outside academics, chat casually, give medical, legal or
financial advice, or invent facts. If the student asks something outside academics, reply exactly:
"I'm here to help with GPA, CGPA, study planning, and academic guidance only." and set topic to "off_topic".`

const systemPromptRules = `Calculation rules:
- GPA = sum(grade point x course units) / total units
- CGPA = (prior CGPA x prior units + semester grade points) / (prior units + semester units)
- When the student gives data, recalculate precisely and show each step.
- If numbers are missing, ask for them clearly.

Course load: warn above 24 units and suggest 18 to 22 units.

If the student sounds stressed or afraid, respond calmly: "It's okay to feel overwhelmed. Let's work through your courses one step at a time so you have a clear plan." Do not give mental health advice.

Keep replies short, direct and student-friendly. Avoid cliches like "read more" or "work harder".

Respond with a JSON object: "reply" holds your message to the student and "topic" classifies it.`

// systemPrompt assembles the instructions, the grading scale in force and
// the student's data.
func systemPrompt(table grading.BandTable, uc UserContext) string {
	var b strings.Builder
	b.WriteString(systemPromptHead)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Grading scale (%s), score ranges are inclusive:\n", table.Name())
	for _, band := range table.Bands() {
		fmt.Fprintf(&b, "- %s: %d-%d = %.1f points\n", band.Letter, band.Min, band.Max, band.Points)
	}
	fmt.Fprintf(&b, "A course scoring below %d is a carryover.\n\n", table.Lowest().Max+1)
	b.WriteString(systemPromptRules)
	b.WriteString("\n\n")
	b.WriteString(uc.dataBlock())
	return b.String()
}

// ReplySchema is the structured output every model reply must match.
var ReplySchema = &llm.Schema{
	Name:        "chat-reply",
	Description: "A reply to the student and the topic it covers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The message shown to the student",
			},
			"topic": map[string]any{
				"type": "string",
				"enum": []any{
					string(TopicGPA), string(TopicStudy), string(TopicGuidance),
					string(TopicPlanning), string(TopicGeneral), string(TopicOffTopic),
				},
			},
		},
		"required":             []any{"reply", "topic"},
		"additionalProperties": false,
	},
}

type replyOutput struct {
	Reply string `json:"reply"`
	Topic string `json:"topic"`
}
