package assistant

import "fmt"

// guidance answers questions about campus procedures: who to see and
// where to go. It returns "" when nothing matches.
func (r *Responder) guidance(m matcher, name string) string {
	switch {
	case m.any("lost", "missing") && m.any("result", "results", "score", "scores"):
		return lines(
			"For missing results "+name,
			"First meet your course adviser with your registration form",
			"If not resolved go to your departmental office",
			"Then Exams and Records near Senate Building if needed",
			"Always keep copies of your registration documents",
		)
	case m.has("wrong") && m.any("grade", "grades", "score", "scores"):
		return lines(
			"For wrong grades "+name,
			"Start with the lecturer calmly with your evidence",
			"If they agree they write a correction letter",
			"That goes to HOD then Exams and Records",
			"Stay polite and follow up regularly",
		)
	case m.any("portal", "login", "password"):
		return lines(
			"For portal issues "+name,
			"Visit ICT Centre beside CT building",
			"Go early to avoid long queues",
			"Bring your student ID and relevant documents",
		)
	case m.any("carryover", "carryovers", "carry over", "carry-over"):
		return lines(
			fmt.Sprintf("Carryovers are courses below %d marks %s", r.passMark(), name),
			"You need to re register and retake them",
			"Prioritize clearing them early",
			"Attend classes even if you know the material",
			"Get past questions and understand why you failed before",
		)
	case m.any("probation", "withdrawal"):
		return lines(
			"Probation happens when CGPA falls too low usually around 1.0",
			"You get a chance to improve",
			"Withdrawal is more serious after repeated poor performance",
			"Meet your course adviser and HOD immediately if you are in this situation",
			"Some departments have appeals processes",
		)
	case m.any("registration", "register"):
		return lines(
			"Course registration is done on the student portal "+name,
			"Check your department handbook for correct courses",
			"Watch the deadline carefully",
			"Consult your course adviser if unsure especially with carryovers",
			"Always print and keep your registration form",
		)
	case m.any("hod", "head of department"):
		return lines(
			"The HOD handles serious academic matters "+name,
			"Go to them after exhausting other options like course adviser or lecturer",
			"Be respectful and prepared with all documents",
			"Explain your situation clearly and concisely",
		)
	case m.any("exam", "exams") && m.any("record", "records", "transcript", "transcripts"):
		return lines(
			"Exams and Records is near Senate Building "+name,
			"They handle transcripts result issues and grade corrections",
			"Transcripts take several weeks so apply early",
			"Bring all your documentation",
		)
	}
	return ""
}

// passMark is the lowest score that clears the failing band.
func (r *Responder) passMark() int {
	return r.table.Lowest().Max + 1
}
