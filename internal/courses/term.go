package courses

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Term identifies one semester of study, e.g. 200L 1st.
type Term struct {
	Level    string `json:"level"`
	Semester string `json:"semester"`
}

// LevelNumber parses "300L" as 300. Unparseable levels sort first.
func (t Term) LevelNumber() int {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.ToUpper(t.Level), "L"))
	if err != nil {
		return 0
	}
	return n
}

func (t Term) semesterRank() int {
	switch strings.ToLower(t.Semester) {
	case "1st":
		return 1
	case "2nd":
		return 2
	}
	return 0
}

// Before reports whether t comes chronologically before o.
func (t Term) Before(o Term) bool {
	if a, b := t.LevelNumber(), o.LevelNumber(); a != b {
		return a < b
	}
	return t.semesterRank() < o.semesterRank()
}

func (t Term) String() string {
	return fmt.Sprintf("%s %s semester", t.Level, t.Semester)
}

// Label is the compact chart label, e.g. "200L-1st".
func (t Term) Label() string {
	return t.Level + "-" + t.Semester
}

// groupByTerm buckets courses by term and returns the terms in
// chronological order.
func groupByTerm(cs []Course) ([]Term, map[Term][]Course) {
	groups := make(map[Term][]Course)
	for _, c := range cs {
		groups[c.Term()] = append(groups[c.Term()], c)
	}
	terms := make([]Term, 0, len(groups))
	for t := range groups {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].Before(terms[j]) })
	return terms, groups
}
