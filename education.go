package cvparse

import (
	"regexp"
	"strings"
)

// EducationEntry is one degree at a school.
type EducationEntry struct {
	University string    `json:"university"`
	Degree     string    `json:"degree"`
	Major      string    `json:"major"`
	Duration   DateRange `json:"duration"`
}

type eduState int

const (
	seekUniversity eduState = iota
	seekInfo
)

func (s eduState) String() string {
	switch s {
	case seekUniversity:
		return "seek-university"
	case seekInfo:
		return "seek-info"
	}
	return "unknown"
}

type educationMachine struct {
	layout     Layout
	year       int
	university string
	entries    []EducationEntry
}

func (m *educationMachine) step(s eduState, n *Node) (next eduState, rewind bool) {
	switch s {
	case seekUniversity:
		if m.layout.Is(n, ClassUniversity) {
			m.university = n.Text
			return seekInfo, false
		}
	case seekInfo:
		if m.layout.Is(n, ClassInfo) {
			e := SplitEducationInfo(Clean(n.Text), m.year)
			e.University = Clean(m.university)
			m.entries = append(m.entries, e)
			return seekUniversity, false
		}
		// Schools share the company font size; another one before any info
		// line means the previous school has none.
		if m.layout.Is(n, ClassCompany) {
			return seekUniversity, true
		}
	}
	return s, false
}

// ParseEducation walks the leaves of the Education section and returns one
// entry per school followed by an info line. Schools without an info line are
// dropped.
func (l Layout) ParseEducation(leaves []*Node, year int) []EducationEntry {
	m := &educationMachine{layout: l, year: year}
	c := newCursor(leaves)
	state := seekUniversity
	for {
		n, ok := c.next()
		if !ok {
			break
		}
		var rewind bool
		state, rewind = m.step(state, n)
		if rewind {
			c.back()
		}
	}
	return m.entries
}

const middleDot = "·"

var infoSplitRe = regexp.MustCompile(`,|` + middleDot)

// SplitEducationInfo breaks an info line such as
// "Bachelor's Degree, Computer Science, (2005-2006)" or
// "Master of Science - MS·(2010-2012)" into degree, major and duration.
// The University field of the result is left empty.
func SplitEducationInfo(info string, year int) EducationEntry {
	parts := infoSplitRe.Split(info, -1)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var e EducationEntry
	switch {
	case len(parts) == 1:
		e.Degree = info
	case len(parts) == 2 && strings.Contains(info, middleDot):
		e.Degree = parts[0]
		e.Duration = ParseDateRange(parts[1], year)
	case len(parts) == 2:
		e.Degree = parts[0]
		e.Major = parts[1]
	default:
		e.Degree = parts[0]
		e.Major = parts[1]
		e.Duration = ParseDateRange(parts[2], year)
	}
	return e
}
