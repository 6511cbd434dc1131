package cvparse

// ExperienceEntry is one position held at a company.
type ExperienceEntry struct {
	Company  string    `json:"company"`
	JobTitle string    `json:"job_title"`
	Duration DateRange `json:"duration"`
}

// expState is the state of the experience scanner.
type expState int

const (
	seekCompany expState = iota
	seekTitle
	seekDuration
)

func (s expState) String() string {
	switch s {
	case seekCompany:
		return "seek-company"
	case seekTitle:
		return "seek-title"
	case seekDuration:
		return "seek-duration"
	}
	return "unknown"
}

// experienceMachine accumulates entries while the scanner walks the
// Experience section.
type experienceMachine struct {
	layout  Layout
	year    int
	company string
	title   string
	entries []ExperienceEntry
}

// step consumes one leaf in state s and returns the next state. When rewind
// is true the caller must step the cursor back so the same leaf is read again
// in the next state.
func (m *experienceMachine) step(s expState, n *Node) (next expState, rewind bool) {
	switch s {
	case seekCompany:
		if m.layout.Is(n, ClassCompany) {
			m.company, m.title = n.Text, ""
			return seekTitle, false
		}
	case seekTitle:
		if m.layout.Is(n, ClassTitle) {
			m.title = n.Text
			return seekDuration, false
		}
		// A second company before any title: this company has no position
		// under it and contributes nothing.
		if m.layout.Is(n, ClassCompany) {
			return seekCompany, true
		}
	case seekDuration:
		if m.layout.Is(n, ClassDuration) {
			m.entries = append(m.entries, ExperienceEntry{
				Company:  Clean(m.company),
				JobTitle: Clean(m.title),
				Duration: ParseDateRange(Clean(n.Text), m.year),
			})
			// Further titles may follow under the same company.
			return seekTitle, false
		}
	}
	return s, false
}

// ParseExperience walks the leaves of the Experience section and returns the
// complete company/title/duration entries in order. A company or title whose
// duration never shows up before the section ends is dropped. year resolves
// "Present" in durations.
func (l Layout) ParseExperience(leaves []*Node, year int) []ExperienceEntry {
	m := &experienceMachine{layout: l, year: year}
	c := newCursor(leaves)
	state := seekCompany
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
