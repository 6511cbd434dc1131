package cvparse

import "strings"

// Section is a named run of main-panel nodes between one header (or the
// name) and the next.
type Section struct {
	Name  string
	Nodes []*Node
}

// Sections is an ordered set of sections keyed by name. Opening a section
// under a name that already exists replaces the earlier bucket in place, so
// the last occurrence of a repeated header wins while keeping the position
// of the first.
type Sections struct {
	list  []*Section
	index map[string]int
}

// NewSections returns an empty set.
func NewSections() *Sections {
	return &Sections{index: make(map[string]int)}
}

// Open starts a fresh, empty section under name and returns it.
func (s *Sections) Open(name string) *Section {
	sec := &Section{Name: name}
	if i, ok := s.index[name]; ok {
		s.list[i] = sec
		return sec
	}
	s.index[name] = len(s.list)
	s.list = append(s.list, sec)
	return sec
}

// Get returns the section with the given name.
func (s *Sections) Get(name string) (*Section, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.list[i], true
}

// All returns the sections in document order.
func (s *Sections) All() []*Section {
	if s == nil {
		return nil
	}
	return s.list
}

// Names returns the section names in document order.
func (s *Sections) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.list))
	for i, sec := range s.list {
		names[i] = sec.Name
	}
	return names
}

// Segment walks the main panel in order and groups nodes into sections.
// A name-sized node opens the synthetic "Basic Info" section and supplies the
// profile name; a header-sized node opens a section keyed by its leading
// text. Every node, headers included, lands in the section open at the time.
// Nodes that precede any name or header are kept in "Basic Info" too.
func (l Layout) Segment(main []*Node) (name string, sections *Sections) {
	sections = NewSections()
	var cur *Section
	for _, n := range main {
		switch {
		case l.Is(n, ClassName):
			name = HeaderText(n)
			if cur == nil || cur.Name != BasicInfoSection {
				cur = sections.Open(BasicInfoSection)
			}
		case l.Is(n, ClassSection):
			cur = sections.Open(HeaderText(n))
		case cur == nil:
			cur = sections.Open(BasicInfoSection)
		}
		cur.Nodes = append(cur.Nodes, n)
	}
	return name, sections
}

// SidebarSection is a section of the left panel, such as "Contact" or
// "Top Skills", reduced to its cleaned text lines.
type SidebarSection struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// SegmentSidebar groups left-panel nodes under sidebar-sized headers. Lines
// before the first header and blank lines are discarded; the header line
// itself is not repeated in Lines.
func (l Layout) SegmentSidebar(left []*Node) []SidebarSection {
	var out []SidebarSection
	for _, n := range left {
		if l.Is(n, ClassSidebar) {
			out = append(out, SidebarSection{Name: HeaderText(n)})
			// A box can carry the header and its first lines together.
			if n.Kind == TextBox && len(n.Children) > 1 {
				out[len(out)-1].Lines = appendLines(out[len(out)-1].Lines, n.Children[1:])
			}
			continue
		}
		if len(out) == 0 {
			continue
		}
		out[len(out)-1].Lines = appendLines(out[len(out)-1].Lines, Leaves([]*Node{n}))
	}
	return out
}

func appendLines(lines []string, leaves []*Node) []string {
	for _, leaf := range leaves {
		if s := Clean(leaf.Text); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// eols lists the line terminators stripped from the end of text values.
var eols = []string{"\r\n", "\n", "\r"}

// TrimEOL removes any trailing line terminators.
func TrimEOL(s string) string {
	for {
		trimmed := s
		for _, eol := range eols {
			trimmed = strings.TrimSuffix(trimmed, eol)
		}
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}

// HeaderText returns the leading text of a name or header node, trimmed.
func HeaderText(n *Node) string {
	return TrimEOL(strings.TrimSpace(n.LeadingText()))
}

// Clean normalises a captured text value: surrounding whitespace and line
// terminators are removed, and so are no-break spaces left by extraction.
func Clean(s string) string {
	s = TrimEOL(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "\u00a0", "")
}
