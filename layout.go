package cvparse

// FontClass names the semantic role a font size stands for in the template.
type FontClass string

// Font classes of the two-column profile template.
const (
	ClassName       FontClass = "name"
	ClassSection    FontClass = "section"
	ClassSidebar    FontClass = "sidebar"
	ClassCompany    FontClass = "company"
	ClassTitle      FontClass = "title"
	ClassDuration   FontClass = "duration"
	ClassUniversity FontClass = "university"
	ClassInfo       FontClass = "info"
)

// FontClasses lists every class a Layout must define.
var FontClasses = []FontClass{
	ClassName,
	ClassSection,
	ClassSidebar,
	ClassCompany,
	ClassTitle,
	ClassDuration,
	ClassUniversity,
	ClassInfo,
}

// Window is a font-size tolerance range around a typical size.
type Window struct {
	Typical   float64 `json:"typical" yaml:"typical"`
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
}

// Contains reports whether size lies strictly inside the window. Sizes equal
// to Typical±Tolerance are outside.
func (w Window) Contains(size float64) bool {
	return size > w.Typical-w.Tolerance && size < w.Typical+w.Tolerance
}

// Section names the parser looks up in the main panel.
const (
	BasicInfoSection  = "Basic Info"
	ExperienceSection = "Experience"
	EducationSection  = "Education"
)

// Layout holds every tunable of the template. A Layout is a value: copy it,
// modify the copy, and pass it along; the pipeline never mutates it.
type Layout struct {
	Classes map[FontClass]Window

	// PageWidth is the fixed page width of the template in layout units.
	PageWidth float64

	// SplitRatio places the panel split line at PageWidth*SplitRatio.
	SplitRatio float64

	// FooterHeight drops nodes whose top edge is at or below it.
	FooterHeight float64

	// BlankSentinel is the exact text of extraction artifacts to drop.
	BlankSentinel string
}

// DefaultLayout returns the layout of the standard profile PDF export.
func DefaultLayout() Layout {
	return Layout{
		Classes: map[FontClass]Window{
			ClassName:       {Typical: 26, Tolerance: 0.5},
			ClassSection:    {Typical: 15.75, Tolerance: 0.5},
			ClassSidebar:    {Typical: 13, Tolerance: 0.5},
			ClassCompany:    {Typical: 12, Tolerance: 0.5},
			ClassTitle:      {Typical: 11.5, Tolerance: 0.5},
			ClassDuration:   {Typical: 10.5, Tolerance: 0.5},
			ClassUniversity: {Typical: 12, Tolerance: 0.5},
			ClassInfo:       {Typical: 10.5, Tolerance: 0.5},
		},
		PageWidth:     612,
		SplitRatio:    1.0 / 3.0,
		FooterHeight:  25,
		BlankSentinel: "\u00a0\n",
	}
}

// Validate returns an error if the layout is unusable.
func (l Layout) Validate() error {
	for _, c := range FontClasses {
		w, ok := l.Classes[c]
		if !ok {
			return Errorf(EINVALID, "layout font class %q required", c)
		}
		if w.Tolerance <= 0 {
			return Errorf(EINVALID, "layout font class %q: tolerance must be positive", c)
		}
		if w.Typical <= 0 {
			return Errorf(EINVALID, "layout font class %q: typical size must be positive", c)
		}
	}
	if l.PageWidth <= 0 {
		return Errorf(EINVALID, "layout page width must be positive")
	}
	if l.SplitRatio <= 0 || l.SplitRatio >= 1 {
		return Errorf(EINVALID, "layout split ratio must be between 0 and 1")
	}
	return nil
}

// Window returns the window of a class. Unknown classes get a zero window,
// which contains nothing.
func (l Layout) Window(c FontClass) Window {
	return l.Classes[c]
}

// Is reports whether the node's font size falls in the window of class c.
func (l Layout) Is(n *Node, c FontClass) bool {
	return l.Window(c).Contains(n.FontSize())
}

// SplitX returns the x coordinate separating the sidebar from the main panel.
func (l Layout) SplitX() float64 {
	return l.PageWidth * l.SplitRatio
}

// Clone returns a copy of the layout that shares no state with l.
func (l Layout) Clone() Layout {
	c := l
	c.Classes = make(map[FontClass]Window, len(l.Classes))
	for k, v := range l.Classes {
		c.Classes[k] = v
	}
	return c
}
