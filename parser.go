package cvparse

import (
	"context"
	"time"
)

// Compile-time interface verification.
var _ DocumentParser = (*Parser)(nil)

// Parser runs the layout pipeline: panel split, section segmentation, and
// the Experience and Education scanners.
type Parser struct {
	Layout Layout

	// Now returns the time used to resolve "Present" in date ranges.
	// Defaults to time.Now. Fix it for reproducible output.
	Now func() time.Time
}

// NewParser returns a Parser for the given layout. The parser keeps its own
// copy, so later changes to layout do not affect it.
func NewParser(layout Layout) *Parser {
	return &Parser{Layout: layout.Clone(), Now: time.Now}
}

// Parse converts an extracted document into a record. It returns ENOTFOUND
// when the Experience or Education section is missing entirely; a present
// but empty section yields no entries.
func (p *Parser) Parse(ctx context.Context, doc *Document) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.Layout.Validate(); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	year := p.now().Year()
	panels := p.Layout.SplitPanels(doc.Pages)
	name, sections := p.Layout.Segment(panels.Main)

	exp, ok := sections.Get(ExperienceSection)
	if !ok {
		return nil, Errorf(ENOTFOUND, "section %q not found in %s", ExperienceSection, doc.Name)
	}
	edu, ok := sections.Get(EducationSection)
	if !ok {
		return nil, Errorf(ENOTFOUND, "section %q not found in %s", EducationSection, doc.Name)
	}

	return &Record{
		Source:      doc.Name,
		ContentHash: doc.ContentHash,
		Name:        name,
		Experience:  p.Layout.ParseExperience(Leaves(exp.Nodes), year),
		Education:   p.Layout.ParseEducation(Leaves(edu.Nodes), year),
		Sidebar:     p.Layout.SegmentSidebar(panels.Left),
	}, nil
}

func (p *Parser) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
