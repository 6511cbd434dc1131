package cvparse_test

import (
	"github.com/fwojciec/cvparse"
)

// Font sizes of the default layout.
const (
	sizeName     = 26
	sizeSection  = 15.75
	sizeSidebar  = 13
	sizeCompany  = 12
	sizeTitle    = 11.5
	sizeDuration = 10.5
	sizeBody     = 9
)

// mainX and leftX are left edges well inside each panel.
const (
	mainX = 250
	leftX = 30
)

// leaf returns a text line at the given left edge and top edge.
func leaf(x0, y1, size float64, text string) *cvparse.Node {
	return cvparse.NewTextLine(cvparse.Rect{X0: x0, Y0: y1 - size, X1: x0 + 200, Y1: y1}, size, text)
}

// mainLine returns a main-panel line whose top edge is y1.
func mainLine(y1, size float64, text string) *cvparse.Node {
	return leaf(mainX, y1, size, text)
}

// box wraps lines into a text box.
func box(lines ...*cvparse.Node) *cvparse.Node {
	return cvparse.NewTextBox(lines...)
}

// page returns page 1 of the default template holding nodes.
func page(nodes ...*cvparse.Node) *cvparse.Page {
	return &cvparse.Page{Number: 1, Width: 612, Height: 792, Nodes: nodes}
}

// sampleDocument builds a one-page profile with a sidebar, a name, one
// experience entry and one education entry.
func sampleDocument() *cvparse.Document {
	return &cvparse.Document{
		Name: "jane.pdf",
		Pages: []*cvparse.Page{page(
			leaf(leftX, 760, sizeSidebar, "Contact\n"),
			leaf(leftX, 740, sizeBody, "jane@example.com\n"),
			box(
				leaf(leftX, 700, sizeSidebar, "Top Skills\n"),
				leaf(leftX, 685, sizeBody, "Go\n"),
				leaf(leftX, 670, sizeBody, "PostgreSQL\n"),
			),
			mainLine(760, sizeName, "Jane Doe\n"),
			mainLine(730, sizeBody, "Staff Engineer at Acme\n"),
			mainLine(700, sizeSection, "Experience\n"),
			box(
				mainLine(680, sizeCompany, "Acme Corp\n"),
				mainLine(665, sizeTitle, "Staff Engineer\n"),
				mainLine(650, sizeDuration, "February 2019 - Present (1 year 6 months)\n"),
				mainLine(638, sizeDuration, "San Francisco Bay Area\n"),
			),
			mainLine(600, sizeSection, "Education\n"),
			box(
				mainLine(580, sizeCompany, "State University\n"),
				mainLine(565, sizeDuration, "Bachelor's Degree, Computer Science, (2005-2009)\n"),
			),
			leaf(270, 20, sizeBody, "Page 1 of 1\n"),
		)},
	}
}
