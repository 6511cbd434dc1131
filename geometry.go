package cvparse

import "strings"

// Rect is an axis-aligned bounding box in page space. Y grows upward, so Y1
// is the top edge.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Union returns the smallest box containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// NodeKind identifies what a layout node is.
type NodeKind int

// Layout node kinds produced by an Extractor.
const (
	// TextLine is a leaf: one run of glyphs sharing a baseline and size.
	TextLine NodeKind = iota
	// TextBox is a composite of TextLine children.
	TextBox
	Rectangle
	Line
	Image
	Figure
)

// String returns the kind name.
func (k NodeKind) String() string {
	switch k {
	case TextLine:
		return "textline"
	case TextBox:
		return "textbox"
	case Rectangle:
		return "rect"
	case Line:
		return "line"
	case Image:
		return "image"
	case Figure:
		return "figure"
	}
	return "unknown"
}

// IsText reports whether the kind carries text.
func (k NodeKind) IsText() bool {
	return k == TextLine || k == TextBox
}

// Node is one layout element on a page. Nodes are immutable once an
// Extractor has produced them.
type Node struct {
	Kind NodeKind
	BBox Rect

	// Size is the glyph height of a TextLine. Boxes derive theirs from the
	// first child.
	Size float64

	// Text is the raw text of a TextLine including its line terminator.
	// For a TextBox it is the concatenation of the children.
	Text string

	Children []*Node
}

// FontSize returns the dominant font size of the node: a line's own size or
// the size of a box's first text-bearing child. It returns 0 when the node
// has no readable text structure, which makes every window check fail.
func (n *Node) FontSize() float64 {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case TextLine:
		return n.Size
	case TextBox:
		if len(n.Children) > 0 && n.Children[0] != nil && n.Children[0].Kind.IsText() {
			return n.Children[0].FontSize()
		}
	}
	return 0
}

// LeadingText returns the text of a line, or the text of a box's first
// text-bearing child. Non-text nodes return "".
func (n *Node) LeadingText() string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case TextLine:
		return n.Text
	case TextBox:
		if len(n.Children) > 0 && n.Children[0] != nil && n.Children[0].Kind.IsText() {
			return n.Children[0].LeadingText()
		}
	}
	return ""
}

// FullText returns the complete text of the node.
func (n *Node) FullText() string {
	if n == nil {
		return ""
	}
	if n.Kind == TextBox && n.Text == "" {
		var b strings.Builder
		for _, c := range n.Children {
			b.WriteString(c.FullText())
		}
		return b.String()
	}
	return n.Text
}

// NewTextLine builds a leaf text node.
func NewTextLine(bbox Rect, size float64, text string) *Node {
	return &Node{Kind: TextLine, BBox: bbox, Size: size, Text: text}
}

// NewTextBox builds a composite text node from lines. The box's bounding
// box is the union of its lines.
func NewTextBox(lines ...*Node) *Node {
	box := &Node{Kind: TextBox, Children: lines}
	var b strings.Builder
	for i, l := range lines {
		if i == 0 {
			box.BBox = l.BBox
		} else {
			box.BBox = box.BBox.Union(l.BBox)
		}
		b.WriteString(l.Text)
	}
	box.Text = b.String()
	return box
}

// Leaves expands boxes into their text lines, keeping loose lines as they
// are. Order is preserved and non-text nodes are dropped.
func Leaves(nodes []*Node) []*Node {
	var out []*Node
	for _, n := range nodes {
		if n == nil {
			continue
		}
		switch n.Kind {
		case TextBox:
			for _, c := range n.Children {
				if c != nil && c.Kind == TextLine {
					out = append(out, c)
				}
			}
		case TextLine:
			out = append(out, n)
		}
	}
	return out
}

// Page is the ordered list of layout nodes of one page, in the extraction
// order (top to bottom, left to right for the target template).
type Page struct {
	Number int     `json:"number"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Nodes  []*Node `json:"-"`
}

// Document is an extracted source document.
type Document struct {
	// Name identifies the source, typically its file path.
	Name string

	// ContentHash is the hash of the raw source bytes.
	ContentHash string

	Pages []*Page
}

// Validate returns an error if the document cannot be parsed.
func (d *Document) Validate() error {
	if d == nil {
		return Errorf(EINVALID, "document required")
	}
	if len(d.Pages) == 0 {
		return Errorf(EINVALID, "document %q has no pages", d.Name)
	}
	return nil
}
