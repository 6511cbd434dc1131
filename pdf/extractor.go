// Package pdf decodes PDF files into positioned layout nodes using
// github.com/ledongthuc/pdf.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"

	"github.com/fwojciec/cvparse"
	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// Ensure Extractor implements cvparse.Extractor at compile time.
var _ cvparse.Extractor = (*Extractor)(nil)

// permExtract is the encryption permission bit allowing text extraction.
const permExtract = 1 << 4

// Extractor groups the glyphs of each page into text lines and text boxes.
type Extractor struct {
	// LineTolerance is the maximum baseline difference, in layout units, for
	// glyphs to join the same line.
	LineTolerance float64

	// GapFactor scales the font size into the widest horizontal gap allowed
	// inside one line.
	GapFactor float64

	// BoxGapFactor scales the font size into the largest vertical gap
	// allowed between two lines of the same box.
	BoxGapFactor float64
}

// NewExtractor returns an Extractor with defaults tuned for profile exports.
func NewExtractor() *Extractor {
	return &Extractor{
		LineTolerance: 1.0,
		GapFactor:     1.5,
		BoxGapFactor:  0.8,
	}
}

// Extract decodes data. It returns EDENIED when the encryption dictionary
// forbids text extraction and EINVALID when the file cannot be read.
func (e *Extractor) Extract(ctx context.Context, name string, data []byte) (doc *cvparse.Document, err error) {
	// The reader panics on some malformed files.
	defer func() {
		if p := recover(); p != nil {
			doc, err = nil, cvparse.Errorf(cvparse.EINVALID, "%s: malformed PDF: %v", name, p)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, cvparse.Errorf(cvparse.EDENIED, "%s: document is encrypted", name)
		}
		return nil, cvparse.Errorf(cvparse.EINVALID, "%s: cannot read PDF: %v", name, err)
	}
	if !extractable(r) {
		return nil, cvparse.Errorf(cvparse.EDENIED, "%s: text extraction not allowed", name)
	}

	doc = &cvparse.Document{Name: name}
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		doc.Pages = append(doc.Pages, e.page(i, p))
	}
	if len(doc.Pages) == 0 {
		return nil, cvparse.Errorf(cvparse.EINVALID, "%s: no pages", name)
	}
	return doc, nil
}

func extractable(r *pdf.Reader) bool {
	enc := r.Trailer().Key("Encrypt")
	if enc.IsNull() {
		return true
	}
	p := enc.Key("P")
	if p.IsNull() {
		return true
	}
	return p.Int64()&permExtract != 0
}

func (e *Extractor) page(num int, p pdf.Page) *cvparse.Page {
	out := &cvparse.Page{Number: num}
	if box := p.V.Key("MediaBox"); box.Len() == 4 {
		out.Width = box.Index(2).Float64() - box.Index(0).Float64()
		out.Height = box.Index(3).Float64() - box.Index(1).Float64()
	}

	content := p.Content()
	lines := e.lines(content.Text)
	out.Nodes = append(out.Nodes, e.boxes(lines)...)
	for _, r := range content.Rect {
		out.Nodes = append(out.Nodes, &cvparse.Node{
			Kind: cvparse.Rectangle,
			BBox: cvparse.Rect{X0: r.Min.X, Y0: r.Min.Y, X1: r.Max.X, Y1: r.Max.Y},
		})
	}
	return out
}

// run is a line under construction.
type run struct {
	size    float64
	base    float64
	x0, x1  float64
	builder strings.Builder
}

// lines joins glyphs that share a baseline and font size into text lines.
// Glyphs arrive in content-stream order, which for the target template is
// already reading order within a column.
func (e *Extractor) lines(glyphs []pdf.Text) []*cvparse.Node {
	var out []*cvparse.Node
	var cur *run
	flush := func() {
		if cur == nil {
			return
		}
		text := norm.NFC.String(cur.builder.String())
		// Whitespace-only lines are kept only when they carry a non-breaking
		// space, which the panel filter recognises as a template spacer.
		if strings.TrimSpace(text) != "" || strings.Contains(text, "\u00a0") {
			out = append(out, cvparse.NewTextLine(cvparse.Rect{
				X0: cur.x0,
				Y0: cur.base,
				X1: cur.x1,
				Y1: cur.base + cur.size,
			}, round2(cur.size), text+"\n"))
		}
		cur = nil
	}

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		if cur != nil && !e.continues(cur, g) {
			flush()
		}
		if cur == nil {
			cur = &run{size: g.FontSize, base: g.Y, x0: g.X, x1: g.X}
		} else if g.X-cur.x1 > g.FontSize*0.2 && !strings.HasSuffix(cur.builder.String(), " ") {
			cur.builder.WriteByte(' ')
		}
		cur.builder.WriteString(g.S)
		cur.x1 = max(cur.x1, g.X+g.W)
	}
	flush()
	return out
}

func (e *Extractor) continues(cur *run, g pdf.Text) bool {
	if math.Abs(g.Y-cur.base) > e.LineTolerance {
		return false
	}
	if math.Abs(g.FontSize-cur.size) > 0.01 {
		return false
	}
	gap := g.X - cur.x1
	return gap >= -cur.size && gap <= cur.size*e.GapFactor
}

// boxes groups consecutive lines with the same left edge and font size whose
// vertical gap is small into text boxes. Lone lines stay loose.
func (e *Extractor) boxes(lines []*cvparse.Node) []*cvparse.Node {
	var out []*cvparse.Node
	var group []*cvparse.Node
	flush := func() {
		switch len(group) {
		case 0:
		case 1:
			out = append(out, group[0])
		default:
			out = append(out, cvparse.NewTextBox(group...))
		}
		group = nil
	}
	for _, l := range lines {
		if len(group) > 0 && !e.sameBox(group[len(group)-1], l) {
			flush()
		}
		group = append(group, l)
	}
	flush()
	return out
}

func (e *Extractor) sameBox(prev, next *cvparse.Node) bool {
	if math.Abs(prev.BBox.X0-next.BBox.X0) > e.LineTolerance {
		return false
	}
	if math.Abs(prev.Size-next.Size) > 0.01 {
		return false
	}
	gap := prev.BBox.Y0 - next.BBox.Y1
	return gap >= 0 && gap <= prev.Size*e.BoxGapFactor
}

// round2 rounds a font size to two decimals so that sizes such as 15.75
// survive the float noise of text matrices.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
