package cvparse_test

import (
	"testing"

	"github.com/fwojciec/cvparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_Segment(t *testing.T) {
	t.Parallel()

	t.Run("extracts the name and opens Basic Info", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout()
		name := box(mainLine(760, sizeName, "Jane Doe\n"), mainLine(735, sizeBody, "Engineer\n"))
		headline := mainLine(720, sizeBody, "San Francisco\n")

		got, sections := layout.Segment([]*cvparse.Node{name, headline})

		assert.Equal(t, "Jane Doe", got)
		assert.Equal(t, []string{cvparse.BasicInfoSection}, sections.Names())
		basic, ok := sections.Get(cvparse.BasicInfoSection)
		require.True(t, ok)
		assert.Equal(t, []*cvparse.Node{name, headline}, basic.Nodes)
	})

	t.Run("groups nodes under headers including the header itself", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout()
		name := mainLine(760, sizeName, "Jane Doe\n")
		summary := mainLine(700, sizeSection, "  Summary \n")
		text := mainLine(680, sizeBody, "Builds things.\n")
		exp := mainLine(600, sizeSection, "Experience\n")
		company := mainLine(580, sizeCompany, "Acme\n")

		_, sections := layout.Segment([]*cvparse.Node{name, summary, text, exp, company})

		assert.Equal(t, []string{"Basic Info", "Summary", "Experience"}, sections.Names())
		s, _ := sections.Get("Summary")
		assert.Equal(t, []*cvparse.Node{summary, text}, s.Nodes)
		e, _ := sections.Get("Experience")
		assert.Equal(t, []*cvparse.Node{exp, company}, e.Nodes)
	})

	t.Run("every node lands in exactly one section in order", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout()
		nodes := []*cvparse.Node{
			mainLine(760, sizeName, "Jane Doe\n"),
			mainLine(740, sizeBody, "a\n"),
			mainLine(700, sizeSection, "Experience\n"),
			mainLine(690, sizeCompany, "b\n"),
			mainLine(600, sizeSection, "Education\n"),
			mainLine(590, sizeCompany, "c\n"),
		}

		_, sections := layout.Segment(nodes)

		var flattened []*cvparse.Node
		for _, s := range sections.All() {
			flattened = append(flattened, s.Nodes...)
		}
		assert.Equal(t, nodes, flattened)
	})

	t.Run("keeps nodes preceding the name in Basic Info", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout()
		early := mainLine(780, sizeBody, "www.example.com/in/jane\n")
		name := mainLine(760, sizeName, "Jane Doe\n")

		got, sections := layout.Segment([]*cvparse.Node{early, name})

		assert.Equal(t, "Jane Doe", got)
		basic, ok := sections.Get(cvparse.BasicInfoSection)
		require.True(t, ok)
		assert.Equal(t, []*cvparse.Node{early, name}, basic.Nodes)
	})

	t.Run("repeated header replaces the earlier bucket", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout()
		first := mainLine(700, sizeSection, "Experience\n")
		firstBody := mainLine(690, sizeBody, "old\n")
		other := mainLine(650, sizeSection, "Skills\n")
		second := mainLine(600, sizeSection, "Experience\n")
		secondBody := mainLine(590, sizeBody, "new\n")

		_, sections := layout.Segment([]*cvparse.Node{first, firstBody, other, second, secondBody})

		assert.Equal(t, []string{"Experience", "Skills"}, sections.Names())
		e, _ := sections.Get("Experience")
		assert.Equal(t, []*cvparse.Node{second, secondBody}, e.Nodes)
	})

	t.Run("empty header text becomes an untitled bucket", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout()
		header := mainLine(700, sizeSection, " \n")
		body := mainLine(690, sizeBody, "orphan\n")

		_, sections := layout.Segment([]*cvparse.Node{header, body})

		untitled, ok := sections.Get("")
		require.True(t, ok)
		assert.Equal(t, []*cvparse.Node{header, body}, untitled.Nodes)
	})

	t.Run("returns no sections for an empty panel", func(t *testing.T) {
		t.Parallel()

		name, sections := cvparse.DefaultLayout().Segment(nil)

		assert.Empty(t, name)
		assert.Empty(t, sections.All())
	})
}

func TestLayout_SegmentSidebar(t *testing.T) {
	t.Parallel()

	t.Run("groups cleaned lines under sidebar headers", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout()
		left := []*cvparse.Node{
			leaf(leftX, 780, sizeBody, "before any header\n"),
			leaf(leftX, 760, sizeSidebar, "Contact\n"),
			leaf(leftX, 740, sizeBody, "jane@example.com \n"),
			box(
				leaf(leftX, 700, sizeSidebar, "Languages\n"),
				leaf(leftX, 685, sizeBody, "English (Native)\n"),
				leaf(leftX, 670, sizeBody, "\u00a0\n"),
			),
			leaf(leftX, 650, sizeBody, "German\n"),
		}

		got := layout.SegmentSidebar(left)

		assert.Equal(t, []cvparse.SidebarSection{
			{Name: "Contact", Lines: []string{"jane@example.com"}},
			{Name: "Languages", Lines: []string{"English (Native)", "German"}},
		}, got)
	})
}

func TestClean(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Acme Corp", cvparse.Clean("  Acme Corp \r\n"))
	assert.Equal(t, "AcmeCorp", cvparse.Clean("Acme\u00a0Corp\n"))
	assert.Equal(t, "", cvparse.Clean("\n\n"))
}

func TestTrimEOL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "line", cvparse.TrimEOL("line\r\n\n\r"))
	assert.Equal(t, " line ", cvparse.TrimEOL(" line "))
}
