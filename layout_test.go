package cvparse_test

import (
	"testing"

	"github.com/fwojciec/cvparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_Contains(t *testing.T) {
	t.Parallel()

	t.Run("contains sizes strictly inside the window", func(t *testing.T) {
		t.Parallel()

		w := cvparse.Window{Typical: 12, Tolerance: 0.5}

		assert.True(t, w.Contains(12))
		assert.True(t, w.Contains(11.51))
		assert.True(t, w.Contains(12.49))
	})

	t.Run("excludes both boundaries for every default class", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout()
		for _, class := range cvparse.FontClasses {
			w := layout.Window(class)
			assert.False(t, w.Contains(w.Typical-w.Tolerance), "lower bound of %s", class)
			assert.False(t, w.Contains(w.Typical+w.Tolerance), "upper bound of %s", class)
			assert.True(t, w.Contains(w.Typical), "typical size of %s", class)
		}
	})

	t.Run("zero window contains nothing", func(t *testing.T) {
		t.Parallel()

		assert.False(t, cvparse.Window{}.Contains(0))
		assert.False(t, cvparse.DefaultLayout().Window("unknown").Contains(12))
	})
}

func TestLayout_Is(t *testing.T) {
	t.Parallel()

	t.Run("classifies a box by its first line", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout()
		n := box(mainLine(700, sizeCompany, "Acme\n"), mainLine(690, sizeTitle, "Engineer\n"))

		assert.True(t, layout.Is(n, cvparse.ClassCompany))
		assert.False(t, layout.Is(n, cvparse.ClassDuration))
	})

	t.Run("malformed nodes have no font size", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout()
		empty := &cvparse.Node{Kind: cvparse.TextBox}
		rect := &cvparse.Node{Kind: cvparse.Rectangle}

		assert.Zero(t, empty.FontSize())
		assert.Zero(t, rect.FontSize())
		for _, class := range cvparse.FontClasses {
			assert.False(t, layout.Is(empty, class))
			assert.False(t, layout.Is(nil, class))
		}
	})
}

func TestLayout_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts the default layout", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, cvparse.DefaultLayout().Validate())
	})

	t.Run("rejects a missing class", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout().Clone()
		delete(layout.Classes, cvparse.ClassTitle)

		err := layout.Validate()

		require.Error(t, err)
		assert.Equal(t, cvparse.EINVALID, cvparse.ErrorCode(err))
		assert.Contains(t, cvparse.ErrorMessage(err), "title")
	})

	t.Run("rejects a non-positive tolerance", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout().Clone()
		layout.Classes[cvparse.ClassName] = cvparse.Window{Typical: 26}

		assert.Equal(t, cvparse.EINVALID, cvparse.ErrorCode(layout.Validate()))
	})

	t.Run("rejects a split ratio outside the page", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout()
		layout.SplitRatio = 1

		assert.Equal(t, cvparse.EINVALID, cvparse.ErrorCode(layout.Validate()))
	})

	t.Run("rejects a non-positive page width", func(t *testing.T) {
		t.Parallel()

		layout := cvparse.DefaultLayout()
		layout.PageWidth = 0

		assert.Equal(t, cvparse.EINVALID, cvparse.ErrorCode(layout.Validate()))
	})
}

func TestLayout_Clone(t *testing.T) {
	t.Parallel()

	original := cvparse.DefaultLayout()
	clone := original.Clone()
	clone.Classes[cvparse.ClassName] = cvparse.Window{Typical: 30, Tolerance: 1}

	assert.Equal(t, 26.0, original.Window(cvparse.ClassName).Typical)
	assert.Equal(t, 204.0, original.SplitX())
}
