// Package yaml loads layout tables from YAML files using gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/cvparse"
	"gopkg.in/yaml.v3"
)

// layoutFile mirrors cvparse.Layout with optional fields so that a file only
// needs to name the values it overrides.
type layoutFile struct {
	PageWidth     *float64               `yaml:"page_width"`
	SplitRatio    *float64               `yaml:"split_ratio"`
	FooterHeight  *float64               `yaml:"footer_height"`
	BlankSentinel *string                `yaml:"blank_sentinel"`
	Classes       map[string]windowPatch `yaml:"classes"`
}

type windowPatch struct {
	Typical   *float64 `yaml:"typical"`
	Tolerance *float64 `yaml:"tolerance"`
}

// LoadLayout reads a layout file. Returns ENOTFOUND if the file does not
// exist.
func LoadLayout(path string) (cvparse.Layout, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cvparse.Layout{}, cvparse.Errorf(cvparse.ENOTFOUND, "layout file not found: %s", path)
	} else if err != nil {
		return cvparse.Layout{}, err
	}
	return ParseLayout(data)
}

// ParseLayout applies the YAML document in data on top of
// cvparse.DefaultLayout and validates the result. Unknown keys and font
// classes are rejected with EINVALID.
func ParseLayout(data []byte) (cvparse.Layout, error) {
	layout := cvparse.DefaultLayout()

	var f layoutFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return cvparse.Layout{}, cvparse.Errorf(cvparse.EINVALID, "invalid layout file: %v", err)
	}

	if f.PageWidth != nil {
		layout.PageWidth = *f.PageWidth
	}
	if f.SplitRatio != nil {
		layout.SplitRatio = *f.SplitRatio
	}
	if f.FooterHeight != nil {
		layout.FooterHeight = *f.FooterHeight
	}
	if f.BlankSentinel != nil {
		layout.BlankSentinel = *f.BlankSentinel
	}

	known := make(map[cvparse.FontClass]bool, len(cvparse.FontClasses))
	for _, c := range cvparse.FontClasses {
		known[c] = true
	}
	for name, patch := range f.Classes {
		class := cvparse.FontClass(name)
		if !known[class] {
			return cvparse.Layout{}, cvparse.Errorf(cvparse.EINVALID, "unknown font class %q", name)
		}
		w := layout.Classes[class]
		if patch.Typical != nil {
			w.Typical = *patch.Typical
		}
		if patch.Tolerance != nil {
			w.Tolerance = *patch.Tolerance
		}
		layout.Classes[class] = w
	}

	if err := layout.Validate(); err != nil {
		return cvparse.Layout{}, err
	}
	return layout, nil
}
