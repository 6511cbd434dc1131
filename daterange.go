package cvparse

import (
	"regexp"
	"strconv"
	"strings"
)

// DateRange is the span of a position or degree. Each field is a four-digit
// year or empty.
type DateRange struct {
	FromYear string `json:"from_year"`
	ToYear   string `json:"to_year"`
}

// IsZero reports whether neither year is known.
func (d DateRange) IsZero() bool {
	return d.FromYear == "" && d.ToYear == ""
}

var yearRe = regexp.MustCompile(`\d{4}`)

// ParseDateRange extracts years from free text such as
// "February 2019-Present (1 year 6 months)" or "(2005-2006)". The first two
// four-digit runs become FromYear and ToYear. A single year followed by
// "present" in any case resolves ToYear to year, the caller's current year.
func ParseDateRange(s string, year int) DateRange {
	years := yearRe.FindAllString(s, 2)
	switch len(years) {
	case 0:
		return DateRange{}
	case 1:
		d := DateRange{FromYear: years[0]}
		if strings.Contains(strings.ToLower(s), "present") {
			d.ToYear = strconv.Itoa(year)
		}
		return d
	default:
		return DateRange{FromYear: years[0], ToYear: years[1]}
	}
}
