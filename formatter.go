package cvparse

import (
	"fmt"
	"strings"
)

// FormatRecord renders a record as plain text for terminal display.
// Uses the profile name if available, falls back to the source.
func FormatRecord(rec *Record) string {
	if rec == nil {
		return ""
	}

	var b strings.Builder
	header := rec.Name
	if header == "" {
		header = rec.Source
	}
	b.WriteString("# " + header + "\n")

	b.WriteString("\n## Experience\n")
	if len(rec.Experience) == 0 {
		b.WriteString("(none)\n")
	}
	for _, e := range rec.Experience {
		title := e.JobTitle
		if title == "" {
			title = "(no title)"
		}
		fmt.Fprintf(&b, "- %s, %s %s\n", title, e.Company, formatRange(e.Duration))
	}

	b.WriteString("\n## Education\n")
	if len(rec.Education) == 0 {
		b.WriteString("(none)\n")
	}
	for _, e := range rec.Education {
		parts := []string{e.Degree}
		if e.Major != "" {
			parts = append(parts, e.Major)
		}
		fmt.Fprintf(&b, "- %s, %s %s\n", strings.Join(parts, ", "), e.University, formatRange(e.Duration))
	}

	for _, s := range rec.Sidebar {
		b.WriteString("\n## " + s.Name + "\n")
		for _, line := range s.Lines {
			b.WriteString("- " + line + "\n")
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func formatRange(d DateRange) string {
	if d.IsZero() {
		return "(dates unknown)"
	}
	to := d.ToYear
	if to == "" {
		to = "?"
	}
	return "(" + d.FromYear + "-" + to + ")"
}
