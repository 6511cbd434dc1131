// Package cvparse turns two-column profile exports (résumé PDFs that follow
// one fixed template) into structured records. Structure is recovered only
// from geometry and font size: the page is split into a sidebar and a main
// panel, the main panel is cut into sections at header-sized fragments, and
// small state machines walk the Experience and Education sections.
//
// This package contains domain types, interfaces and the pure parsing core
// following Ben Johnson's Standard Package Layout. Implementations that touch
// the outside world live in subdirectories named after their primary
// dependency (e.g., pdf/, sqlite/, excelize/).
package cvparse
