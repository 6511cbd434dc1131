// Package excelize exports parsed records to an XLSX workbook using
// github.com/xuri/excelize/v2.
package excelize

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/cvparse"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	ProfilesSheet   = "Profiles"
	ExperienceSheet = "Experience"
	EducationSheet  = "Education"
)

var (
	profilesHeader   = []any{"Source", "Name", "Content Hash", "Positions", "Degrees"}
	experienceHeader = []any{"Source", "Name", "Company", "Job Title", "From", "To"}
	educationHeader  = []any{"Source", "Name", "University", "Degree", "Major", "From", "To"}
)

// Ensure Workbook implements cvparse.RecordStore at compile time.
var _ cvparse.RecordStore = (*Workbook)(nil)

// Workbook implements cvparse.RecordStore as a single XLSX file. Saved
// records are buffered in memory; Commit writes the workbook next to its
// final path and renames it into place.
type Workbook struct {
	path string

	mu      sync.Mutex
	records []*cvparse.Record
}

// NewWorkbook creates a Workbook that commits to path.
func NewWorkbook(path string) *Workbook {
	return &Workbook{path: path}
}

func (w *Workbook) Save(ctx context.Context, rec *cvparse.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.records = append(w.records, rec)
	return nil
}

func (w *Workbook) Commit() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := Build(w.records)
	if err != nil {
		return err
	}
	defer f.Close()

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+"-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return err
	}

	w.records = nil
	return nil
}

func (w *Workbook) Abort() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.records = nil
	return nil
}

// Build lays records out over the Profiles, Experience and Education
// sheets, one header row each, in the order given.
func Build(records []*cvparse.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), ProfilesSheet); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{ExperienceSheet, EducationSheet} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	rows := map[string][][]any{
		ProfilesSheet:   {profilesHeader},
		ExperienceSheet: {experienceHeader},
		EducationSheet:  {educationHeader},
	}
	for _, rec := range records {
		rows[ProfilesSheet] = append(rows[ProfilesSheet], []any{
			rec.Source, rec.Name, rec.ContentHash, len(rec.Experience), len(rec.Education),
		})
		for _, e := range rec.Experience {
			rows[ExperienceSheet] = append(rows[ExperienceSheet], []any{
				rec.Source, rec.Name, e.Company, e.JobTitle, e.Duration.FromYear, e.Duration.ToYear,
			})
		}
		for _, e := range rec.Education {
			rows[EducationSheet] = append(rows[EducationSheet], []any{
				rec.Source, rec.Name, e.University, e.Degree, e.Major, e.Duration.FromYear, e.Duration.ToYear,
			})
		}
	}

	for sheet, sheetRows := range rows {
		for i, row := range sheetRows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				f.Close()
				return nil, err
			}
		}
	}
	return f, nil
}
