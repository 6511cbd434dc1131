package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/cvparse"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cvparse.RecordService = (*RecordService)(nil)

// RecordService implements cvparse.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord stores a record with its entries in one transaction.
func (s *RecordService) CreateRecord(ctx context.Context, rec *cvparse.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	if rec.ParsedAt.IsZero() {
		rec.ParsedAt = time.Now().UTC()
	}
	rec.ParsedAt = rec.ParsedAt.UTC().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO records (id, source, content_hash, name, parsed_at)
		VALUES (?, ?, ?, ?, ?)
	`, rec.ID, rec.Source, rec.ContentHash, rec.Name, rec.ParsedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, e := range rec.Experience {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO experience (record_id, position, company, job_title, from_year, to_year)
			VALUES (?, ?, ?, ?, ?, ?)
		`, rec.ID, i, e.Company, e.JobTitle, e.Duration.FromYear, e.Duration.ToYear); err != nil {
			return err
		}
	}

	for i, e := range rec.Education {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO education (record_id, position, university, degree, major, from_year, to_year)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, rec.ID, i, e.University, e.Degree, e.Major, e.Duration.FromYear, e.Duration.ToYear); err != nil {
			return err
		}
	}

	// Position 0 holds the section header with a NULL line so that sections
	// without lines survive the round trip.
	for i, sec := range rec.Sidebar {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sidebar_lines (record_id, section_position, section, position, line)
			VALUES (?, ?, ?, 0, NULL)
		`, rec.ID, i, sec.Name); err != nil {
			return err
		}
		for j, line := range sec.Lines {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO sidebar_lines (record_id, section_position, section, position, line)
				VALUES (?, ?, ?, ?, ?)
			`, rec.ID, i, sec.Name, j+1, line); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// FindRecordByID retrieves a record with its entries by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*cvparse.Record, error) {
	recs, err := s.FindRecords(ctx, cvparse.RecordFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, cvparse.Errorf(cvparse.ENOTFOUND, "record not found")
	}
	return recs[0], nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter cvparse.RecordFilter) ([]*cvparse.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, content_hash, name, parsed_at FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY parsed_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	recs, err := s.scanRecords(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	for _, rec := range recs {
		if err := s.attachEntries(ctx, rec); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

func (s *RecordService) scanRecords(ctx context.Context, query string, args ...any) ([]*cvparse.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*cvparse.Record
	for rows.Next() {
		var rec cvparse.Record
		var parsedAt string

		if err := rows.Scan(&rec.ID, &rec.Source, &rec.ContentHash, &rec.Name, &parsedAt); err != nil {
			return nil, err
		}

		rec.ParsedAt, err = parseRFC3339(parsedAt, "parsed_at")
		if err != nil {
			return nil, err
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

// attachEntries loads the experience, education and sidebar rows of rec.
func (s *RecordService) attachEntries(ctx context.Context, rec *cvparse.Record) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT company, job_title, from_year, to_year
		FROM experience WHERE record_id = ? ORDER BY position
	`, rec.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var e cvparse.ExperienceEntry
		if err := rows.Scan(&e.Company, &e.JobTitle, &e.Duration.FromYear, &e.Duration.ToYear); err != nil {
			rows.Close()
			return err
		}
		rec.Experience = append(rec.Experience, e)
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	rows, err = s.db.QueryContext(ctx, `
		SELECT university, degree, major, from_year, to_year
		FROM education WHERE record_id = ? ORDER BY position
	`, rec.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var e cvparse.EducationEntry
		if err := rows.Scan(&e.University, &e.Degree, &e.Major, &e.Duration.FromYear, &e.Duration.ToYear); err != nil {
			rows.Close()
			return err
		}
		rec.Education = append(rec.Education, e)
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	rows, err = s.db.QueryContext(ctx, `
		SELECT section, line
		FROM sidebar_lines WHERE record_id = ? ORDER BY section_position, position
	`, rec.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var section string
		var line sql.NullString
		if err := rows.Scan(&section, &line); err != nil {
			rows.Close()
			return err
		}
		if !line.Valid {
			rec.Sidebar = append(rec.Sidebar, cvparse.SidebarSection{Name: section})
			continue
		}
		if n := len(rec.Sidebar); n > 0 {
			rec.Sidebar[n-1].Lines = append(rec.Sidebar[n-1].Lines, line.String)
		}
	}
	return closeRows(rows)
}

// DeleteRecord permanently removes a record. Entries go with it through
// ON DELETE CASCADE.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return cvparse.Errorf(cvparse.ENOTFOUND, "record not found")
	}

	return nil
}
