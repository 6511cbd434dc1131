package cvparse

import (
	"context"
	"time"
)

// Record is the structured result of parsing one profile document.
type Record struct {
	ID          string            `json:"id,omitempty"`
	Source      string            `json:"source,omitempty"`
	ContentHash string            `json:"content_hash,omitempty"`
	Name        string            `json:"name"`
	Experience  []ExperienceEntry `json:"experience"`
	Education   []EducationEntry  `json:"education"`
	Sidebar     []SidebarSection  `json:"sidebar,omitempty"`
	ParsedAt    time.Time         `json:"parsed_at,omitzero"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Source == "" {
		return Errorf(EINVALID, "record source required")
	}
	return nil
}

// SidebarLines returns the lines of the named sidebar section, or nil.
func (r *Record) SidebarLines(name string) []string {
	for _, s := range r.Sidebar {
		if s.Name == name {
			return s.Lines
		}
	}
	return nil
}

// Extractor decodes a source document into positioned layout nodes.
type Extractor interface {
	// Extract decodes data. name identifies the source in errors.
	// Returns EDENIED if the document forbids text extraction.
	Extract(ctx context.Context, name string, data []byte) (*Document, error)
}

// DocumentParser turns an extracted document into a record.
type DocumentParser interface {
	// Parse returns ENOTFOUND if a required section is missing.
	Parse(ctx context.Context, doc *Document) (*Record, error)
}

// RecordService represents a service for managing parsed records.
type RecordService interface {
	// CreateRecord stores a new record and assigns its ID.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record and its entries.
	// Returns ENOTFOUND if record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordStore persists records to an export target with atomic semantics.
// Save stages a record; Commit makes all staged records permanent;
// Abort discards them.
type RecordStore interface {
	Save(ctx context.Context, rec *Record) error
	Commit() error
	Abort() error
}

// DuplicateFilter remembers content hashes seen during a run.
type DuplicateFilter interface {
	// Seen reports whether hash was seen before and records it.
	// False positives are possible; false negatives are not.
	Seen(hash string) bool
}
