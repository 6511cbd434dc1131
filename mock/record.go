package mock

import (
	"context"

	"github.com/fwojciec/cvparse"
)

var _ cvparse.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of cvparse.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, rec *cvparse.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*cvparse.Record, error)
	FindRecordsFn    func(ctx context.Context, filter cvparse.RecordFilter) ([]*cvparse.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *cvparse.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*cvparse.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter cvparse.RecordFilter) ([]*cvparse.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}

var _ cvparse.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of cvparse.RecordStore.
type RecordStore struct {
	SaveFn   func(ctx context.Context, rec *cvparse.Record) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *RecordStore) Save(ctx context.Context, rec *cvparse.Record) error {
	return s.SaveFn(ctx, rec)
}

func (s *RecordStore) Commit() error {
	return s.CommitFn()
}

func (s *RecordStore) Abort() error {
	return s.AbortFn()
}

var _ cvparse.DuplicateFilter = (*DuplicateFilter)(nil)

// DuplicateFilter is a mock implementation of cvparse.DuplicateFilter.
type DuplicateFilter struct {
	SeenFn func(hash string) bool
}

func (f *DuplicateFilter) Seen(hash string) bool {
	return f.SeenFn(hash)
}
