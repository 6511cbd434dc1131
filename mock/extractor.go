package mock

import (
	"context"

	"github.com/fwojciec/cvparse"
)

var _ cvparse.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cvparse.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, name string, data []byte) (*cvparse.Document, error)
}

func (e *Extractor) Extract(ctx context.Context, name string, data []byte) (*cvparse.Document, error) {
	return e.ExtractFn(ctx, name, data)
}
