package mock

import (
	"context"

	"github.com/fwojciec/cvparse"
)

var _ cvparse.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of cvparse.DocumentParser.
type DocumentParser struct {
	ParseFn func(ctx context.Context, doc *cvparse.Document) (*cvparse.Record, error)
}

func (p *DocumentParser) Parse(ctx context.Context, doc *cvparse.Document) (*cvparse.Record, error) {
	return p.ParseFn(ctx, doc)
}
