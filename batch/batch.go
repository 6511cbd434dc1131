// Package batch parses many profile documents concurrently.
// It coordinates reading, extraction, parsing, deduplication and storage,
// isolating per-document failures.
package batch

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/fwojciec/cvparse"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel documents when Runner.Concurrency is unset.
const DefaultConcurrency = 4

// Runner orchestrates parsing a list of documents.
type Runner struct {
	Extractor cvparse.Extractor
	Parser    cvparse.DocumentParser

	// Records, when set, receives every parsed record.
	Records cvparse.RecordService

	// Stores receive every parsed record and are committed at the end of a
	// run, or aborted when the run is canceled.
	Stores []cvparse.RecordStore

	// Duplicates, when set, skips documents whose content was seen before.
	Duplicates cvparse.DuplicateFilter

	Concurrency int

	// ReadFile loads a document. Defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)

	// Now stamps ParsedAt on records. Defaults to time.Now.
	Now func() time.Time
}

// Outcome is the fate of one input document. Exactly one of Record, Err and
// Skipped is meaningful.
type Outcome struct {
	Path    string
	Record  *cvparse.Record
	Err     error
	Skipped bool
}

// Result holds the outcome of a run in input order.
type Result struct {
	Outcomes []Outcome
	Parsed   int
	Skipped  int
	Failed   int

	// Bytes is the total size of the documents read.
	Bytes int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

// parsed holds the outcome of processing a single document.
type parsed struct {
	position int
	hash     string
	size     int
	outcome  Outcome
}

// Run parses paths and stores the records. A failing document never stops
// the run; its error is reported in its Outcome. Run itself returns an error
// only when ctx is canceled or a store cannot commit.
func (r *Runner) Run(ctx context.Context, paths []string, progress ProgressFunc) (*Result, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan parsed, len(paths))
	var completed atomic.Int64
	total := len(paths)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range paths {
			g.Go(func() error {
				resultCh <- r.process(gctx, i, path)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]parsed, len(paths))
	for res := range resultCh {
		completed.Add(1)
		results[res.position] = res

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Path:      res.outcome.Path,
		}
		if res.outcome.Err != nil {
			event.Type = ProgressFailed
			event.Error = res.outcome.Err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		r.abort()
		return nil, err
	}

	// Deduplicate and store in input order so that the first copy wins.
	result := &Result{Outcomes: make([]Outcome, len(results))}
	for i, res := range results {
		out := res.outcome
		result.Bytes += res.size
		if out.Err == nil && r.Duplicates != nil && r.Duplicates.Seen(res.hash) {
			out.Record, out.Skipped = nil, true
		}
		if out.Record != nil {
			if err := r.store(ctx, out.Record); err != nil {
				out.Record, out.Err = nil, err
			}
		}

		switch {
		case out.Err != nil:
			result.Failed++
		case out.Skipped:
			result.Skipped++
		default:
			result.Parsed++
		}
		result.Outcomes[i] = out
	}

	for _, s := range r.Stores {
		if err := s.Commit(); err != nil {
			r.abort()
			return nil, fmt.Errorf("commit: %w", err)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// process reads, extracts and parses a single document.
func (r *Runner) process(ctx context.Context, position int, path string) parsed {
	res := parsed{position: position, outcome: Outcome{Path: path}}
	if err := ctx.Err(); err != nil {
		res.outcome.Err = err
		return res
	}

	data, err := r.readFile(path)
	if err != nil {
		res.outcome.Err = fmt.Errorf("read %s: %w", path, err)
		return res
	}
	res.size = len(data)
	res.hash = cvparse.HashContent(data)

	doc, err := r.Extractor.Extract(ctx, path, data)
	if err != nil {
		res.outcome.Err = err
		return res
	}
	doc.ContentHash = res.hash

	rec, err := r.Parser.Parse(ctx, doc)
	if err != nil {
		res.outcome.Err = err
		return res
	}
	res.outcome.Record = rec
	return res
}

func (r *Runner) store(ctx context.Context, rec *cvparse.Record) error {
	if rec.ParsedAt.IsZero() {
		rec.ParsedAt = r.now().UTC()
	}
	if r.Records != nil {
		if err := r.Records.CreateRecord(ctx, rec); err != nil {
			return fmt.Errorf("store record: %w", err)
		}
	}
	for _, s := range r.Stores {
		if err := s.Save(ctx, rec); err != nil {
			// The document failed, so its database row must go too.
			if r.Records != nil {
				if derr := r.Records.DeleteRecord(ctx, rec.ID); derr != nil {
					return fmt.Errorf("save record: %w (remove stored record: %v)", err, derr)
				}
			}
			return fmt.Errorf("save record: %w", err)
		}
	}
	return nil
}

// abort discards staged output of every store. Abort errors are ignored:
// the run has already failed.
func (r *Runner) abort() {
	for _, s := range r.Stores {
		_ = s.Abort()
	}
}

func (r *Runner) readFile(path string) ([]byte, error) {
	if r.ReadFile != nil {
		return r.ReadFile(path)
	}
	return os.ReadFile(path)
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
