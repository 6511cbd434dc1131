package main

import (
	"fmt"

	"github.com/fwojciec/cvparse"
	"github.com/fwojciec/cvparse/batch"
	"github.com/fwojciec/cvparse/fs"
)

// pathWidth is the display width of document paths in per-document lines.
const pathWidth = 60

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	paths, err := fs.Discover(c.Paths, ".pdf")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cvparse.ErrorMessage(err))
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no PDF files found")
		return cvparse.Errorf(cvparse.ENOTFOUND, "no PDF files found")
	}

	progress := func(event batch.ProgressEvent) {
		if event.Type == batch.ProgressStarted {
			fmt.Fprintf(deps.Stdout, "Parsing %d documents\n", event.Total)
		}
	}

	result, err := deps.Runner.Run(deps.Ctx, paths, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}

	for _, out := range result.Outcomes {
		path := batch.TruncatePath(out.Path, pathWidth)
		switch {
		case out.Err != nil:
			fmt.Fprintf(deps.Stderr, "  fail %s: %s\n", path, describe(out.Err))
		case out.Skipped:
			fmt.Fprintf(deps.Stdout, "  skip %s: duplicate\n", path)
		default:
			fmt.Fprintf(deps.Stdout, "  ok   %s: %s (%d experience, %d education)\n",
				path, out.Record.Name, len(out.Record.Experience), len(out.Record.Education))
		}
	}

	fmt.Fprintf(deps.Stdout, "Parsed %d, skipped %d, failed %d (%s read)\n",
		result.Parsed, result.Skipped, result.Failed, batch.FormatBytes(result.Bytes))

	if result.Failed == len(result.Outcomes) {
		return cvparse.Errorf(cvparse.EINVALID, "all %d documents failed", result.Failed)
	}
	return nil
}

// describe returns a user-facing message for err. Internal errors carry no
// curated message, so their full text is shown instead.
func describe(err error) string {
	if cvparse.ErrorCode(err) == cvparse.EINTERNAL {
		return err.Error()
	}
	return cvparse.ErrorMessage(err)
}
