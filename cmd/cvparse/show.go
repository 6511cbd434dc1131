package main

import (
	"fmt"

	"github.com/fwojciec/cvparse"
	"github.com/fwojciec/cvparse/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		if cvparse.ErrorCode(err) == cvparse.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'cvparse list' to see stored records.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", cvparse.ErrorMessage(err))
		return err
	}

	if !c.JSON {
		fmt.Fprint(deps.Stdout, cvparse.FormatRecord(rec))
		return nil
	}

	data, err := fs.FormatRecord(rec)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cvparse.ErrorMessage(err))
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}
