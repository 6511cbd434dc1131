package main

import (
	"fmt"

	"github.com/fwojciec/cvparse"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return cvparse.Errorf(cvparse.EINVALID, "use --force to confirm deletion")
	}

	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		if cvparse.ErrorCode(err) == cvparse.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'cvparse list' to see stored records.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", cvparse.ErrorMessage(err))
		return err
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, rec.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cvparse.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record %s (%s)\n", rec.ID, rec.Name)
	return nil
}
