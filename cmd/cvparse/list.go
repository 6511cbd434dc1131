package main

import (
	"fmt"

	"github.com/fwojciec/cvparse"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := cvparse.RecordFilter{Limit: c.Limit}
	if c.Name != "" {
		filter.Name = &c.Name
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cvparse.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'cvparse parse --store' to add some.")
		return nil
	}

	for _, r := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d experience  %d education  %s\n",
			r.ID, r.Name, len(r.Experience), len(r.Education), r.Source)
	}

	return nil
}
