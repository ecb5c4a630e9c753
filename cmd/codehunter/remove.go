package main

import (
	"fmt"

	"github.com/fwojciec/codehunter"
)

// Run executes the remove command.
func (c *RemoveCmd) Run(deps *Dependencies) error {
	entry, err := deps.History.FindEntry(c.ID)
	if codehunter.ErrorCode(err) == codehunter.ENOTFOUND {
		fmt.Fprintf(deps.Stdout, "No history entry %q, nothing removed\n", c.ID)
		return nil
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codehunter.ErrorMessage(err))
		return err
	}

	if _, err := deps.History.Remove(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codehunter.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %s (%s)\n", entry.ID, entry.URL)
	return nil
}
