package main

import (
	"fmt"

	"github.com/fwojciec/codehunter"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm clearing the history\n")
		return codehunter.Errorf(codehunter.EINVALID, "use --force to confirm clearing the history")
	}

	n := len(deps.History.Entries())
	if err := deps.History.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codehunter.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Cleared %d history entries\n", n)
	return nil
}
