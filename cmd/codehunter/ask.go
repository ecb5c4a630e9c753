package main

import (
	"fmt"

	"github.com/fwojciec/codehunter"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	var files []codehunter.SourceFile
	if c.ID != "" {
		entry, err := deps.History.FindEntry(c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s. Use 'codehunter history' to see available entries.\n", codehunter.ErrorMessage(err))
			return err
		}
		files = entry.Files
	}

	answer, err := deps.Asker.Ask(deps.Ctx, c.Question, files)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codehunter.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
