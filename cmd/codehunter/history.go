package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	entries := deps.History.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions yet. Use 'codehunter extract' to add one.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d files  %s\n", e.ID, e.URL, e.FileCount, humanize.Time(e.CreatedAt))
	}
	return nil
}
