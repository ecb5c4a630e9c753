package main

import (
	"fmt"

	"github.com/fwojciec/codehunter"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	url, err := codehunter.NormalizeURL(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codehunter.ErrorMessage(err))
		return err
	}

	files, err := deps.Extractor.Extract(deps.Ctx, url)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to extract code: %s\n", codehunter.ErrorMessage(err))
		return err
	}

	entry, err := deps.History.Add(deps.Ctx, url, files)
	if err != nil {
		if codehunter.ErrorCode(err) != codehunter.EUNAVAILABLE {
			fmt.Fprintf(deps.Stderr, "error: %s\n", codehunter.ErrorMessage(err))
			return err
		}
		// The extraction itself succeeded; only the history write was lost.
		fmt.Fprintf(deps.Stderr, "warning: %s\n", codehunter.ErrorMessage(err))
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d files from %s\n", entry.FileCount, entry.URL)
	fmt.Fprintf(deps.Stdout, "ID: %s\n", entry.ID)
	for _, f := range files {
		fmt.Fprintf(deps.Stdout, "  %-12s %-4s %s\n", f.Name, f.Language, f.Size)
	}
	return nil
}
