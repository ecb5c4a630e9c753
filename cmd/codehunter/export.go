package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/codehunter"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	entry, err := deps.History.FindEntry(c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'codehunter history' to see available entries.\n", codehunter.ErrorMessage(err))
		return err
	}

	path := c.Output
	if path == "" {
		path = codehunter.ArchiveName(time.Now())
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to create %s: %s\n", path, err)
		return fmt.Errorf("failed to create archive: %w", err)
	}

	if err := deps.Archiver.Archive(f, entry.Files); err != nil {
		f.Close()
		os.Remove(path)
		fmt.Fprintf(deps.Stderr, "error: failed to write archive: %s\n", err)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		fmt.Fprintf(deps.Stderr, "error: failed to write archive: %s\n", err)
		return fmt.Errorf("failed to close archive: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d files to %s\n", len(entry.Files), path)
	return nil
}
