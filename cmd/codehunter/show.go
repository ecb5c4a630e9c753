package main

import (
	"fmt"

	"github.com/fwojciec/codehunter"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	entry, err := deps.History.FindEntry(c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'codehunter history' to see available entries.\n", codehunter.ErrorMessage(err))
		return err
	}

	files := codehunter.FilterFiles(entry.Files, c.Search)
	if c.File != "" {
		files = fileNamed(files, c.File)
		if len(files) == 0 {
			fmt.Fprintf(deps.Stderr, "error: file %q not found in %s\n", c.File, entry.URL)
			return codehunter.Errorf(codehunter.ENOTFOUND, "file %q not found", c.File)
		}
	}

	if len(files) == 0 {
		fmt.Fprintf(deps.Stdout, "No files match %q\n", c.Search)
		return nil
	}

	for i, f := range files {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "==> %s (%s, %s) <==\n", f.Name, f.Language, f.Size)
		content := f.Content
		if !c.Raw {
			content = deps.Painter.Render(content, f.Language)
		}
		fmt.Fprintln(deps.Stdout, content)
	}
	return nil
}

func fileNamed(files []codehunter.SourceFile, name string) []codehunter.SourceFile {
	for _, f := range files {
		if f.Name == name {
			return []codehunter.SourceFile{f}
		}
	}
	return nil
}
