// Package zip implements codehunter.Archiver with archive/zip.
package zip

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/codehunter"
)

// ReadmeName is the name of the generated summary inside every archive.
const ReadmeName = "README.md"

// Ensure Archiver implements codehunter.Archiver at compile time.
var _ codehunter.Archiver = (*Archiver)(nil)

// Archiver writes extracted files into a ZIP archive together with a
// README.md that lists them.
type Archiver struct {
	// Now returns the generation time written to the README.
	// Defaults to time.Now.
	Now func() time.Time
}

// NewArchiver creates a new Archiver.
func NewArchiver() *Archiver {
	return &Archiver{Now: time.Now}
}

// Archive writes files, in order, followed by the README.
func (a *Archiver) Archive(w io.Writer, files []codehunter.SourceFile) error {
	zw := zip.NewWriter(w)

	for _, f := range files {
		if err := writeFile(zw, f.Name, f.Content); err != nil {
			zw.Close()
			return err
		}
	}

	if err := writeFile(zw, ReadmeName, Readme(files, a.now())); err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}

func (a *Archiver) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func writeFile(zw *zip.Writer, name, content string) error {
	fw, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to add %s to archive: %w", name, err)
	}
	if _, err := io.WriteString(fw, content); err != nil {
		return fmt.Errorf("failed to write %s to archive: %w", name, err)
	}
	return nil
}

// Readme formats the summary of an archive generated at t.
func Readme(files []codehunter.SourceFile, t time.Time) string {
	var b strings.Builder
	b.WriteString("# Extracted Code Files\n\n")
	b.WriteString("This archive contains source code extracted from a website with Code Hunter.\n\n")
	b.WriteString("## Files Included:\n")
	for _, f := range files {
		fmt.Fprintf(&b, "- **%s** (%s) - %s\n", f.Name, strings.ToUpper(string(f.Language)), f.Size)
	}
	fmt.Fprintf(&b, "\n## Total Files: %d\n\n", len(files))
	fmt.Fprintf(&b, "Generated on: %s\n", t.Format("2006-01-02 15:04:05"))
	return b.String()
}
