package mock

import (
	"io"

	"github.com/fwojciec/codehunter"
)

var _ codehunter.Archiver = (*Archiver)(nil)

// Archiver is a mock implementation of codehunter.Archiver.
type Archiver struct {
	ArchiveFn func(w io.Writer, files []codehunter.SourceFile) error
}

func (a *Archiver) Archive(w io.Writer, files []codehunter.SourceFile) error {
	return a.ArchiveFn(w, files)
}
