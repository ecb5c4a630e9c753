package codehunter

import "io"

// Archiver packages extracted files for download.
type Archiver interface {
	Archive(w io.Writer, files []SourceFile) error
}
