package codehunter

import "context"

// Asker answers questions about extracted code.
type Asker interface {
	// Ask answers a natural language question, using files as context.
	// Returns EINVALID if the question is empty.
	Ask(ctx context.Context, question string, files []SourceFile) (string, error)
}
