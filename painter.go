package codehunter

// Painter annotates source text with syntax highlighting markers.
type Painter interface {
	// Render escapes content and wraps lexical spans selected by lang in
	// presentation markers. Unknown languages are only escaped.
	// Content must be raw source, never previously rendered output.
	Render(content string, lang Language) string
}
