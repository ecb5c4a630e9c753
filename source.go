package codehunter

import (
	"fmt"
	"strings"
	"time"
)

// Language classifies a source file. It selects the painter passes applied
// to the file and is persisted verbatim with history entries.
type Language string

// Language constants. The values are the tags stored in history blobs.
const (
	LanguageMarkup     Language = "html"
	LanguageStylesheet Language = "css"
	LanguageScript     Language = "js"
)

// Valid reports whether l is one of the known languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageMarkup, LanguageStylesheet, LanguageScript:
		return true
	}
	return false
}

// ParseLanguage converts a tag or a language name to a Language.
// Both "css" and "stylesheet" yield LanguageStylesheet.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "markup":
		return LanguageMarkup, nil
	case "css", "stylesheet":
		return LanguageStylesheet, nil
	case "js", "script":
		return LanguageScript, nil
	}
	return "", Errorf(EINVALID, "unknown language %q", s)
}

// SourceFile is a single extracted file.
type SourceFile struct {
	Name     string   `json:"name"`
	Language Language `json:"type"`
	Content  string   `json:"content"`
	// Size is a human-readable label supplied by whoever produced the file.
	Size string `json:"size"`
}

// Validate returns an error if the file contains invalid fields.
func (f *SourceFile) Validate() error {
	if f.Name == "" {
		return Errorf(EINVALID, "file name required")
	}
	if !f.Language.Valid() {
		return Errorf(EINVALID, "file %q has unknown language %q", f.Name, f.Language)
	}
	return nil
}

// FilterFiles returns the files whose name or content contains term,
// ignoring case. An empty term returns every file.
func FilterFiles(files []SourceFile, term string) []SourceFile {
	if term == "" {
		return files
	}
	term = strings.ToLower(term)

	var out []SourceFile
	for _, f := range files {
		if strings.Contains(strings.ToLower(f.Name), term) ||
			strings.Contains(strings.ToLower(f.Content), term) {
			out = append(out, f)
		}
	}
	return out
}

// ArchiveName returns the download file name for an archive built at t.
func ArchiveName(t time.Time) string {
	return fmt.Sprintf("extracted-code-%s.zip", t.Format("2006-01-02"))
}
