package demo

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/codehunter"
)

//go:embed site
var site embed.FS

var siteFiles = []struct {
	name string
	lang codehunter.Language
}{
	{"index.html", codehunter.LanguageMarkup},
	{"styles.css", codehunter.LanguageStylesheet},
	{"script.js", codehunter.LanguageScript},
}

// Ensure Extractor implements codehunter.Extractor at compile time.
var _ codehunter.Extractor = (*Extractor)(nil)

// Extractor returns the same sample site for every URL.
type Extractor struct {
	delay time.Duration
}

// NewExtractor creates an Extractor. The default delay is DefaultExtractDelay.
func NewExtractor(opts ...Option) *Extractor {
	o := options{delay: DefaultExtractDelay}
	for _, opt := range opts {
		opt(&o)
	}
	return &Extractor{delay: o.delay}
}

// Extract waits for the configured delay and returns the sample files.
// Returns the context error if ctx is done first.
func (e *Extractor) Extract(ctx context.Context, url string) ([]codehunter.SourceFile, error) {
	if err := sleep(ctx, e.delay); err != nil {
		return nil, err
	}

	files := make([]codehunter.SourceFile, 0, len(siteFiles))
	for _, f := range siteFiles {
		data, err := site.ReadFile("site/" + f.name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sample file %s: %w", f.name, err)
		}
		files = append(files, codehunter.SourceFile{
			Name:     f.name,
			Language: f.lang,
			Content:  string(data),
			Size:     humanize.Bytes(uint64(len(data))),
		})
	}
	return files, nil
}
