package codehunter

import (
	"context"
	"net/url"
	"strings"
)

// Extractor produces the source files of the website at a URL.
type Extractor interface {
	// Extract returns the HTML, CSS and JavaScript files of the site.
	// The context controls timeout and cancellation.
	Extract(ctx context.Context, url string) ([]SourceFile, error)
}

// NormalizeURL turns user input into an absolute URL, adding an https://
// scheme when the input does not start with "http".
// Returns EINVALID if the result is not a URL with a host.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", Errorf(EINVALID, "URL required")
	}

	if !strings.HasPrefix(raw, "http") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", Errorf(EINVALID, "invalid URL %q", raw)
	}
	return raw, nil
}
