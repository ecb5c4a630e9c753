// Package regexp2 implements codehunter.Painter with ordered regular
// expression passes evaluated by github.com/dlclark/regexp2 in ECMAScript
// mode.
package regexp2

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/fwojciec/codehunter"
)

// Marker classes wrapped around matched spans.
const (
	ClassKeyword  = "text-syntax-keyword"
	ClassFunction = "text-syntax-function"
	ClassString   = "text-syntax-string"
	ClassNumber   = "text-syntax-number"
	ClassComment  = "text-syntax-comment"
)

// Ensure Painter implements codehunter.Painter at compile time.
var _ codehunter.Painter = (*Painter)(nil)

// pass is one substitution applied to the whole text.
type pass struct {
	re          *regexp2.Regexp
	replacement string
}

// Painter renders source files as HTML with <span class="..."> markers.
//
// Passes run in a fixed order over the escaped text, and later passes see
// the markers inserted by earlier ones. Output therefore may contain
// wrapped spans inside marker attributes; that is the expected rendering.
type Painter struct {
	passes map[codehunter.Language][]pass
}

// Character classes spelled out with JavaScript's meaning. regexp2 treats
// \b as Unicode-aware and \s as ASCII-only even in ECMAScript mode.
const (
	wordChar   = `[A-Za-z0-9_]`
	space      = `[\t\n\v\f\r \u00a0\u1680\u2000-\u200a\u2028\u2029\u202f\u205f\u3000\ufeff]`
	notLineEnd = `[^\r\n\u2028\u2029]`
)

// word wraps expr in ASCII word-boundary lookarounds.
func word(expr string) string {
	return `(?<!` + wordChar + `)` + expr + `(?!` + wordChar + `)`
}

// NewPainter creates a Painter with the passes for HTML, CSS and JavaScript.
func NewPainter() *Painter {
	return &Painter{
		passes: map[codehunter.Language][]pass{
			codehunter.LanguageMarkup: {
				newPass(`(&lt;/?\w+[^&gt;]*&gt;)`, span(ClassKeyword, "$1")),
				newPass(`(class|id|src|href)=`, span(ClassFunction, "$1")+"="),
				newPass(`="([^"]*)"`, `="`+span(ClassString, "$1")+`"`),
			},
			codehunter.LanguageStylesheet: {
				newPass(`([.#][\w-]+)`, span(ClassKeyword, "$1")),
				newPass(`([\w-]+)(`+space+`*:)`, span(ClassFunction, "$1")+"$2"),
				newPass(`:`+space+`*([^;]+)`, ": "+span(ClassString, "$1")),
			},
			codehunter.LanguageScript: {
				newPass(word(`(function|const|let|var|return|if|else|for|while)`), span(ClassKeyword, "$1")),
				newPass(`"([^"]*)"`, `"`+span(ClassString, "$1")+`"`),
				newPass(word(`(\d+)`), span(ClassNumber, "$1")),
				// A comment runs to the first line terminator, \r and U+2028 included.
				newPass(`//(`+notLineEnd+`*)`, span(ClassComment, "//$1")),
			},
		},
	}
}

func newPass(expr, replacement string) pass {
	return pass{
		re:          regexp2.MustCompile(expr, regexp2.ECMAScript),
		replacement: replacement,
	}
}

func span(class, text string) string {
	return `<span class="` + class + `">` + text + `</span>`
}

var escaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// Escape replaces < and > with their HTML entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Render escapes content once and applies the passes registered for lang.
func (p *Painter) Render(content string, lang codehunter.Language) string {
	out := Escape(content)
	for _, ps := range p.passes[lang] {
		replaced, err := ps.re.Replace(out, ps.replacement, -1, -1)
		if err != nil {
			// Only a match timeout fails a replace; keep what we have.
			break
		}
		out = replaced
	}
	return out
}
