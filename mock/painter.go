package mock

import "github.com/fwojciec/codehunter"

var _ codehunter.Painter = (*Painter)(nil)

// Painter is a mock implementation of codehunter.Painter.
type Painter struct {
	RenderFn func(content string, lang codehunter.Language) string
}

func (p *Painter) Render(content string, lang codehunter.Language) string {
	return p.RenderFn(content, lang)
}
