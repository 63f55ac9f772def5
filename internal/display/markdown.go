package display

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// DefaultWordWrap is the column markdown output is wrapped at
const DefaultWordWrap = 100

// Renderer renders markdown for the terminal
type Renderer struct {
	tr *glamour.TermRenderer
}

// NewRenderer creates a Renderer that picks a style from the terminal
// background and wraps at width columns
func NewRenderer(width int) (*Renderer, error) {
	if width <= 0 {
		width = DefaultWordWrap
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{tr: tr}, nil
}

// Render renders text with surrounding blank lines trimmed
func (r *Renderer) Render(text string) (string, error) {
	out, err := r.tr.Render(text)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

var (
	defaultRenderer     *Renderer
	defaultRendererErr  error
	defaultRendererOnce sync.Once
)

// RenderMarkdown renders text with a shared default Renderer
func RenderMarkdown(text string) (string, error) {
	defaultRendererOnce.Do(func() {
		defaultRenderer, defaultRendererErr = NewRenderer(DefaultWordWrap)
	})
	if defaultRendererErr != nil {
		return "", defaultRendererErr
	}
	return defaultRenderer.Render(text)
}
