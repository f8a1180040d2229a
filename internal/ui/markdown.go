package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width; building one is expensive.
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	actual, _ := rendererCache.LoadOrStore(width, renderer)
	return actual.(*glamour.TermRenderer), nil
}

// RenderMarkdown renders entry points as a markdown bullet list wrapped to
// width. It returns ok=false when glamour fails so the caller can fall back
// to plain bullets.
func RenderMarkdown(points []string, width int) (string, bool) {
	if len(points) == 0 {
		return "", true
	}
	renderer, err := markdownRenderer(width)
	if err != nil {
		return "", false
	}

	var src strings.Builder
	for _, p := range points {
		src.WriteString("- ")
		src.WriteString(strings.TrimSpace(p))
		src.WriteByte('\n')
	}
	out, err := renderer.Render(src.String())
	if err != nil {
		return "", false
	}
	return strings.Trim(out, "\n"), true
}
