package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeview/internal/resume"
)

func TestRenderMarkdown(t *testing.T) {
	out, ok := RenderMarkdown([]string{"Shipped **v2**", "Cut latency"}, 40)
	require.True(t, ok)
	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Shipped")
	assert.Contains(t, plain, "latency")
	assert.NotContains(t, plain, "**")
}

func TestRenderMarkdown_Empty(t *testing.T) {
	out, ok := RenderMarkdown(nil, 40)
	assert.True(t, ok)
	assert.Empty(t, out)
}

func TestRenderer_MarkdownPoints(t *testing.T) {
	r := renderer{styles: NewStyles("#239CE2"), markdown: true}
	out := ansi.Strip(r.entry(resume.Entry{Title: "Lead", Points: []string{"Grew the team"}}, 40))
	assert.Contains(t, out, "Lead")
	assert.Contains(t, out, "Grew the team")
}
