// Package content sanitizes and renders user-authored text. Draft
// definitions and comment bodies pass through here: HTML is sanitized on
// write, markdown is rendered (and sanitized) on read.
package content

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Processor owns the shared sanitizer policy and markdown converter.
// Both are safe for concurrent use; construct one per process.
type Processor struct {
	policy   *bluemonday.Policy
	markdown goldmark.Markdown
}

// NewProcessor builds a processor with the UGC sanitizer policy and a
// GFM-enabled markdown converter.
func NewProcessor() *Processor {
	return &Processor{
		policy: bluemonday.UGCPolicy(),
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Sanitize strips disallowed HTML from user-authored text. Applied on
// write so stored content is already safe.
func (p *Processor) Sanitize(s string) string {
	return p.policy.Sanitize(s)
}

// RenderMarkdown converts markdown to sanitized HTML.
func (p *Processor) RenderMarkdown(md string) (string, error) {
	var buf bytes.Buffer
	if err := p.markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return p.policy.Sanitize(buf.String()), nil
}
