// Package views renders the site's pages as templ components. Components are
// built with templ.ComponentFunc directly so the package stays plain Go.
package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// md is the shared goldmark instance. Convert is safe for concurrent use.
// WithUnsafe is deliberate: post bodies are the author's own content and may
// embed raw HTML.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

// Markdown returns a templ.Component that renders source as HTML.
func Markdown(source string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return md.Convert([]byte(source), w)
	})
}

// renderMarkdown writes the HTML for source into b.
func renderMarkdown(b *strings.Builder, source string) error {
	return md.Convert([]byte(source), b)
}
