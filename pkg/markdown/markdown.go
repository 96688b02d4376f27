package markdown

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// ToSafeHTML renders markdown and strips anything a user should not be able
// to inject (scripts, event handlers, javascript: links).
func ToSafeHTML(src string) string {
	if src == "" {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(src))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(policy.SanitizeBytes(markdown.Render(doc, renderer)))
}
