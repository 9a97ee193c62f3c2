package markup

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/document"
)

// Renderer converts a document tree to HTML. The zero options render text
// verbatim (escaped) and sanitize raw html blocks.
type Renderer struct {
	markdown bool
	rawHTML  bool
	md       goldmark.Markdown
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithMarkdown renders the content of text blocks as Markdown instead of
// escaped plain text.
func WithMarkdown() RendererOption {
	return func(r *Renderer) {
		r.markdown = true
	}
}

// WithRawHTML passes the content of html blocks through unsanitized. Only
// for fully trusted template sources.
func WithRawHTML() RendererOption {
	return func(r *Renderer) {
		r.rawHTML = true
	}
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.markdown {
		r.md = goldmark.New()
	}
	return r
}

// Render produces the HTML for a document. It never mutates the document.
func (r *Renderer) Render(doc *document.Document) (string, error) {
	var sb strings.Builder
	sb.WriteString(`<div class="email-body">`)
	for _, id := range doc.ChildrenIDs {
		if err := r.renderTree(&sb, doc, id); err != nil {
			return "", err
		}
	}
	sb.WriteString(`</div>`)
	return sb.String(), nil
}

// renderTree renders one block and its subtree. Dangling ids render nothing.
func (r *Renderer) renderTree(sb *strings.Builder, doc *document.Document, id string) error {
	b, ok := doc.Block(id)
	if !ok {
		return nil
	}
	return r.renderBlock(sb, doc, id, b)
}

func (r *Renderer) renderChildren(sb *strings.Builder, doc *document.Document, ids []string) error {
	for _, id := range ids {
		if err := r.renderTree(sb, doc, id); err != nil {
			return err
		}
	}
	return nil
}

// textHTML renders a text block's content: Markdown when enabled,
// otherwise escaped verbatim text wrapped in a paragraph.
func (r *Renderer) textHTML(text string) (string, error) {
	if !r.markdown {
		return "<p>" + escapeText(text) + "</p>", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("markup: markdown: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
