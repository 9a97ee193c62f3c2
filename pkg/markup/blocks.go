package markup

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/document"
	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/sanitizer"
)

func (r *Renderer) renderBlock(sb *strings.Builder, doc *document.Document, id string, b *document.Block) error {
	style := styleAttr(b.Style)

	switch b.Type {
	case document.BlockText:
		html, err := r.textHTML(b.Props.String("text"))
		if err != nil {
			return err
		}
		sb.WriteString(html)

	case document.BlockHeading:
		level := headingLevel(b.Props)
		fmt.Fprintf(sb, "<h%d%s>%s</h%d>", level, style, escapeText(b.Props.String("text")), level)

	case document.BlockButton:
		fmt.Fprintf(sb, `<a class="button" href="%s"%s>%s</a>`,
			escapeText(b.Props.String("url")), style, escapeText(b.Props.String("text")))

	case document.BlockImage:
		fmt.Fprintf(sb, `<img src="%s" alt="%s"%s>`,
			escapeText(b.Props.String("src")), escapeText(b.Props.String("alt")), style)

	case document.BlockAvatar:
		fmt.Fprintf(sb, `<img class="avatar" src="%s" alt="%s"%s>`,
			escapeText(b.Props.String("src")), escapeText(b.Props.String("alt")), style)

	case document.BlockSpacer:
		fmt.Fprintf(sb, `<div style="height:%dpx"></div>`, spacerHeight(b.Props))

	case document.BlockDivider:
		sb.WriteString("<hr" + style + ">")

	case document.BlockContainer:
		sb.WriteString("<div" + style + ">")
		if err := r.renderChildren(sb, doc, b.Props.ChildrenIDs()); err != nil {
			return err
		}
		sb.WriteString("</div>")

	case document.BlockColumns:
		sb.WriteString(`<div class="columns"` + style + ">")
		for _, col := range b.Props.Columns() {
			sb.WriteString(`<div class="column">`)
			if err := r.renderChildren(sb, doc, col); err != nil {
				return err
			}
			sb.WriteString("</div>")
		}
		sb.WriteString("</div>")

	case document.BlockList:
		tag := "ul"
		if ordered, _ := b.Props["ordered"].(bool); ordered {
			tag = "ol"
		}
		sb.WriteString("<" + tag + style + ">")
		for _, item := range b.Props.Strings("items") {
			sb.WriteString("<li>" + escapeText(item) + "</li>")
		}
		sb.WriteString("</" + tag + ">")

	case document.BlockHero:
		sb.WriteString(`<div class="hero"` + style + ">")
		if title := b.Props.String("title"); title != "" {
			sb.WriteString("<h1>" + escapeText(title) + "</h1>")
		}
		if subtitle := b.Props.String("subtitle"); subtitle != "" {
			sb.WriteString("<p>" + escapeText(subtitle) + "</p>")
		}
		if buttonText := b.Props.String("buttonText"); buttonText != "" {
			fmt.Fprintf(sb, `<a class="button" href="%s">%s</a>`,
				escapeText(b.Props.String("buttonUrl")), escapeText(buttonText))
		}
		sb.WriteString("</div>")

	case document.BlockQuote:
		sb.WriteString("<blockquote" + style + "><p>" + escapeText(b.Props.String("text")) + "</p>")
		if author := b.Props.String("author"); author != "" {
			sb.WriteString("<cite>" + escapeText(author) + "</cite>")
		}
		sb.WriteString("</blockquote>")

	case document.BlockSocialLinks:
		sb.WriteString(`<p class="social"` + style + ">")
		for _, link := range socialLinks(b.Props) {
			fmt.Fprintf(sb, `<a href="%s">%s</a>`, escapeText(link.url), escapeText(link.platform))
		}
		sb.WriteString("</p>")

	case document.BlockHTML:
		raw := b.Props.String("html")
		if !r.rawHTML {
			raw = sanitizer.SanitizeEmailHTML(raw)
		}
		sb.WriteString(raw)

	default:
		// Unknown block types render their children only, so documents from
		// a newer builder degrade instead of failing.
		return r.renderChildren(sb, doc, doc.ChildrenOf(id))
	}

	return nil
}

func headingLevel(p document.Props) int {
	if lvl, ok := p["level"].(float64); ok && lvl >= 1 && lvl <= 6 {
		return int(lvl)
	}
	return 2
}

func spacerHeight(p document.Props) int {
	if h, ok := p["height"].(float64); ok && h > 0 {
		return int(h)
	}
	return 16
}

type socialLink struct {
	platform string
	url      string
}

func socialLinks(p document.Props) []socialLink {
	raw, ok := p["links"].([]any)
	if !ok {
		return nil
	}
	out := make([]socialLink, 0, len(raw))
	for _, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		link := socialLink{
			platform: document.Props(m).String("platform"),
			url:      document.Props(m).String("url"),
		}
		if link.url != "" {
			out = append(out, link)
		}
	}
	return out
}

// escapeText escapes & < > but not quotes: quote characters are
// significant inside placeholder default values, and the variable passes
// run after rendering.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// styleAttr renders an inline style attribute from a style map, keys
// sorted so output is deterministic. Empty maps render nothing.
func styleAttr(style map[string]any) string {
	if len(style) == 0 {
		return ""
	}
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var sb strings.Builder
	sb.WriteString(` style="`)
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(";")
		}
		fmt.Fprintf(&sb, "%s:%v", k, style[k])
	}
	sb.WriteString(`"`)
	return sb.String()
}
