package render

import (
	"regexp"
	"strings"
)

var (
	scriptPattern    = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	stylePattern     = regexp.MustCompile(`(?is)<style\b.*?</style>`)
	linebreakPattern = regexp.MustCompile(`(?i)<br\s*/?>`)
	paragraphPattern = regexp.MustCompile(`(?i)</(?:p|div|h[1-6])>`)
	tagPattern       = regexp.MustCompile(`<[^>]*>`)
	newlinePattern   = regexp.MustCompile(`\n{3,}`)
)

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// HTMLToText derives a lossy plain-text version of an HTML string, suited
// for the text/plain part of a multipart email. Script and style blocks
// are dropped, line and paragraph breaks become newlines, the five basic
// entities are decoded, and every remaining tag is stripped.
func HTMLToText(html string) string {
	s := scriptPattern.ReplaceAllString(html, "")
	s = stylePattern.ReplaceAllString(s, "")
	s = linebreakPattern.ReplaceAllString(s, "\n")
	s = paragraphPattern.ReplaceAllString(s, "\n\n")
	s = entityReplacer.Replace(s)
	s = tagPattern.ReplaceAllString(s, "")
	s = newlinePattern.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
