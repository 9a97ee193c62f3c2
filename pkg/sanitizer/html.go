// Package sanitizer cleans untrusted HTML before it enters rendered email
// output, most notably the content of raw html blocks.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	emailPolicy  *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()

		// emailPolicy allows the markup email clients actually render:
		// inline formatting, links, images, and layout tables.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowStandardURLs()
		emailPolicy.AllowElements(
			"p", "br", "span", "div",
			"strong", "b", "em", "i", "u",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"ul", "ol", "li",
			"blockquote", "hr",
			"table", "thead", "tbody", "tr", "td", "th",
		)
		emailPolicy.AllowAttrs("href").OnElements("a")
		emailPolicy.AllowElements("a")
		emailPolicy.RequireNoFollowOnLinks(true)
		emailPolicy.AllowAttrs("src", "alt", "width", "height").OnElements("img")
		emailPolicy.AllowElements("img")
		emailPolicy.AllowAttrs("align", "valign", "colspan", "rowspan").OnElements("td", "th")
		emailPolicy.AllowAttrs("style").OnElements("p", "span", "div", "td", "th", "table", "a", "img")
	})
}

// SanitizeEmailHTML strips dangerous markup (scripts, event handlers,
// javascript: URLs) while keeping the formatting email clients render.
func SanitizeEmailHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}

// StripHTML removes all HTML, returning plain text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
