package sanitizer

import (
	"strings"
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
		// StrictPolicy strips ALL HTML, returns plain text.
		strictPolicy = bluemonday.StrictPolicy()

		// The email policy allows the markup the newsletter layout and
		// collateral fragments legitimately use. Scripts, event
		// handlers, and javascript: URLs are always stripped.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowStandardURLs()
		emailPolicy.AllowImages()
		emailPolicy.AllowLists()
		emailPolicy.AllowTables()
		emailPolicy.AllowElements(
			"h1", "h2", "h3", "h4",
			"p", "br", "hr", "div", "span",
			"strong", "b", "em", "i", "u",
			"code", "pre", "blockquote",
			"figure", "figcaption",
		)
		emailPolicy.AllowAttrs("href").OnElements("a")
		emailPolicy.AllowAttrs("class", "id").Globally()
		emailPolicy.AllowAttrs("style").OnElements("td", "table", "div", "span", "p")
	})
}

// SanitizeEmailHTML strips dangerous markup from an HTML fragment bound
// for a transactional email while keeping email-safe formatting. Used
// for the collateral fragment, which is human-pasted raw HTML.
func SanitizeEmailHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}

// StripTags removes all HTML and returns plain text. Used to derive the
// plain-text email alternative from rendered HTML.
func StripTags(s string) string {
	initPolicies()
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
