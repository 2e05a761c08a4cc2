// Package sanitize filters admin-submitted rich text before it is stored.
//
// The filter is textual and targets a fixed set of patterns: <script>
// blocks, javascript: URI schemes, and inline on* event-handler attributes.
// It is intentionally narrow; content is authored by the site admin, not by
// anonymous users.
package sanitize

import "regexp"

var (
	scriptBlock = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	jsScheme    = regexp.MustCompile(`(?i)javascript:`)
	onHandler   = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// Content removes known-dangerous markup from rich-text HTML. Applying it a
// second time to its own output is a no-op for the patterns it targets.
func Content(html string) string {
	html = scriptBlock.ReplaceAllString(html, "")
	html = jsScheme.ReplaceAllString(html, "")
	html = onHandler.ReplaceAllString(html, "")
	return html
}
