// Package htmlx holds the HTML string helpers shared by the HTML-emitting
// renderers and builders.
package htmlx

import "strings"

var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape maps <, >, & and " to their entity equivalents. Every other
// character passes through unchanged.
func Escape(s string) string {
	if !strings.ContainsAny(s, `&<>"`) {
		return s
	}
	return replacer.Replace(s)
}
