package validation

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// plainText strips every tag and returns the visible text, unescaped.
func plainText(raw string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(raw)))
}

// Text returns raw with all markup removed and the remaining text HTML escaped.
// Text(Text(s)) == Text(s).
func Text(raw string) string {
	return html.EscapeString(plainText(raw))
}

// RichHTML keeps the safe subset of markup used in newsletter bodies.
func RichHTML(raw string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(raw))
}

// Truncate shortens s to n runes, appending "..." when it was cut.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n]) + "..."
}

func plainList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if p := plainText(v); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func uniq(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

func escapeList(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = html.EscapeString(v)
	}

	return out
}
