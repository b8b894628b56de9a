// Package markdown escapes literal text for embedding in
// markdown-flavored messages.
package markdown

import "strings"

// special holds every character that must be backslash-escaped.
const special = "\\`*_{}[]()#+-.!"

// Escape returns text with every markdown-special character preceded
// by a backslash. Escaping already-escaped text double-escapes; that
// is accepted behavior.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 128 && strings.ContainsRune(special, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
