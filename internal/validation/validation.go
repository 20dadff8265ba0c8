// Package validation provides input sanitization and normalization helpers
// for user-supplied search text.
package validation

import (
	"html"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

// tagPattern matches HTML/XML tags for stripping.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// nonDigitPattern matches anything that is not a decimal digit.
var nonDigitPattern = regexp.MustCompile(`\D+`)

// SanitizeText strips markup from input and entity-encodes characters unsafe
// for HTML display. The input is entity-decoded first, so sanitizing already
// sanitized text returns it unchanged.
func SanitizeText(input string) string {
	decoded := html.UnescapeString(input)
	stripped := tagPattern.ReplaceAllString(decoded, "")
	return html.EscapeString(stripped)
}

// FormatPhone reduces a phone number to a consistent digit string. A leading
// + is preserved for international numbers; every other non-digit is removed.
// Returns the empty string when no digits remain.
func FormatPhone(input string) string {
	phone := strings.TrimSpace(input)

	plus := strings.HasPrefix(phone, "+")
	if plus {
		phone = phone[1:]
	}

	digits := nonDigitPattern.ReplaceAllString(phone, "")
	if digits == "" {
		return ""
	}
	if plus {
		return "+" + digits
	}
	return digits
}

// IsValidEmail reports whether input looks like a deliverable email address.
func IsValidEmail(input string) bool {
	addr, err := mail.ParseAddress(input)
	if err != nil {
		return false
	}
	// Reject display-name forms like `Bob <bob@example.com>` and bare
	// local@host addresses without a domain dot.
	if addr.Address != input {
		return false
	}
	at := strings.LastIndex(addr.Address, "@")
	return strings.Contains(addr.Address[at+1:], ".")
}

// NormalizeName lowercases a name and capitalizes the first letter of each
// word.
func NormalizeName(name string) string {
	var b strings.Builder
	prev := ' '
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsSpace(prev) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
