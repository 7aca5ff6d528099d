package errors

import (
	"fmt"
	"strings"
	"unicode"
)

var mentionEscaper = strings.NewReplacer(
	"@everyone", "@\u200beveryone",
	"@here", "@\u200bhere",
)

// escapeMentions inserts a zero-width space after the @ of the mass-mention
// tokens so a message echoed into a channel cannot ping anyone.
func escapeMentions(s string) string {
	return mentionEscaper.Replace(s)
}

// joinList joins items in prose: "a", "a or b", "a, b, or c".
func joinList(items []string, conj string) string {
	switch n := len(items); n {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	default:
		return strings.Join(items[:n-1], ", ") + ", " + conj + " " + items[n-1]
	}
}

// humanizePermission renders a permission flag name for display:
// "manage_guild" becomes "Manage Server".
func humanizePermission(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "guild", "server")
	return titleCase(name)
}

// titleCase upper-cases every letter that follows a non-letter and
// lower-cases every other letter.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToTitle(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// quote renders s as a single-quoted literal, switching to double quotes when
// s contains a single quote but no double quote. Non-printable runes are
// escaped, so a zero-width space shows as \u200b.
func quote(s string) string {
	q := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder
	b.WriteRune(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == q:
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case !unicode.IsPrint(r):
			switch {
			case r < 0x100:
				fmt.Fprintf(&b, `\x%02x`, r)
			case r < 0x10000:
				fmt.Fprintf(&b, `\u%04x`, r)
			default:
				fmt.Fprintf(&b, `\U%08x`, r)
			}
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(q)
	return b.String()
}
