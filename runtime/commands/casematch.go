package commands

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExpandCaseMatching expands a glob pattern into its case-insensitive form,
// e.g. `yo` becomes `[Yy][Oo]`. Characters inside existing `[...]` or
// `{...}` groups are left untouched so user-written character classes and
// expansions survive. Used when completing command and path names on
// case-insensitive filesystems.
func ExpandCaseMatching(s string) string {
	var b strings.Builder
	upper := cases.Upper(language.Und)
	nesting := 0
	for _, r := range s {
		switch {
		case r == '[' || r == '{':
			nesting++
			b.WriteRune(r)
		case r == ']' || r == '}':
			if nesting > 0 {
				nesting--
			}
			b.WriteRune(r)
		case nesting > 0 || !unicode.IsLetter(r):
			b.WriteRune(r)
		default:
			writeCasePair(&b, upper, r)
		}
	}
	return b.String()
}

// writeCasePair emits the `[Xx]` class for a letter, handling caseless
// letters and one-to-many uppercase mappings (ß uppercases to SS, so the
// leading S is optional: `[Ss]?[Ssß]`). The caser is required because
// strings.ToUpper applies only simple case mappings and leaves ß as is.
func writeCasePair(b *strings.Builder, upper cases.Caser, r rune) {
	lo := strings.ToLower(string(r))
	up := upper.String(string(r))
	if lo == up {
		b.WriteRune(r)
		return
	}
	uppers := []rune(up)
	if len(uppers) == 1 {
		b.WriteString("[")
		b.WriteString(up)
		b.WriteString(lo)
		b.WriteString("]")
		return
	}
	for _, u := range uppers[:len(uppers)-1] {
		b.WriteString("[")
		b.WriteRune(u)
		b.WriteRune(unicode.ToLower(u))
		b.WriteString("]?")
	}
	last := uppers[len(uppers)-1]
	b.WriteString("[")
	b.WriteRune(last)
	b.WriteRune(unicode.ToLower(last))
	b.WriteRune(r)
	b.WriteString("]")
}
