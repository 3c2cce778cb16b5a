// Package strscan locates string literal spans in raw text, independent of
// the tokenizer. The interactive front-end uses it to decide whether a
// buffer ends inside an open string literal and more input lines are needed
// before any wrapping is attempted.
package strscan

import "strings"

// Result describes the most recent string literal found in a buffer.
// Start == -1 means no string is present at all. End == -1 means the string
// is still open at end of buffer and continuation input is needed. Quote is
// the opener exactly as written, prefix included (e.g. `rb"` or `'''`).
type Result struct {
	Start int
	End   int // exclusive, past the closing quote
	Quote string
}

// Found reports whether any string literal was observed.
func (r Result) Found() bool { return r.Start >= 0 }

// Open reports whether the final string has no closer in the buffer.
func (r Result) Open() bool { return r.Start >= 0 && r.End < 0 }

// quoteTokens in longest-match order: triple quotes win over single quotes
// of the same character.
var quoteTokens = [4]string{`"""`, `'''`, `"`, `'`}

// acceptedPrefixes holds every ordering of at most one each of the raw,
// bytes and text markers, case-folded. Generated once from the marker
// alphabet rather than spelled out as nested conditionals.
var acceptedPrefixes = map[string]bool{"": true}

func init() {
	markers := []byte{'r', 'b', 'u'}
	var gen func(prefix []byte, used []bool)
	gen = func(prefix []byte, used []bool) {
		for i, m := range markers {
			if used[i] {
				continue
			}
			used[i] = true
			next := append(prefix, m)
			acceptedPrefixes[string(next)] = true
			gen(next, used)
			used[i] = false
		}
	}
	gen(nil, make([]bool, len(markers)))
}

// matchOpener attempts to match a string opener at position i: an optional
// marker prefix immediately followed by a quote token, preferring the
// longest match. It returns the opener as written and its quote token.
func matchOpener(text string, i int) (opener, quote string, ok bool) {
	for plen := 3; plen >= 0; plen-- {
		if i+plen > len(text) {
			continue
		}
		prefix := text[i : i+plen]
		if !acceptedPrefixes[strings.ToLower(prefix)] {
			continue
		}
		rest := text[i+plen:]
		for _, q := range quoteTokens {
			if strings.HasPrefix(rest, q) {
				return prefix + q, q, true
			}
		}
	}
	return "", "", false
}

// findCloser returns the exclusive end index of the closer matching quote,
// scanning from offset `from`, or -1 when the string is left open. Escaped
// quote characters are honored for single and double quotes only; triple
// quote closers are literal searches.
func findCloser(text string, from int, quote string) int {
	if len(quote) == 3 {
		idx := strings.Index(text[from:], quote)
		if idx < 0 {
			return -1
		}
		return from + idx + 3
	}
	for j := from; j < len(text); {
		switch text[j] {
		case '\\':
			j += 2
		case quote[0]:
			return j + 1
		default:
			j++
		}
	}
	return -1
}

// CheckForPartialString scans text left to right for string literals and
// returns the last complete or partial one. Complete strings are skipped
// over so that later strings on the same buffer win; a trailing partial
// string takes precedence over anything before it and stops the scan.
func CheckForPartialString(text string) Result {
	res := Result{Start: -1, End: -1}
	for i := 0; i < len(text); {
		opener, quote, ok := matchOpener(text, i)
		if !ok {
			i++
			continue
		}
		end := findCloser(text, i+len(opener), quote)
		if end < 0 {
			return Result{Start: i, End: -1, Quote: opener}
		}
		res = Result{Start: i, End: end, Quote: opener}
		i = end
	}
	return res
}
