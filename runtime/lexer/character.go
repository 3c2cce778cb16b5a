package lexer

// ASCII character lookup tables for fast classification (zero-allocation)
//
// Use inline bounds-checked lookups:
//
//	if ch < 128 && isLetter[ch] { ... }
//
// For Unicode characters (ch >= 128), fall back to the unicode package.
var (
	isWhitespace [128]bool // Space, tab, carriage return, form feed
	isLetter     [128]bool // a-z, A-Z, _
	isDigit      [128]bool // 0-9
	isIdentStart [128]bool // Letter or _
	isIdentPart  [128]bool // Letter, digit or _
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)

		// Whitespace (excluding newline - newlines are meaningful tokens)
		isWhitespace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f'

		isLetter[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
		isDigit[i] = '0' <= ch && ch <= '9'
		isIdentStart[i] = isLetter[i]
		isIdentPart[i] = isLetter[i] || isDigit[i]
	}
}
