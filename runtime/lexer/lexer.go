package lexer

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes hysh source lines. It is deliberately forgiving: input
// that is not yet valid still tokenizes, with unrecognized bytes emitted as
// ILLEGAL tokens and unterminated strings running to end of input. The wrap
// engine depends on this never-fail contract.
type Lexer struct {
	dialect  *Dialect
	input    string
	position int // current byte offset
	line     int // 1-based
	column   int // 1-based
}

// New creates a lexer for the given dialect. A nil dialect uses the default.
func New(dialect *Dialect) *Lexer {
	if dialect == nil {
		dialect = DefaultDialect()
	}
	return &Lexer{dialect: dialect}
}

// Init resets the lexer with new input (following the Go scanner pattern).
func (l *Lexer) Init(input string) {
	l.input = input
	l.position = 0
	l.line = 1
	l.column = 1
}

// Tokenize returns all tokens for input, excluding the trailing EOF token.
func Tokenize(dialect *Dialect, input string) []Token {
	l := New(dialect)
	l.Init(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// pos captures the current position.
func (l *Lexer) pos() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.position}
}

// advance consumes one byte, updating line/column bookkeeping.
func (l *Lexer) advance() {
	if l.position < len(l.input) {
		if l.input[l.position] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.position++
	}
}

// peek returns the byte at offset n past the current position, or 0.
func (l *Lexer) peek(n int) byte {
	if l.position+n < len(l.input) {
		return l.input[l.position+n]
	}
	return 0
}

// token builds a token spanning from start to the current position.
func (l *Lexer) token(t TokenType, start Position) Token {
	return Token{
		Type: t,
		Text: l.input[start.Offset:l.position],
		Pos:  start,
		End:  l.pos(),
	}
}

// NextToken returns the next token, or an EOF token at end of input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.pos()
	if l.position >= len(l.input) {
		return Token{Type: EOF, Pos: start, End: start}
	}

	ch := l.input[l.position]
	switch {
	case ch == '\n':
		l.advance()
		return l.token(NEWLINE, start)
	case ch == '#':
		for l.position < len(l.input) && l.input[l.position] != '\n' {
			l.advance()
		}
		return l.token(COMMENT, start)
	case ch == '\'' || ch == '"':
		return l.lexString(start)
	case ch < 128 && isIdentStart[ch]:
		return l.lexIdentifier(start)
	case ch < 128 && isDigit[ch]:
		return l.lexNumber(start)
	case ch >= 128:
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if unicode.IsLetter(r) {
			return l.lexIdentifier(start)
		}
		for i := 0; i < size; i++ {
			l.advance()
		}
		return l.token(ILLEGAL, start)
	}

	return l.lexPunctuation(start)
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) {
		ch := l.input[l.position]
		if ch >= 128 || !isWhitespace[ch] {
			return
		}
		l.advance()
	}
}

// lexIdentifier scans a word and resolves dialect keywords. Bytes outside
// the ASCII range join the word when they decode to letters or digits.
func (l *Lexer) lexIdentifier(start Position) Token {
	for l.position < len(l.input) {
		ch := l.input[l.position]
		if ch < 128 {
			if !isIdentPart[ch] {
				break
			}
			l.advance()
			continue
		}
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		for i := 0; i < size; i++ {
			l.advance()
		}
	}
	tok := l.token(IDENTIFIER, start)
	tok.Type = l.dialect.keyword(tok.Text)
	return tok
}

func (l *Lexer) lexNumber(start Position) Token {
	sawDot := false
	for l.position < len(l.input) {
		ch := l.input[l.position]
		if ch < 128 && isDigit[ch] {
			l.advance()
		} else if ch == '.' && !sawDot {
			sawDot = true
			l.advance()
		} else {
			break
		}
	}
	return l.token(NUMBER, start)
}

// lexString scans a quoted string honoring backslash escapes. A missing
// closer produces a STRING token running to end of input rather than an
// error; multi-line continuation is the string boundary scanner's job.
func (l *Lexer) lexString(start Position) Token {
	quote := l.input[l.position]
	l.advance()
	for l.position < len(l.input) {
		ch := l.input[l.position]
		if ch == '\\' && l.position+1 < len(l.input) {
			l.advance()
			l.advance()
			continue
		}
		l.advance()
		if ch == quote {
			break
		}
	}
	return l.token(STRING, start)
}

func (l *Lexer) lexPunctuation(start Position) Token {
	ch := l.input[l.position]

	// Capturing constructs lex as single two-byte openers.
	if (ch == '@' || ch == '$' || ch == '!') && l.peek(1) == '(' {
		l.advance()
		l.advance()
		switch ch {
		case '@':
			return l.token(ATPAREN, start)
		case '$':
			return l.token(DOLLARPAREN, start)
		default:
			return l.token(BANGPAREN, start)
		}
	}

	if ch == '&' && l.peek(1) == '&' {
		l.advance()
		l.advance()
		return l.token(AND_AND, start)
	}
	if ch == '|' && l.peek(1) == '|' {
		l.advance()
		l.advance()
		return l.token(OR_OR, start)
	}

	var t TokenType
	switch ch {
	case ';':
		t = SEMICOLON
	case '(':
		t = LPAREN
	case ')':
		t = RPAREN
	case '{':
		t = LBRACE
	case '}':
		t = RBRACE
	case '[':
		t = LSQUARE
	case ']':
		t = RSQUARE
	case '-', '+', '*', '/', '%', '<', '>', '=', '.', ',', ':', '|', '&',
		'@', '$', '!', '?', '~', '^', '`', '\\':
		t = OPERATOR
	default:
		t = ILLEGAL
	}
	l.advance()
	return l.token(t, start)
}
