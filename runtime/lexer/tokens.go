package lexer

// TokenType represents lexical tokens for hysh source lines
type TokenType int

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Trivial tokens (never part of a command span)
	NEWLINE // \n
	COMMENT // # single line comment

	// Statement separator
	SEMICOLON // ;

	// Logical keywords
	AND // and
	OR  // or
	NOT // not

	// Shell-style logical operators
	AND_AND // &&
	OR_OR   // ||

	// Grouping
	LPAREN  // (
	RPAREN  // )
	LBRACE  // {
	RBRACE  // }
	LSQUARE // [
	RSQUARE // ]

	// Capturing constructs (atomic during span detection)
	ATPAREN     // @( python-eval capture
	DOLLARPAREN // $( output capture
	BANGPAREN   // !( process capture

	// Literals and content
	IDENTIFIER // command names, words, variable names
	NUMBER     // 42, 3.14
	STRING     // "string" or 'string' content, including quotes

	// Runs of other punctuation such as -, >, |, .
	OPERATOR
)

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	case NEWLINE:
		return "NEWLINE"
	case COMMENT:
		return "COMMENT"
	case SEMICOLON:
		return "SEMICOLON"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	case AND_AND:
		return "AND_AND"
	case OR_OR:
		return "OR_OR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case LSQUARE:
		return "LSQUARE"
	case RSQUARE:
		return "RSQUARE"
	case ATPAREN:
		return "ATPAREN"
	case DOLLARPAREN:
		return "DOLLARPAREN"
	case BANGPAREN:
		return "BANGPAREN"
	case IDENTIFIER:
		return "IDENTIFIER"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case OPERATOR:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the source code
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// Token represents a lexical token. A token covers the half-open byte
// range [Pos.Offset, End.Offset) of the input.
type Token struct {
	Type TokenType
	Text string
	Pos  Position
	End  Position
}

// String returns the token text (for testing and debugging)
func (t Token) String() string {
	return t.Text
}
