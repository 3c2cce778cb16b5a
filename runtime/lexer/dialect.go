package lexer

// Dialect is the shared token classification ruleset consumed by every
// component that reasons about spans: which words are logical keywords,
// which token types separate statements, which open and close groups, and
// which parenthesized constructs capture their contents. It is passed
// explicitly so that multiple dialects can coexist and be tested
// independently instead of living in package-level state.
type Dialect struct {
	// Keywords maps identifier text to keyword token types.
	Keywords map[string]TokenType

	breaks    map[TokenType]bool // statement/logic separators
	groupOpen map[TokenType]bool // all grouping openers, capturing included
	capturing map[TokenType]bool // capturing-construct openers only
	trivial   map[TokenType]bool // tokens that never join a command span
}

// DefaultDialect returns the hysh ruleset: and/or/not keywords, `;`, `&&`,
// `||`, `and`, `or` separators, standard bracket pairs, and the three
// capturing constructs @( $( !(.
func DefaultDialect() *Dialect {
	return &Dialect{
		Keywords: map[string]TokenType{
			"and": AND,
			"or":  OR,
			"not": NOT,
		},
		breaks: map[TokenType]bool{
			SEMICOLON: true,
			AND:       true,
			OR:        true,
			AND_AND:   true,
			OR_OR:     true,
		},
		groupOpen: map[TokenType]bool{
			LPAREN:      true,
			ATPAREN:     true,
			DOLLARPAREN: true,
			BANGPAREN:   true,
		},
		capturing: map[TokenType]bool{
			ATPAREN:     true,
			DOLLARPAREN: true,
			BANGPAREN:   true,
		},
		trivial: map[TokenType]bool{
			NEWLINE: true,
			COMMENT: true,
			EOF:     true,
		},
	}
}

// IsBreak reports whether t separates statements at depth 0.
func (d *Dialect) IsBreak(t TokenType) bool { return d.breaks[t] }

// IsGroupOpen reports whether t opens a parenthesized group of any kind.
func (d *Dialect) IsGroupOpen(t TokenType) bool { return d.groupOpen[t] }

// IsCapturing reports whether t opens a capturing construct, whose matching
// RPAREN must stay inside the command span.
func (d *Dialect) IsCapturing(t TokenType) bool { return d.capturing[t] }

// IsTrivial reports whether t can never belong to a command span.
func (d *Dialect) IsTrivial(t TokenType) bool { return d.trivial[t] }

// keyword resolves identifier text to a keyword token type, or IDENTIFIER.
func (d *Dialect) keyword(text string) TokenType {
	if t, ok := d.Keywords[text]; ok {
		return t
	}
	return IDENTIFIER
}
