// Package wrap decides which span of a hybrid source line is a subprocess
// command and rewrites it inside explicit ![ ] markers, producing a line the
// parser can consume unambiguously. The decision is purely lexical and
// column-precise: callers retry parsing with different column bounds until a
// rewrite sticks.
package wrap

import (
	"strings"

	"github.com/hysh-lang/hysh/runtime/lexer"
)

// Engine computes command spans against a fixed dialect.
type Engine struct {
	dialect *lexer.Dialect
}

// New creates an engine. A nil dialect uses the default hysh ruleset.
func New(dialect *lexer.Dialect) *Engine {
	if dialect == nil {
		dialect = lexer.DefaultDialect()
	}
	return &Engine{dialect: dialect}
}

// Dialect returns the engine's classification ruleset.
func (e *Engine) Dialect() *lexer.Dialect { return e.dialect }

type wrapConfig struct {
	minCol     int
	maxCol     int
	returnLine bool
}

// WrapOpt configures a single SubprocToks call.
type WrapOpt func(*wrapConfig)

// WithMinCol sets the minimum column (0-based, inclusive) the command span
// may start at. Tokens beginning before it are left outside the wrap.
func WithMinCol(col int) WrapOpt {
	return func(c *wrapConfig) { c.minCol = col }
}

// WithMaxCol sets the column bound (0-based, exclusive) past which tokens no
// longer join the span. Defaults to len(line)+1.
func WithMaxCol(col int) WrapOpt {
	return func(c *wrapConfig) { c.maxCol = col }
}

// WithReturnLine makes SubprocToks return the whole rewritten line instead
// of just the bracketed span.
func WithReturnLine() WrapOpt {
	return func(c *wrapConfig) { c.returnLine = true }
}

// endToken reports whether t terminates a span segment: a depth-0 break or
// a closing paren. Closing parens of capturing constructs are exempted at
// the call sites via the opener stack.
func endToken(d *lexer.Dialect, t lexer.TokenType) bool {
	return d.IsBreak(t) || t == lexer.RPAREN
}

// begSkip reports whether t stays outside the span when nothing has been
// collected yet: a leading logical negation or a plain opening paren. The
// paren is re-added around the wrapped result by virtue of living in the
// preserved prefix, which yields (![...]) rather than ![(...)].
func begSkip(t lexer.TokenType) bool {
	return t == lexer.NOT || t == lexer.LPAREN
}

// closesCapture reports whether tok is a closing paren whose opener stack
// still holds a capturing construct, in which case the paren belongs inside
// the span and must not end it.
func closesCapture(d *lexer.Dialect, openers []lexer.TokenType, tok lexer.Token) bool {
	if tok.Type != lexer.RPAREN {
		return false
	}
	for _, t := range openers {
		if d.IsCapturing(t) {
			return true
		}
	}
	return false
}

// SubprocToks finds the maximal command span of line within the configured
// column bounds and wraps it as ![span]. Everything outside the span is
// preserved verbatim around the markers: indentation, a leading `not`,
// surrounding parens, earlier statements and their separators, trailing
// comments, semicolons and newlines. The second return is false when
// the line holds no wrappable span (empty, whitespace, comment-only, or a
// bare separator).
func (e *Engine) SubprocToks(line string, opts ...WrapOpt) (string, bool) {
	cfg := wrapConfig{minCol: 0, maxCol: len(line) + 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	d := e.dialect
	var span []lexer.Token
	var openers []lexer.TokenType

	lx := lexer.New(d)
	lx.Init(line)
	for {
		tok := lx.NextToken()
		if tok.Type == lexer.EOF {
			break
		}
		if d.IsTrivial(tok.Type) {
			// A newline ends the span once anything was collected; the
			// rest of the buffer is reattached verbatim. Leading trivia
			// is skipped.
			if tok.Type == lexer.NEWLINE && len(span) > 0 {
				break
			}
			continue
		}
		pos := tok.Pos.Offset
		if !endToken(d, tok.Type) && pos >= cfg.maxCol {
			break
		}
		if d.IsGroupOpen(tok.Type) {
			openers = append(openers, tok.Type)
		}
		if len(span) == 0 && begSkip(tok.Type) {
			continue
		} else if len(span) > 0 && endToken(d, span[len(span)-1].Type) {
			if closesCapture(d, openers, span[len(span)-1]) {
				// The collected paren closed a capturing construct;
				// the span continues through it.
				openers = openers[:len(openers)-1]
			} else if pos < cfg.maxCol && !endToken(d, tok.Type) {
				// A fresh statement begins inside the window; restart
				// the span after the separator.
				span = span[:0]
				if begSkip(tok.Type) {
					continue
				}
			} else {
				break
			}
		}
		if pos < cfg.minCol {
			continue
		}
		span = append(span, tok)
	}

	if len(span) == 0 {
		return "", false
	}
	if last := span[len(span)-1]; endToken(d, last.Type) && !closesCapture(d, openers, last) {
		span = span[:len(span)-1]
	}
	if len(span) == 0 {
		return "", false
	}

	beg := span[0].Pos.Offset
	end := span[len(span)-1].End.Offset
	// Never trap whitespace inside the closing bracket.
	end = len(strings.TrimRight(line[:end], " \t"))

	rtn := "![" + line[beg:end] + "]"
	if cfg.returnLine {
		rtn = line[:beg] + rtn + line[end:]
	}
	return rtn, true
}
