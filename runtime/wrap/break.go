package wrap

import "github.com/hysh-lang/hysh/runtime/lexer"

// FindNextBreak returns the column just past the first character of the next
// logical break in line at or after minCol: a `;`, `&&`, `||`, `and` or `or`
// separator, or a closing paren that does not close a capturing construct.
// The returned column is suitable as a max-col bound for SubprocToks. The
// second return is false when no qualifying break exists.
func (e *Engine) FindNextBreak(line string, minCol int) (int, bool) {
	if minCol >= len(line) {
		return 0, false
	}
	if minCol >= 1 {
		line = line[minCol:]
	}

	d := e.dialect
	var openers []lexer.TokenType

	lx := lexer.New(d)
	lx.Init(line)
	for {
		tok := lx.NextToken()
		if tok.Type == lexer.EOF {
			return 0, false
		}
		switch {
		case d.IsGroupOpen(tok.Type):
			openers = append(openers, tok.Type)
		case endToken(d, tok.Type):
			if closesCapture(d, openers, tok) {
				openers = openers[:len(openers)-1]
				continue
			}
			return tok.Pos.Offset + minCol + 1, true
		}
	}
}
