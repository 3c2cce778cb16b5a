package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokenExpectation struct {
	Type   TokenType
	Text   string
	Offset int
}

// assertTokens tokenizes input with the default dialect and compares the
// resulting (type, text, offset) triples.
func assertTokens(t *testing.T, input string, expected []tokenExpectation) {
	t.Helper()
	var got []tokenExpectation
	for _, tok := range Tokenize(nil, input) {
		got = append(got, tokenExpectation{Type: tok.Type, Text: tok.Text, Offset: tok.Pos.Offset})
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", input, diff)
	}
}

func TestTokenizeWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "command with flag",
			input: "ls -l",
			expected: []tokenExpectation{
				{IDENTIFIER, "ls", 0},
				{OPERATOR, "-", 3},
				{IDENTIFIER, "l", 4},
			},
		},
		{
			name:  "leading whitespace is skipped",
			input: "    ls",
			expected: []tokenExpectation{
				{IDENTIFIER, "ls", 4},
			},
		},
		{
			name:  "number",
			input: "ls 42",
			expected: []tokenExpectation{
				{IDENTIFIER, "ls", 0},
				{NUMBER, "42", 3},
			},
		},
		{
			name:  "unicode identifier",
			input: "Eßen",
			expected: []tokenExpectation{
				{IDENTIFIER, "Eßen", 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestTokenizeKeywordsAndSeparators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "logical keywords",
			input: "not a and b or c",
			expected: []tokenExpectation{
				{NOT, "not", 0},
				{IDENTIFIER, "a", 4},
				{AND, "and", 6},
				{IDENTIFIER, "b", 10},
				{OR, "or", 12},
				{IDENTIFIER, "c", 15},
			},
		},
		{
			name:  "shell style operators",
			input: "a && b || c",
			expected: []tokenExpectation{
				{IDENTIFIER, "a", 0},
				{AND_AND, "&&", 2},
				{IDENTIFIER, "b", 5},
				{OR_OR, "||", 7},
				{IDENTIFIER, "c", 10},
			},
		},
		{
			name:  "semicolon and newline",
			input: "ls;\n",
			expected: []tokenExpectation{
				{IDENTIFIER, "ls", 0},
				{SEMICOLON, ";", 2},
				{NEWLINE, "\n", 3},
			},
		},
		{
			name:  "single ampersand and pipe are operators",
			input: "a & b | c",
			expected: []tokenExpectation{
				{IDENTIFIER, "a", 0},
				{OPERATOR, "&", 2},
				{IDENTIFIER, "b", 4},
				{OPERATOR, "|", 6},
				{IDENTIFIER, "c", 8},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestTokenizeCapturingConstructs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "python eval capture",
			input: "echo @(1+1)",
			expected: []tokenExpectation{
				{IDENTIFIER, "echo", 0},
				{ATPAREN, "@(", 5},
				{NUMBER, "1", 7},
				{OPERATOR, "+", 8},
				{NUMBER, "1", 9},
				{RPAREN, ")", 10},
			},
		},
		{
			name:  "output and process captures",
			input: "$(ls) !(ls)",
			expected: []tokenExpectation{
				{DOLLARPAREN, "$(", 0},
				{IDENTIFIER, "ls", 2},
				{RPAREN, ")", 4},
				{BANGPAREN, "!(", 6},
				{IDENTIFIER, "ls", 8},
				{RPAREN, ")", 10},
			},
		},
		{
			name:  "bare markers are operators",
			input: "@ $ !",
			expected: []tokenExpectation{
				{OPERATOR, "@", 0},
				{OPERATOR, "$", 2},
				{OPERATOR, "!", 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestTokenizeStringsAndComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "double quoted string",
			input: `git commit -am "hello doc"`,
			expected: []tokenExpectation{
				{IDENTIFIER, "git", 0},
				{IDENTIFIER, "commit", 4},
				{OPERATOR, "-", 11},
				{IDENTIFIER, "am", 12},
				{STRING, `"hello doc"`, 15},
			},
		},
		{
			name:  "escaped quote stays inside",
			input: `"a\"b"`,
			expected: []tokenExpectation{
				{STRING, `"a\"b"`, 0},
			},
		},
		{
			name:  "unterminated string runs to end of input",
			input: `echo "open`,
			expected: []tokenExpectation{
				{IDENTIFIER, "echo", 0},
				{STRING, `"open`, 5},
			},
		},
		{
			name:  "comment to end of line",
			input: "ls  # lets list",
			expected: []tokenExpectation{
				{IDENTIFIER, "ls", 0},
				{COMMENT, "# lets list", 4},
			},
		},
		{
			name:     "comment only",
			input:    "# nothing here",
			expected: []tokenExpectation{{COMMENT, "# nothing here", 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestTokenizeNeverFails(t *testing.T) {
	// Control bytes become ILLEGAL tokens instead of stopping the scan.
	toks := Tokenize(nil, "ls \x01 -l")
	want := []tokenExpectation{
		{IDENTIFIER, "ls", 0},
		{ILLEGAL, "\x01", 3},
		{OPERATOR, "-", 5},
		{IDENTIFIER, "l", 6},
	}
	var got []tokenExpectation
	for _, tok := range toks {
		got = append(got, tokenExpectation{Type: tok.Type, Text: tok.Text, Offset: tok.Pos.Offset})
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenPositions(t *testing.T) {
	toks := Tokenize(nil, "ls\nls")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(toks))
	}
	second := toks[2]
	if second.Pos.Line != 2 || second.Pos.Column != 1 || second.Pos.Offset != 3 {
		t.Errorf("second ls position = %+v, want line 2 column 1 offset 3", second.Pos)
	}
	if second.End.Offset != 5 {
		t.Errorf("second ls end offset = %d, want 5", second.End.Offset)
	}
}

func TestDialectClassification(t *testing.T) {
	d := DefaultDialect()
	for _, tt := range []struct {
		typ       TokenType
		isBreak   bool
		groupOpen bool
		capturing bool
	}{
		{SEMICOLON, true, false, false},
		{AND, true, false, false},
		{OR_OR, true, false, false},
		{LPAREN, false, true, false},
		{ATPAREN, false, true, true},
		{DOLLARPAREN, false, true, true},
		{BANGPAREN, false, true, true},
		{IDENTIFIER, false, false, false},
	} {
		if got := d.IsBreak(tt.typ); got != tt.isBreak {
			t.Errorf("IsBreak(%v) = %v, want %v", tt.typ, got, tt.isBreak)
		}
		if got := d.IsGroupOpen(tt.typ); got != tt.groupOpen {
			t.Errorf("IsGroupOpen(%v) = %v, want %v", tt.typ, got, tt.groupOpen)
		}
		if got := d.IsCapturing(tt.typ); got != tt.capturing {
			t.Errorf("IsCapturing(%v) = %v, want %v", tt.typ, got, tt.capturing)
		}
	}
	if !d.IsTrivial(COMMENT) || !d.IsTrivial(NEWLINE) || d.IsTrivial(STRING) {
		t.Error("trivial classification mismatch")
	}
}
