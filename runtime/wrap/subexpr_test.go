package wrap

import "testing"

func TestSubexprFromUnbalanced(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"f(x.", "x."},
		{"f(1,x.", "x."},
		{"f((1,10),x.y", "x.y"},
		{"f((1,10), x.y", "x.y"},
		{"f(g(a,b),h(c,", ""},
		{"f(g(a,b),h(c", "c"},
		{"balanced(a,b)", "balanced(a,b)"},
		{"no parens here", "no parens here"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got := SubexprFromUnbalanced(tt.expr, '(', ')')
			if got != tt.want {
				t.Errorf("SubexprFromUnbalanced(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestSubexprFromUnbalancedBrackets(t *testing.T) {
	got := SubexprFromUnbalanced("d[k1, x[", '[', ']')
	if got != "" {
		t.Errorf("SubexprFromUnbalanced = %q, want empty fragment", got)
	}
	got = SubexprFromUnbalanced("d[k1, x.", '[', ']')
	if got != "x." {
		t.Errorf("SubexprFromUnbalanced = %q, want %q", got, "x.")
	}
}
