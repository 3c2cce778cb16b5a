package wrap

import "strings"

// SubexprFromUnbalanced pulls a valid trailing subexpression out of text
// that ends inside an unclosed group: the fragment after the last top-level
// comma of the innermost unmatched opener. Used to recover a command-like
// fragment when column bounds cut a line off mid-call, e.g. `f(1,x.`
// yields `x.`. Balanced or opener-free input is returned unchanged.
func SubexprFromUnbalanced(expr string, open, close byte) string {
	var stack []int
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case open:
			stack = append(stack, i)
		case close:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if len(stack) == 0 {
		return expr
	}

	// Last unmatched opener; find the final comma at its nesting level.
	start := stack[len(stack)-1] + 1
	depth := 0
	lastComma := -1
	for i := start; i < len(expr); i++ {
		switch expr[i] {
		case open:
			depth++
		case close:
			depth--
		case ',':
			if depth == 0 {
				lastComma = i
			}
		}
	}
	if lastComma >= start {
		start = lastComma + 1
	}
	return strings.TrimSpace(expr[start:])
}
