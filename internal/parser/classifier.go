package parser

import "strings"

// classify derives the multi-select flag and expected selection count from
// the "(Choose two)" / "(Choose three)" qualifiers. "two" is tested first.
func classify(body string) (bool, int) {
	switch {
	case strings.Contains(body, "(Choose two)") || strings.Contains(body, "(Choose two.)"):
		return true, 2
	case strings.Contains(body, "(Choose three)") || strings.Contains(body, "(Choose three.)"):
		return true, 3
	default:
		return false, 1
	}
}
