package parser

import "strings"

// normalizeNewlines strips a leading byte-order mark and converts CRLF / CR
// line endings to LF.
func normalizeNewlines(doc string) string {
	doc = strings.TrimPrefix(doc, "\ufeff")
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	return strings.ReplaceAll(doc, "\r", "\n")
}

// splitBlocks cuts doc on every line whose trimmed content equals separator.
// Blocks are trimmed and empty ones are discarded.
func splitBlocks(doc, separator string) []string {
	lines := strings.Split(normalizeNewlines(doc), "\n")

	var blocks []string
	current := make([]string, 0, 64)
	flush := func() {
		if block := strings.TrimSpace(strings.Join(current, "\n")); block != "" {
			blocks = append(blocks, block)
		}
		current = current[:0]
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == separator {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}
