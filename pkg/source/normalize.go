package source

import "strings"

// marginMarker separates the carrying indentation of an embedded literal
// from its payload.
const marginMarker = '|'

// Normalize prepares an indented literal (typically a raw string inside
// test code) for parsing. Each non-blank line must consist of optional
// leading whitespace, a '|' marker, and the payload; the payload is kept
// verbatim, including its own indentation. Blank lines become empty
// lines, and a single leading and trailing blank line are trimmed so the
// literal can hug its surrounding quotes.
//
// A non-blank line without a marker fails with *MarginError: there is no
// way to tell how much of its indentation is margin.
func Normalize(text string) (string, error) {
	lines := strings.Split(text, "\n")

	first := 0
	last := len(lines)
	if first < last && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	if first < last && strings.TrimSpace(lines[last-1]) == "" {
		last--
	}

	out := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}

		trimmed := strings.TrimLeft(line, " \t")
		if trimmed[0] != marginMarker {
			return "", &MarginError{Line: i + 1, Text: line}
		}
		out = append(out, trimmed[1:])
	}

	return strings.Join(out, "\n"), nil
}
