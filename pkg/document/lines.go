package document

// Line holds byte offsets for a single line of a Document.
type Line struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where the line terminator begins.
	// For a last line without terminator it equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the terminator (or end of content).
	EndOffset int
}

// IsBlank reports whether the line holds only spaces and tabs.
func (l Line) IsBlank(content []byte) bool {
	for _, c := range content[l.StartOffset:l.NewlineStart] {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

// BuildLines indexes content into lines. LF and CRLF terminators are
// recognized; a lone CR is left inside the line text.
func BuildLines(content []byte) []Line {
	if len(content) == 0 {
		return []Line{}
	}

	var lines []Line
	start := 0

	for idx, char := range content {
		if char != '\n' {
			continue
		}
		nl := idx
		if idx > start && content[idx-1] == '\r' {
			nl = idx - 1
		}
		lines = append(lines, Line{StartOffset: start, NewlineStart: nl, EndOffset: idx + 1})
		start = idx + 1
	}

	if start < len(content) {
		lines = append(lines, Line{StartOffset: start, NewlineStart: len(content), EndOffset: len(content)})
	}

	return lines
}
