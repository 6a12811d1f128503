package lint

import (
	"regexp"
	"strings"

	"github.com/yaklabco/stylefix/pkg/document"
)

// FenceRole marks a line as a fence delimiter.
type FenceRole int

const (
	// FenceNone is any line that is not a fence delimiter.
	FenceNone FenceRole = iota
	// FenceOpen is the line that starts a fenced block.
	FenceOpen
	// FenceClose is the line that ends a fenced block.
	FenceClose
)

// minFenceLen is the shortest run of backticks or tildes that opens a fence.
const minFenceLen = 3

var (
	headingPattern  = regexp.MustCompile(`^#+[ \t]`)
	listItemPattern = regexp.MustCompile(`^[ \t]*([-*+]|\d+[.)])[ \t]+`)
)

// LineState is the per-line context seen by the Markdown rules.
type LineState struct {
	// Num is the 1-based line number.
	Num int

	// Text is the line without its terminator.
	Text string

	// Blank is true for empty or whitespace-only lines.
	Blank bool

	// InFence is true for fence delimiters and everything between them.
	InFence bool

	// Fence is set on delimiter lines.
	Fence FenceRole

	// FenceChar is '`' or '~' on delimiter lines.
	FenceChar byte

	// FenceLen is the delimiter run length on delimiter lines.
	FenceLen int

	// Info is the trimmed info string of an opening fence.
	Info string

	// Indent counts leading spaces and tabs.
	Indent int

	// Heading is true for ATX headings outside fences.
	Heading bool

	// ListItem is true for bullet or ordered list items outside fences.
	ListItem bool

	// Opener is the 1-based line of the matching opening fence on a
	// closing delimiter, 0 otherwise.
	Opener int
}

// Content reports whether the line is non-blank.
func (l *LineState) Content() bool {
	return l != nil && !l.Blank
}

// IsHeading reports whether l is a non-nil heading line.
func (l *LineState) IsHeading() bool {
	return l != nil && l.Heading
}

// ScanState is the result of one forward pass over a document.
type ScanState struct {
	Lines []LineState

	// Unclosed is the line of a fence opener that never closed, or 0.
	Unclosed int
}

// Scan walks doc once and records fence, heading and list context per line.
// Fence state is tracked on raw text only: a delimiter inside a quoted
// example toggles the state like any other.
func Scan(doc *document.Document) *ScanState {
	state := &ScanState{}
	if doc == nil {
		return state
	}
	state.Lines = make([]LineState, doc.LineCount())

	var open *LineState
	for i := range state.Lines {
		text := doc.LineText(i + 1)
		trimmed := strings.TrimLeft(text, " \t")
		ls := &state.Lines[i]
		*ls = LineState{
			Num:    i + 1,
			Text:   text,
			Blank:  strings.TrimSpace(text) == "",
			Indent: len(text) - len(trimmed),
		}

		char, runLen, rest := fenceMarker(trimmed)

		if open != nil {
			ls.InFence = true
			if char == open.FenceChar && runLen >= open.FenceLen && strings.TrimSpace(rest) == "" {
				ls.Fence = FenceClose
				ls.FenceChar = char
				ls.FenceLen = runLen
				ls.Opener = open.Num
				open = nil
			}
			continue
		}

		if runLen > 0 && (char != '`' || !strings.ContainsRune(rest, '`')) {
			ls.InFence = true
			ls.Fence = FenceOpen
			ls.FenceChar = char
			ls.FenceLen = runLen
			ls.Info = strings.TrimSpace(rest)
			open = ls
			continue
		}

		ls.Heading = headingPattern.MatchString(text)
		ls.ListItem = !ls.Heading && listItemPattern.MatchString(text)
	}

	if open != nil {
		state.Unclosed = open.Num
	}
	return state
}

// fenceMarker returns the fence character, run length and remainder of a
// left-trimmed line, or a zero length if it does not start a fence.
func fenceMarker(trimmed string) (byte, int, string) {
	if trimmed == "" || (trimmed[0] != '`' && trimmed[0] != '~') {
		return 0, 0, ""
	}
	char := trimmed[0]
	n := 0
	for n < len(trimmed) && trimmed[n] == char {
		n++
	}
	if n < minFenceLen {
		return 0, 0, ""
	}
	return char, n, trimmed[n:]
}

// Len returns the number of scanned lines.
func (s *ScanState) Len() int {
	return len(s.Lines)
}

// At returns the state of the 1-based line n, or nil when out of range.
func (s *ScanState) At(n int) *LineState {
	if n < 1 || n > len(s.Lines) {
		return nil
	}
	return &s.Lines[n-1]
}

// View returns the previous, current and next line around n. Missing
// neighbours are nil.
func (s *ScanState) View(n int) (*LineState, *LineState, *LineState) {
	return s.At(n - 1), s.At(n), s.At(n + 1)
}
