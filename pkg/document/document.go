// Package document provides the line-oriented view of a file that every
// stylefix rule works against. A Document is immutable once built.
package document

import (
	"path/filepath"
	"sort"
	"strings"
)

// Kind identifies the family of rules that apply to a document.
type Kind string

const (
	// KindUnknown is used for files stylefix does not lint.
	KindUnknown Kind = ""
	// KindMarkdown covers .md and .markdown files.
	KindMarkdown Kind = "markdown"
	// KindYAML covers .yml and .yaml files.
	KindYAML Kind = "yaml"
	// KindJinja covers Jinja2 templates (.j2, .jinja, .jinja2).
	KindJinja Kind = "jinja"
)

// AllKinds lists the lintable kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindMarkdown, KindYAML, KindJinja}
}

var extensionKinds = map[string]Kind{
	".md":       KindMarkdown,
	".markdown": KindMarkdown,
	".yml":      KindYAML,
	".yaml":     KindYAML,
	".j2":       KindJinja,
	".jinja":    KindJinja,
	".jinja2":   KindJinja,
}

// Detect returns the Kind implied by the file extension of path.
func Detect(path string) Kind {
	return extensionKinds[strings.ToLower(filepath.Ext(path))]
}

// ParseKind converts a user-facing name such as "md" or "yaml" to a Kind.
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "md", "markdown":
		return KindMarkdown, true
	case "yml", "yaml", "ansible":
		return KindYAML, true
	case "j2", "jinja", "jinja2":
		return KindJinja, true
	default:
		return KindUnknown, false
	}
}

// Extensions returns the file extensions mapped to kind, sorted.
func Extensions(kind Kind) []string {
	var exts []string
	for ext, k := range extensionKinds {
		if k == kind {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// Document is an ordered sequence of lines read from one file.
type Document struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Kind selects the rules that apply.
	Kind Kind

	// Content is the decoded UTF-8 text.
	Content []byte

	// Lines indexes Content. A trailing line terminator does not start an
	// extra empty line.
	Lines []Line

	// Encoding records how Content was decoded from disk.
	Encoding Encoding
}

// New builds a Document from already-decoded content.
func New(path string, kind Kind, content []byte) *Document {
	return &Document{
		Path:     path,
		Kind:     kind,
		Content:  content,
		Lines:    BuildLines(content),
		Encoding: EncodingUTF8,
	}
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// LineText returns the 1-based line without its terminator.
// It returns "" when line is out of range.
func (d *Document) LineText(line int) string {
	if line < 1 || line > len(d.Lines) {
		return ""
	}
	info := d.Lines[line-1]
	return string(d.Content[info.StartOffset:info.NewlineStart])
}

// Line returns the metadata for a 1-based line number.
func (d *Document) Line(line int) (Line, bool) {
	if line < 1 || line > len(d.Lines) {
		return Line{}, false
	}
	return d.Lines[line-1], true
}

// EndsWithNewline reports whether the content ends in a line terminator.
func (d *Document) EndsWithNewline() bool {
	n := len(d.Content)
	return n > 0 && (d.Content[n-1] == '\n' || d.Content[n-1] == '\r')
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes. Returns (0, 0) for a negative offset or empty document.
func (d *Document) LineAt(offset int) (int, int) {
	if offset < 0 || len(d.Lines) == 0 {
		return 0, 0
	}
	idx := sort.Search(len(d.Lines), func(i int) bool {
		return d.Lines[i].EndOffset > offset
	})
	if idx >= len(d.Lines) {
		idx = len(d.Lines) - 1
	}
	return idx + 1, offset - d.Lines[idx].StartOffset + 1
}
