package parser

import "strings"

// Line is one raw line of a document, without its line terminator.
type Line struct {
	Text string
}

// Document is the read-only view of a source file the parsers consume.
// The caller owns all I/O; parsers only walk lines.
type Document interface {
	FileName() string
	LineCount() int
	LineAt(i int) Line
}

// TextDocument is an in-memory Document built from file content.
type TextDocument struct {
	name  string
	lines []string
}

// NewDocument splits content into lines. Both "\n" and "\r\n" terminate a
// line, and a trailing terminator yields a final empty line, so "" has one
// line and "a\n" has two.
func NewDocument(fileName, content string) *TextDocument {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return &TextDocument{name: fileName, lines: lines}
}

func (d *TextDocument) FileName() string { return d.name }

func (d *TextDocument) LineCount() int { return len(d.lines) }

// LineAt returns line i, or an empty Line when i is out of range.
func (d *TextDocument) LineAt(i int) Line {
	if i < 0 || i >= len(d.lines) {
		return Line{}
	}
	return Line{Text: d.lines[i]}
}

// Lines returns a copy of the document's lines.
func (d *TextDocument) Lines() []string {
	return append([]string(nil), d.lines...)
}
