package parser

import (
	"regexp"
	"strings"

	"github.com/mattsolo1/grove-lists/pkg/models"
)

// Indentation and the gap after a list marker may use any Unicode space
// separator, not only ASCII whitespace.
var (
	listItemPattern = regexp.MustCompile(`^([\s\p{Zs}]*)([-*+]|\d+\.)[\s\p{Zs}]+(.+)$`)
	checkboxPrefix  = regexp.MustCompile(`(?i)^\[([ x])\]\s*(.*)$`)
)

// parseMarkdownLine accepts only list-marker lines. A leading checkbox in
// the content sets completion and is stripped before tag and project
// extraction.
func parseMarkdownLine(text string, lineNumber int) (models.Item, bool) {
	m := listItemPattern.FindStringSubmatch(text)
	if m == nil {
		return models.Item{}, false
	}

	content := m[3]
	completed := false
	if cb := checkboxPrefix.FindStringSubmatch(content); cb != nil {
		completed = strings.EqualFold(cb[1], "x")
		content = cb[2]
	}

	return models.Item{
		LineNumber: lineNumber,
		Text:       trimEnd(text),
		Level:      indentLevel(text),
		Tags:       extractTags(content),
		Completed:  completed,
		Project:    extractProject(content),
	}, true
}
