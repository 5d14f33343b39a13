// Package parser turns the lines of a list document into models.Item values.
//
// Three line formats are supported, each a Kind: checkbox task files,
// markdown lists and plain line-per-item text. A Selector picks exactly one
// Kind for a file name.
package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattsolo1/grove-lists/pkg/models"
)

// Kind identifies a line-parsing strategy.
type Kind int

const (
	KindUnsupported Kind = iota
	KindTasks
	KindMarkdown
	KindPlain
)

// Kinds lists the supported variants in selection priority order.
var Kinds = []Kind{KindTasks, KindMarkdown, KindPlain}

var kindNames = map[Kind]string{
	KindUnsupported: "unsupported",
	KindTasks:       "tasks",
	KindMarkdown:    "markdown",
	KindPlain:       "plain",
}

var kindExtensions = map[Kind][]string{
	KindTasks:    {".tasks", ".todo", ".task"},
	KindMarkdown: {".md", ".markdown"},
	KindPlain:    {".txt", ".list", ".log"},
}

var (
	tagPattern     = regexp.MustCompile(`#(\w+)`)
	projectPattern = regexp.MustCompile(`@(\w+)`)
)

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnsupported]
}

// ParseKind resolves a variant by its name ("tasks", "markdown", "plain").
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindUnsupported, false
}

// Extensions returns the built-in file extensions handled by k, lower-case
// and dot-prefixed.
func (k Kind) Extensions() []string {
	return append([]string(nil), kindExtensions[k]...)
}

// ParseLine parses one raw line. The boolean is false when the line is not
// an item for this format.
func (k Kind) ParseLine(text string, lineNumber int) (models.Item, bool) {
	switch k {
	case KindTasks:
		return parseTaskLine(text, lineNumber), true
	case KindMarkdown:
		return parseMarkdownLine(text, lineNumber)
	case KindPlain:
		return parsePlainLine(text, lineNumber)
	default:
		return models.Item{}, false
	}
}

// Parse applies ParseLine to every line of doc in order.
func (k Kind) Parse(doc Document) *models.ParseResult {
	lineCount := doc.LineCount()
	items := make([]models.Item, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		if item, ok := k.ParseLine(doc.LineAt(i).Text, i); ok {
			items = append(items, item)
		}
	}
	return models.NewParseResult(items, lineCount)
}

// indentLevel counts leading whitespace characters and halves the count,
// so a tab weighs the same as a single space.
func indentLevel(text string) int {
	rest := strings.TrimLeftFunc(text, unicode.IsSpace)
	return utf8.RuneCountInString(text[:len(text)-len(rest)]) / 2
}

func trimEnd(text string) string {
	return strings.TrimRightFunc(text, unicode.IsSpace)
}

func extractTags(text string) []string {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

func extractProject(text string) string {
	if m := projectPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
