package migration

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/mattsolo1/grove-lists/pkg/edit"
	"github.com/mattsolo1/grove-lists/pkg/parser"
)

var looseCheckbox = regexp.MustCompile(`\[\s*[xX]?\s*\]`)

// Analyzer checks lines of one list format. The format decides which
// checkbox rewrites are safe: a rewrite that would change the completion
// state the line parses to is reported but never applied.
type Analyzer struct {
	kind       parser.Kind
	priorities []string
}

// NewAnalyzer returns an analyzer for lines of kind that flags priority
// markers missing from priorities. A nil list skips that check.
func NewAnalyzer(kind parser.Kind, priorities []string) *Analyzer {
	return &Analyzer{kind: kind, priorities: priorities}
}

// AnalyzeDocument reports the issues of every line of doc.
func (a *Analyzer) AnalyzeDocument(doc parser.Document) []MigrationIssue {
	issues := []MigrationIssue{}
	for i := 0; i < doc.LineCount(); i++ {
		issues = append(issues, a.AnalyzeLine(doc.LineAt(i).Text, i)...)
	}
	return issues
}

// AnalyzeLine reports the issues of one raw line.
func (a *Analyzer) AnalyzeLine(text string, line int) []MigrationIssue {
	var issues []MigrationIssue

	body := strings.TrimLeftFunc(text, unicode.IsSpace)
	indent := text[:len(text)-len(body)]
	if strings.TrimSpace(text) != "" {
		if strings.ContainsRune(indent, '\t') {
			issues = append(issues, MigrationIssue{
				Type:        IssueTabIndent,
				Description: "Indentation contains tabs",
				Line:        line,
				Current:     indent,
				Expected:    canonicalIndent(indent),
				Fixable:     true,
			})
		} else if len([]rune(indent))%2 != 0 {
			issues = append(issues, MigrationIssue{
				Type:        IssueOddIndent,
				Description: fmt.Sprintf("Indentation of %d spaces is not a multiple of two", len([]rune(indent))),
				Line:        line,
				Current:     indent,
				Expected:    canonicalIndent(indent),
				Fixable:     true,
			})
		}
	}

	if loc := looseCheckbox.FindStringIndex(text); loc != nil {
		box := text[loc[0]:loc[1]]
		if want := canonicalCheckbox(box); want != box {
			issue := MigrationIssue{
				Type:        IssueMalformedCheckbox,
				Description: "Checkbox is not written as [ ] or [x]",
				Line:        line,
				Current:     box,
				Expected:    want,
				Fixable:     true,
			}
			if _, ok := a.fixCheckbox(text); !ok {
				issue.Description = fmt.Sprintf("Checkbox %q cannot become %s without changing whether the item is completed", box, want)
				issue.Expected = ""
				issue.Fixable = false
			}
			issues = append(issues, issue)
		}
	}

	if trimmed := strings.TrimRightFunc(text, unicode.IsSpace); trimmed != text && strings.TrimSpace(text) != "" {
		issues = append(issues, MigrationIssue{
			Type:        IssueTrailingWhitespace,
			Description: "Line has trailing whitespace",
			Line:        line,
			Fixable:     true,
		})
	}

	if a.priorities != nil {
		if name, ok := edit.Priority(text); ok && !containsFold(a.priorities, name) {
			issues = append(issues, MigrationIssue{
				Type:        IssueUnknownPriority,
				Description: fmt.Sprintf("Priority %q is not in the configured priority list", name),
				Line:        line,
				Current:     name,
			})
		}
	}
	return issues
}

// Fix returns text with every fixable issue resolved. Whitespace-only lines
// are returned unchanged.
func (a *Analyzer) Fix(text string) string {
	body := strings.TrimLeftFunc(text, unicode.IsSpace)
	if body == "" {
		return text
	}
	text = canonicalIndent(text[:len(text)-len(body)]) + strings.TrimRightFunc(body, unicode.IsSpace)

	if fixed, ok := a.fixCheckbox(text); ok {
		text = fixed
	}
	return text
}

// fixCheckbox canonicalizes the first checkbox of text. ok is false when the
// rewritten line would parse with a different completion state.
func (a *Analyzer) fixCheckbox(text string) (string, bool) {
	loc := looseCheckbox.FindStringIndex(text)
	if loc == nil {
		return text, true
	}
	fixed := text[:loc[0]] + canonicalCheckbox(text[loc[0]:loc[1]]) + text[loc[1]:]
	return fixed, a.completed(fixed) == a.completed(text)
}

func (a *Analyzer) completed(text string) bool {
	item, ok := a.kind.ParseLine(text, 0)
	return ok && item.Completed
}

// canonicalIndent keeps the level of indent (one per two whitespace runes)
// and writes it as two spaces per level.
func canonicalIndent(indent string) string {
	return strings.Repeat("  ", len([]rune(indent))/2)
}

func canonicalCheckbox(box string) string {
	if strings.ContainsAny(box, "xX") {
		return "[x]"
	}
	return "[ ]"
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
