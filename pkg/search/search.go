// Package search builds pick lists a host can show in a quick-pick style
// menu: keyword hits, markdown headings and items of chosen priorities.
package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattsolo1/grove-lists/pkg/models"
	"github.com/mattsolo1/grove-lists/pkg/parser"
)

// NoPriority selects items that carry no priority marker.
const NoPriority = "No Priority"

// EmptyLineLabel labels a matching line that is blank once trimmed.
const EmptyLineLabel = "(empty line)"

// Pick is one entry of a pick list. LineNumber is zero-based.
type Pick struct {
	Label      string `json:"label"`
	Detail     string `json:"detail"`
	LineNumber int    `json:"line_number"`
}

var listMarkerPrefix = regexp.MustCompile(`^[\s\p{Zs}]*([-*+]|\d+\.)[\s\p{Zs}]*`)

// KeywordMatches returns a pick for every raw line of doc containing keyword,
// ignoring case. Each occurrence is highlighted as »match«.
func KeywordMatches(doc parser.Document, keyword string) []Pick {
	if keyword == "" {
		return nil
	}
	highlight := regexp.MustCompile("(?i)" + regexp.QuoteMeta(keyword))
	needle := strings.ToLower(keyword)

	var picks []Pick
	for i := 0; i < doc.LineCount(); i++ {
		text := doc.LineAt(i).Text
		if !strings.Contains(strings.ToLower(text), needle) {
			continue
		}
		label := strings.TrimSpace(highlight.ReplaceAllString(text, "»${0}«"))
		if label == "" {
			label = EmptyLineLabel
		}
		picks = append(picks, Pick{Label: label, Detail: lineDetail(i), LineNumber: i})
	}
	return picks
}

// HeadingPicks lists the markdown headings of doc, indented by depth.
func HeadingPicks(doc parser.Document) []Pick {
	var picks []Pick
	for _, h := range parser.Headings(doc) {
		_, title := parser.HeadingDepth(h.Text)
		picks = append(picks, Pick{
			Label:      strings.Repeat("  ", h.Level) + "»" + title + "«",
			Detail:     lineDetail(h.LineNumber),
			LineNumber: h.LineNumber,
		})
	}
	return picks
}

// PriorityPicks returns the items of result whose priority is one of wanted,
// compared case-insensitively. NoPriority in wanted selects unprioritized items.
func PriorityPicks(result *models.ParseResult, wanted []string) []Pick {
	if result == nil || len(wanted) == 0 {
		return nil
	}
	set := make(map[string]bool, len(wanted))
	for _, w := range wanted {
		set[strings.ToLower(w)] = true
	}
	noPriority := set[strings.ToLower(NoPriority)]

	var picks []Pick
	for _, item := range result.Items {
		if item.HasPriority() {
			if !set[strings.ToLower(item.Priority)] {
				continue
			}
		} else if !noPriority {
			continue
		}
		picks = append(picks, Pick{
			Label:      listMarkerPrefix.ReplaceAllString(item.Text, ""),
			Detail:     lineDetail(item.LineNumber),
			LineNumber: item.LineNumber,
		})
	}
	return picks
}

func lineDetail(lineNumber int) string {
	return fmt.Sprintf("Line %d", lineNumber+1)
}
