package parser

import (
	"regexp"

	"github.com/mattsolo1/grove-lists/pkg/models"
)

var headingPattern = regexp.MustCompile(`^\s{0,3}(#{1,6})\s+(.*)$`)

// HeadingDepth returns the ATX heading depth (1-6) of text and its title,
// or 0 when the line is not a heading.
func HeadingDepth(text string) (int, string) {
	m := headingPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, ""
	}
	return len(m[1]), trimEnd(m[2])
}

// Headings returns the markdown headings of doc as items whose level is the
// heading depth minus one, so "#" is level 0 and "##" level 1.
func Headings(doc Document) []models.Item {
	var items []models.Item
	for i := 0; i < doc.LineCount(); i++ {
		text := doc.LineAt(i).Text
		depth, title := HeadingDepth(text)
		if depth == 0 {
			continue
		}
		items = append(items, models.Item{
			LineNumber: i,
			Text:       trimEnd(text),
			Level:      depth - 1,
			Tags:       extractTags(title),
			Project:    extractProject(title),
		})
	}
	return items
}
