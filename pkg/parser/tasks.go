package parser

import (
	"regexp"
	"strings"

	"github.com/mattsolo1/grove-lists/pkg/models"
)

var checkedBox = regexp.MustCompile(`(?i)\[x\]`)

// taskPriorities is the fixed marker vocabulary for task files, scanned in
// this order. It is independent of the configurable priority list used for
// sorting and cycling.
var taskPriorities = []string{"critical", "high", "medium", "low"}

// parseTaskLine treats every line, blank or not, as an item.
func parseTaskLine(text string, lineNumber int) models.Item {
	return models.Item{
		LineNumber: lineNumber,
		Text:       trimEnd(text),
		Level:      indentLevel(text),
		Tags:       extractTags(text),
		Completed:  checkedBox.MatchString(text),
		Priority:   taskPriority(text),
		Project:    extractProject(text),
	}
}

// taskPriority returns the first marker of taskPriorities present anywhere
// in the line, which is not necessarily the leftmost one.
func taskPriority(text string) string {
	lower := strings.ToLower(text)
	for _, p := range taskPriorities {
		if strings.Contains(lower, "!"+p) {
			return p
		}
	}
	return ""
}
