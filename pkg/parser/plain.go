package parser

import (
	"strings"
	"time"

	"github.com/mattsolo1/grove-lists/pkg/models"
)

func parsePlainLine(text string, lineNumber int) (models.Item, bool) {
	if strings.TrimSpace(text) == "" {
		return models.Item{}, false
	}

	item := models.Item{
		LineNumber: lineNumber,
		Text:       trimEnd(text),
		Level:      indentLevel(text),
		Tags:       extractTags(text),
		Project:    extractProject(text),
	}
	if ts, ok := ParseTimestamp(text, time.Local); ok {
		item.Timestamp = &ts
	}
	return item, true
}
