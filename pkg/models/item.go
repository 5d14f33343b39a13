package models

import "time"

// LineLimit is the soft line count above which a document is flagged as large.
const LineLimit = 1000

// Item is a single parsed line of a list document.
type Item struct {
	LineNumber int        `json:"line_number"` // zero-based
	Text       string     `json:"text"`        // raw line, trailing whitespace removed
	Level      int        `json:"level"`       // leading whitespace width / 2
	Tags       []string   `json:"tags"`
	Completed  bool       `json:"completed"`
	Priority   string     `json:"priority,omitempty"`
	Project    string     `json:"project,omitempty"`
	Timestamp  *time.Time `json:"timestamp,omitempty"` // plain-line documents only
}

// HasPriority reports whether a priority marker was found on the line.
func (i Item) HasPriority() bool {
	return i.Priority != ""
}

// HasProject reports whether an @project token was found on the line.
func (i Item) HasProject() bool {
	return i.Project != ""
}

// ParseResult is the output of parsing one document.
type ParseResult struct {
	Items        []Item `json:"items"`
	LineCount    int    `json:"line_count"`
	ExceedsLimit bool   `json:"exceeds_limit"`
}

// NewParseResult wraps items with the summary metadata for a document of lineCount lines.
func NewParseResult(items []Item, lineCount int) *ParseResult {
	if items == nil {
		items = []Item{}
	}
	return &ParseResult{
		Items:        items,
		LineCount:    lineCount,
		ExceedsLimit: lineCount > LineLimit,
	}
}
