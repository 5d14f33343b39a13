// Package frontmatter reads the optional YAML header of an outline document.
package frontmatter

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-lists/pkg/parser"
)

const delimiter = "---"

var frontmatterPattern = regexp.MustCompile(`(?s)^---\r?\n(.*?)\r?\n---[ \t]*(?:\r?\n|$)`)

// Frontmatter holds the document-level settings a list file may declare.
type Frontmatter struct {
	Title      string   `yaml:"title,omitempty"`
	Tags       []string `yaml:"tags,flow,omitempty"`
	Priorities []string `yaml:"priorities,flow,omitempty"`
	Filter     string   `yaml:"filter,omitempty"`
	Sort       string   `yaml:"sort,omitempty"`
	Group      string   `yaml:"group,omitempty"`
}

// Parse extracts frontmatter from content and returns it with the remaining
// body. Content without frontmatter yields a nil Frontmatter and no error.
func Parse(content string) (*Frontmatter, string, error) {
	loc := frontmatterPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return nil, content, nil
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(content[loc[2]:loc[3]]), &fm); err != nil {
		return nil, content, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	if fm.Tags == nil {
		fm.Tags = []string{}
	}
	return &fm, content[loc[1]:], nil
}

// FromDocument parses the frontmatter at the top of doc, if any.
func FromDocument(doc parser.Document) (*Frontmatter, error) {
	if doc.LineCount() == 0 || strings.TrimSpace(doc.LineAt(0).Text) != delimiter {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString(delimiter + "\n")
	for i := 1; i < doc.LineCount(); i++ {
		text := doc.LineAt(i).Text
		sb.WriteString(text + "\n")
		if strings.TrimSpace(text) == delimiter {
			fm, _, err := Parse(sb.String())
			return fm, err
		}
	}
	return nil, nil
}

// Lines reports how many leading lines of doc the frontmatter occupies,
// delimiters included, or 0 when there is none.
func Lines(doc parser.Document) int {
	if doc.LineCount() == 0 || strings.TrimSpace(doc.LineAt(0).Text) != delimiter {
		return 0
	}
	for i := 1; i < doc.LineCount(); i++ {
		if strings.TrimSpace(doc.LineAt(i).Text) == delimiter {
			return i + 1
		}
	}
	return 0
}

// HasPriorities reports whether the frontmatter overrides the priority list.
func (fm *Frontmatter) HasPriorities() bool {
	return fm != nil && len(fm.Priorities) > 0
}
