package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-lists/pkg/parser"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantFM   *Frontmatter
		wantBody string
		wantErr  bool
	}{
		{
			name:    "valid frontmatter",
			content: "---\ntitle: Sprint\ntags: [work, q3]\npriorities: [p3, p2, p1]\n---\n- [ ] ship !p1\n",
			wantFM: &Frontmatter{
				Title:      "Sprint",
				Tags:       []string{"work", "q3"},
				Priorities: []string{"p3", "p2", "p1"},
			},
			wantBody: "- [ ] ship !p1\n",
		},
		{
			name:     "no frontmatter",
			content:  "- [ ] task\n---\n",
			wantBody: "- [ ] task\n---\n",
		},
		{
			name:    "view defaults and crlf",
			content: "---\r\nsort: priority\r\ngroup: tag\r\n---",
			wantFM: &Frontmatter{
				Tags:  []string{},
				Sort:  "priority",
				Group: "tag",
			},
			wantBody: "",
		},
		{
			name:     "invalid yaml",
			content:  "---\ntitle: [broken\n---\nbody",
			wantBody: "---\ntitle: [broken\n---\nbody",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, err := Parse(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantFM, fm)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestFromDocument(t *testing.T) {
	doc := parser.NewDocument("plan.tasks", "---\npriorities: [later, soon, now]\n---\n- [ ] item !now")

	fm, err := FromDocument(doc)
	require.NoError(t, err)
	require.NotNil(t, fm)
	assert.True(t, fm.HasPriorities())
	assert.Equal(t, []string{"later", "soon", "now"}, fm.Priorities)
	assert.Equal(t, 3, Lines(doc))
}

func TestFromDocumentWithout(t *testing.T) {
	for name, content := range map[string]string{
		"empty":        "",
		"no delimiter": "- [ ] item",
		"unterminated": "---\ntitle: x\n- [ ] item",
	} {
		t.Run(name, func(t *testing.T) {
			doc := parser.NewDocument("a.tasks", content)
			fm, err := FromDocument(doc)
			assert.NoError(t, err)
			assert.Nil(t, fm)
			assert.False(t, fm.HasPriorities())
			assert.Equal(t, 0, Lines(doc))
		})
	}
}
