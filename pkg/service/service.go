package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-lists/pkg/edit"
	"github.com/mattsolo1/grove-lists/pkg/frontmatter"
	"github.com/mattsolo1/grove-lists/pkg/models"
	"github.com/mattsolo1/grove-lists/pkg/parser"
	"github.com/mattsolo1/grove-lists/pkg/tree"
	"github.com/mattsolo1/grove-lists/pkg/view"
)

var (
	// ErrUnsupported is returned for files no line parser handles.
	ErrUnsupported = errors.New("unsupported file type")
	// ErrLineOutOfRange is returned when a rewrite targets a missing line.
	ErrLineOutOfRange = errors.New("line out of range")
)

// Config holds service configuration
type Config struct {
	Priorities    []string
	Formats       map[string]parser.Format
	DefaultFilter string
	DefaultSort   string
	DefaultGroup  string
}

// Service reads list files, parses them and applies line edits on disk.
type Service struct {
	Config   *Config
	Logger   *logrus.Entry
	Session  *view.Session
	selector *parser.Selector
}

// List is one parsed file. It is replaced, never updated, when the file changes.
type List struct {
	Path        string
	Kind        parser.Kind
	Document    *parser.TextDocument
	Result      *models.ParseResult
	Frontmatter *frontmatter.Frontmatter
}

// New creates a service. A nil logger discards log output.
func New(config *Config, logger *logrus.Entry) (*Service, error) {
	if config == nil {
		config = &Config{}
	}
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = logrus.NewEntry(l)
	}

	selector, err := parser.NewSelector(config.Formats)
	if err != nil {
		return nil, fmt.Errorf("configure formats: %w", err)
	}

	session := view.NewSession(config.Priorities)
	session.SetFilterMode(models.FilterMode(config.DefaultFilter))
	session.SetSortMode(models.SortMode(config.DefaultSort))
	session.SetGroupMode(models.GroupMode(config.DefaultGroup))

	return &Service{
		Config:   config,
		Logger:   logger.WithField("component", "service"),
		Session:  session,
		selector: selector,
	}, nil
}

// Kind returns the parser variant for path, or KindUnsupported.
func (s *Service) Kind(path string) parser.Kind {
	return s.selector.Select(path)
}

// Open reads path into a document.
func (s *Service) Open(path string) (*parser.TextDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parser.NewDocument(filepath.Base(path), string(content)), nil
}

// Load reads and parses path.
func (s *Service) Load(path string) (*List, error) {
	kind := s.Kind(path)
	if kind == parser.KindUnsupported {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}

	doc, err := s.Open(path)
	if err != nil {
		return nil, err
	}

	list := &List{
		Path:     path,
		Kind:     kind,
		Document: doc,
		Result:   kind.Parse(doc),
	}

	fm, err := frontmatter.FromDocument(doc)
	if err != nil {
		s.Logger.WithError(err).WithField("path", path).Debug("Ignoring malformed frontmatter")
	}
	list.Frontmatter = fm

	s.Logger.WithFields(logrus.Fields{
		"path":  path,
		"kind":  kind.String(),
		"items": len(list.Result.Items),
		"lines": list.Result.LineCount,
	}).Debug("Parsed list")

	if list.Result.ExceedsLimit {
		s.Logger.Warnf("file has %d lines (limit: ~%d); consider splitting by section/project",
			list.Result.LineCount, models.LineLimit)
	}
	return list, nil
}

// Priorities returns the priority order in effect for list, lowest first.
func (s *Service) Priorities(list *List) []string {
	if list != nil && list.Frontmatter.HasPriorities() {
		return models.NormalizePriorities(list.Frontmatter.Priorities)
	}
	return s.Session.Priorities()
}

// AdoptDefaults copies view modes declared in the list's frontmatter into
// the session.
func (s *Service) AdoptDefaults(list *List) {
	fm := list.Frontmatter
	if fm == nil {
		return
	}
	if fm.Filter != "" {
		s.Session.SetFilterMode(models.FilterMode(fm.Filter))
	}
	if fm.Sort != "" {
		s.Session.SetSortMode(models.SortMode(fm.Sort))
	}
	if fm.Group != "" {
		s.Session.SetGroupMode(models.GroupMode(fm.Group))
	}
}

// Options returns the session's view options for list.
func (s *Service) Options(list *List) view.Options {
	opts := s.Session.Options()
	opts.Priorities = s.Priorities(list)
	return opts
}

// View filters, sorts and groups the items of list with the session state.
func (s *Service) View(list *List) view.Groups {
	return view.Transform(list.Result.Items, s.Options(list))
}

// Outline indexes the filtered items of list in line order for tree display.
func (s *Service) Outline(list *List) *tree.Index {
	opts := s.Session.Options()
	return tree.NewIndex(view.Filter(list.Result.Items, opts.Filter, opts.Keyword))
}

// ToggleComplete flips the checkbox on the zero-based line of path.
func (s *Service) ToggleComplete(path string, line int) (*List, error) {
	err := s.rewriteLine(path, line, func(text string) (string, error) {
		return edit.ToggleComplete(text), nil
	})
	if err != nil {
		return nil, err
	}
	return s.Load(path)
}

// ChangePriority moves the priority marker on line one step in dir and
// returns the reloaded list with the new priority name.
func (s *Service) ChangePriority(path string, line int, dir edit.Direction) (*List, string, error) {
	list, err := s.Load(path)
	if err != nil {
		return nil, "", err
	}
	priorities := s.Priorities(list)

	var name string
	err = s.rewriteLine(path, line, func(text string) (string, error) {
		var out string
		var err error
		out, name, err = edit.ChangePriority(text, dir, priorities)
		return out, err
	})
	if err != nil {
		return nil, "", err
	}

	s.Logger.WithFields(logrus.Fields{"path": path, "line": line, "priority": name}).Debug("Changed priority")
	list, err = s.Load(path)
	return list, name, err
}

// SetPriority appends a priority marker to line. The name must be one of
// the priorities in effect for the file.
func (s *Service) SetPriority(path string, line int, name string) (*List, error) {
	list, err := s.Load(path)
	if err != nil {
		return nil, err
	}
	if !containsFold(s.Priorities(list), name) {
		return nil, &edit.UnknownPriorityError{Name: name}
	}

	err = s.rewriteLine(path, line, func(text string) (string, error) {
		if _, ok := edit.Priority(text); ok {
			return "", fmt.Errorf("line %d already has a priority marker", line+1)
		}
		return edit.SetPriority(text, name), nil
	})
	if err != nil {
		return nil, err
	}
	return s.Load(path)
}

// rewriteLine replaces one line of path with fn's result, preserving the
// file's line endings and permissions.
func (s *Service) rewriteLine(path string, line int, fn func(string) (string, error)) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	lines := strings.Split(string(content), "\n")
	if line < 0 || line >= len(lines) {
		return fmt.Errorf("line %d of %s: %w", line+1, path, ErrLineOutOfRange)
	}

	text, hadCR := strings.CutSuffix(lines[line], "\r")
	updated, err := fn(text)
	if err != nil {
		return err
	}
	if hadCR {
		updated += "\r"
	}
	lines[line] = updated

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
