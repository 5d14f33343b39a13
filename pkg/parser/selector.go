package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Format extends a variant with extra extensions and base-name glob patterns.
type Format struct {
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
	Patterns   []string `mapstructure:"patterns" yaml:"patterns"`
}

// Selector maps file names to a parser Kind.
type Selector struct {
	extensions map[Kind][]string
	patterns   map[Kind][]glob.Glob
}

// NewSelector builds a selector from the built-in extension table plus the
// formats keyed by variant name ("tasks", "markdown", "plain").
func NewSelector(formats map[string]Format) (*Selector, error) {
	s := &Selector{
		extensions: make(map[Kind][]string, len(Kinds)),
		patterns:   make(map[Kind][]glob.Glob, len(Kinds)),
	}
	for _, k := range Kinds {
		s.extensions[k] = k.Extensions()
	}

	for name, f := range formats {
		k, ok := ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown format %q", name)
		}
		for _, ext := range f.Extensions {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			s.extensions[k] = append(s.extensions[k], ext)
		}
		for _, p := range f.Patterns {
			g, err := glob.Compile(strings.ToLower(p))
			if err != nil {
				return nil, fmt.Errorf("format %s: invalid pattern %q: %w", name, p, err)
			}
			s.patterns[k] = append(s.patterns[k], g)
		}
	}
	return s, nil
}

// DefaultSelector returns a selector using only the built-in extensions.
func DefaultSelector() *Selector {
	s, _ := NewSelector(nil)
	return s
}

// Select returns the first variant, in Kinds order, whose extension set or
// patterns match fileName case-insensitively. It returns KindUnsupported
// when nothing matches.
func (s *Selector) Select(fileName string) Kind {
	base := strings.ToLower(filepath.Base(fileName))
	ext := filepath.Ext(base)

	for _, k := range Kinds {
		if ext != "" {
			for _, e := range s.extensions[k] {
				if e == ext {
					return k
				}
			}
		}
		for _, g := range s.patterns[k] {
			if g.Match(base) {
				return k
			}
		}
	}
	return KindUnsupported
}

// Supported reports whether any variant handles fileName.
func (s *Selector) Supported(fileName string) bool {
	return s.Select(fileName) != KindUnsupported
}
