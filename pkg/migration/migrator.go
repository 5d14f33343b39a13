package migration

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-lists/pkg/parser"
)

type Migrator struct {
	options    MigrationOptions
	kindOf     func(path string) parser.Kind
	priorities []string
	report     *MigrationReport
	output   io.Writer
	logger   *logrus.Entry
}

// NewMigrator returns a migrator that picks each file's format with kindOf,
// or with the built-in extension table when kindOf is nil.
func NewMigrator(options MigrationOptions, kindOf func(path string) parser.Kind, priorities []string, output io.Writer, logger *logrus.Entry) *Migrator {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = logrus.NewEntry(l)
	}
	if output == nil {
		output = io.Discard
	}
	if kindOf == nil {
		kindOf = parser.DefaultSelector().Select
	}
	return &Migrator{
		options:    options,
		kindOf:     kindOf,
		priorities: priorities,
		report:     NewMigrationReport(),
		output:     output,
		logger:     logger.WithField("sub-component", "migrator"),
	}
}

// MigrateFile analyzes filePath and, unless this is a dry run, rewrites it
// with every fixable issue resolved. Line endings are preserved.
func (m *Migrator) MigrateFile(filePath string) ([]MigrationIssue, error) {
	m.report.TotalFiles++
	m.report.ProcessedFiles++

	content, err := os.ReadFile(filePath)
	if err != nil {
		m.report.AddError(filePath, err)
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	analyzer := NewAnalyzer(m.kindOf(filePath), m.priorities)
	issues := analyzer.AnalyzeDocument(parser.NewDocument(filePath, string(content)))
	m.report.IssuesFound += len(issues)
	if len(issues) == 0 {
		m.report.SkippedFiles++
		m.logger.WithField("path", filePath).Debug("No migration issues found, skipping.")
		return issues, nil
	}

	if m.options.Verbose {
		fmt.Fprintf(m.output, "\n%s:\n", filePath)
		for _, issue := range issues {
			fmt.Fprintf(m.output, "  %d: %s: %s\n", issue.Line+1, issue.Type, issue.Description)
		}
	}

	fixable := 0
	for _, issue := range issues {
		if issue.Fixable {
			fixable++
		}
	}
	if fixable == 0 || m.options.DryRun {
		if fixable == 0 {
			m.report.SkippedFiles++
		}
		return issues, nil
	}

	if !m.options.NoBackup {
		if err := copyFile(filePath, filePath+".bak"); err != nil {
			m.report.AddError(filePath, err)
			return issues, fmt.Errorf("failed to write backup: %w", err)
		}
	}

	if err := writeFixed(analyzer, filePath, string(content)); err != nil {
		m.report.AddError(filePath, err)
		return issues, fmt.Errorf("failed to apply fixes: %w", err)
	}

	m.report.MigratedFiles++
	m.report.IssuesFixed += fixable
	m.logger.WithFields(logrus.Fields{"path": filePath, "fixed": fixable}).Debug("Migrated file")
	return issues, nil
}

func writeFixed(analyzer *Analyzer, filePath, content string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return err
	}

	lines := strings.Split(content, "\n")
	for i, l := range lines {
		text, hadCR := strings.CutSuffix(l, "\r")
		lines[i] = analyzer.Fix(text)
		if hadCR {
			lines[i] += "\r"
		}
	}
	return os.WriteFile(filePath, []byte(strings.Join(lines, "\n")), info.Mode().Perm())
}

func (m *Migrator) GetReport() *MigrationReport {
	return m.report
}

func (m *Migrator) Complete() {
	m.report.Complete()
}

func copyFile(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, input, 0644)
}
