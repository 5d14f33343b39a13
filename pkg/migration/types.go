// Package migration rewrites list files into a canonical layout: two spaces
// per indentation level, "[ ]"/"[x]" checkboxes and no trailing whitespace.
// Fixes never change the level, line number or completion state of any item.
package migration

import (
	"time"
)

// Issue types reported by the analyzer.
const (
	IssueOddIndent          = "odd_indent"
	IssueTabIndent          = "tab_indent"
	IssueMalformedCheckbox  = "malformed_checkbox"
	IssueTrailingWhitespace = "trailing_whitespace"
	IssueUnknownPriority    = "unknown_priority"
)

type MigrationIssue struct {
	Type        string
	Description string
	Line        int // zero-based
	Current     string
	Expected    string
	Fixable     bool
}

type MigrationReport struct {
	TotalFiles       int
	ProcessedFiles   int
	MigratedFiles    int
	SkippedFiles     int
	FailedFiles      int
	IssuesFound      int
	IssuesFixed      int
	ProcessingErrors map[string]error
	StartTime        time.Time
	EndTime          time.Time
}

type MigrationOptions struct {
	DryRun   bool
	Verbose  bool
	NoBackup bool
}

func NewMigrationReport() *MigrationReport {
	return &MigrationReport{
		ProcessingErrors: make(map[string]error),
		StartTime:        time.Now(),
	}
}

func (r *MigrationReport) AddError(file string, err error) {
	r.ProcessingErrors[file] = err
	r.FailedFiles++
}

func (r *MigrationReport) Complete() {
	r.EndTime = time.Now()
}

func (r *MigrationReport) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
