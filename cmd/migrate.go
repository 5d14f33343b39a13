package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-lists/pkg/migration"
	"github.com/mattsolo1/grove-lists/pkg/service"
)

func NewMigrateCmd(svc **service.Service) *cobra.Command {
	var (
		migrateDryRun     bool
		migrateVerbose    bool
		migrateShowReport bool
		migrateNoBackup   bool
	)

	cmd := &cobra.Command{
		Use:   "migrate <file>...",
		Short: "Normalize indentation and checkboxes in list files",
		Long: `Rewrite list files into a canonical layout: two spaces per indentation
level, "[ ]" and "[x]" checkboxes, and no trailing whitespace. Item levels,
line numbers and completion state are never changed: a checkbox such as
"[ x]" that the file's format reads as unchecked is reported, not rewritten.
Priority markers missing from the configured list are reported but left alone.

Examples:
  lists migrate --dry-run todo.tasks     # Preview issues
  lists migrate --no-backup notes/*.md   # Fix in place without .bak copies`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			out := cmd.OutOrStdout()

			options := migration.MigrationOptions{
				DryRun:   migrateDryRun,
				Verbose:  migrateVerbose || migrateDryRun,
				NoBackup: migrateNoBackup,
			}
			m := migration.NewMigrator(options, s.Kind, s.Session.Priorities(), out, s.Logger)

			var firstErr error
			for _, path := range args {
				if _, err := m.MigrateFile(path); err != nil && firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", path, err)
				}
			}
			m.Complete()

			if migrateShowReport {
				printMigrationReport(out, m.GetReport(), migrateDryRun)
			}
			return firstErr
		},
	}

	cmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "Show what would be changed without modifying")
	cmd.Flags().BoolVar(&migrateVerbose, "details", false, "List every issue found")
	cmd.Flags().BoolVar(&migrateShowReport, "report", true, "Show migration report")
	cmd.Flags().BoolVar(&migrateNoBackup, "no-backup", false, "Don't create backup files")
	return cmd
}

func printMigrationReport(w io.Writer, report *migration.MigrationReport, dryRun bool) {
	fmt.Fprintln(w)
	if dryRun {
		fmt.Fprintln(w, "Migration report (dry run)")
	} else {
		fmt.Fprintln(w, "Migration report")
	}
	fmt.Fprintf(w, "  Files processed: %d\n", report.ProcessedFiles)
	fmt.Fprintf(w, "  Files migrated:  %d\n", report.MigratedFiles)
	fmt.Fprintf(w, "  Files skipped:   %d\n", report.SkippedFiles)
	fmt.Fprintf(w, "  Issues found:    %d\n", report.IssuesFound)
	fmt.Fprintf(w, "  Issues fixed:    %d\n", report.IssuesFixed)
	if report.FailedFiles > 0 {
		fmt.Fprintf(w, "  Failed:          %d\n", report.FailedFiles)
		for file, err := range report.ProcessingErrors {
			fmt.Fprintf(w, "    %s: %v\n", file, err)
		}
	}
	fmt.Fprintf(w, "  Duration:        %s\n", report.Duration().Round(time.Millisecond))
}
