package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-lists/internal/tui/outline"
	"github.com/mattsolo1/grove-lists/pkg/service"
)

// NewTuiCmd creates the `lists tui` command.
func NewTuiCmd(svc **service.Service) *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "tui <file>",
		Short: "Browse a list file interactively",
		Long: `Launch an interactive outline of a list file. Nodes expand on demand,
and completion and priority edits are written straight back to the file.
The view reloads when the file changes on disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("TUI mode requires an interactive terminal")
			}

			s := *svc
			path := args[0]
			if _, err := flags.apply(cmd, s, path); err != nil {
				return err
			}

			p := tea.NewProgram(outline.New(s, path), tea.WithAltScreen())

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				err := s.Watch(ctx, path, func(list *service.List, err error) {
					p.Send(outline.ReloadedMsg{List: list, Err: err})
				})
				if err != nil {
					s.Logger.WithError(err).Warn("File watching disabled")
				}
			}()

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}

	flags.register(cmd, true)
	return cmd
}
