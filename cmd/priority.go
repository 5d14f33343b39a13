package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-lists/pkg/edit"
	"github.com/mattsolo1/grove-lists/pkg/service"
)

func NewPriorityCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "priority",
		Short: "Change the !priority marker on a line",
		Long: `Move a line's priority along the configured list, or add one.

Examples:
  lists priority up todo.tasks 3
  lists priority down todo.tasks 3
  lists priority set todo.tasks 5 high`,
	}

	cmd.AddCommand(newPriorityStepCmd(svc, edit.Up))
	cmd.AddCommand(newPriorityStepCmd(svc, edit.Down))
	cmd.AddCommand(newPrioritySetCmd(svc))
	return cmd
}

func newPriorityStepCmd(svc **service.Service, dir edit.Direction) *cobra.Command {
	short := "Raise the priority of a line"
	if dir == edit.Down {
		short = "Lower the priority of a line"
	}

	return &cobra.Command{
		Use:   dir.String() + " <file> <line>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := parseLineArg(args[1])
			if err != nil {
				return err
			}

			_, name, err := (*svc).ChangePriority(args[0], line, dir)
			out := cmd.OutOrStdout()
			var unknown *edit.UnknownPriorityError
			switch {
			case errors.Is(err, edit.ErrAlreadyHighest):
				fmt.Fprintln(out, "Already at highest priority")
			case errors.Is(err, edit.ErrAlreadyLowest):
				fmt.Fprintln(out, "Already at lowest priority")
			case errors.Is(err, edit.ErrNoPriority):
				fmt.Fprintf(out, "No priority marker on line %d; use 'lists priority set' to add one\n", line+1)
			case errors.As(err, &unknown):
				fmt.Fprintf(out, "Current priority %q not found in configured priorities\n", unknown.Name)
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "Priority changed to %s\n", name)
			}
			return nil
		},
	}
}

func newPrioritySetCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <line> <priority>",
		Short: "Add a priority marker to a line without one",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := parseLineArg(args[1])
			if err != nil {
				return err
			}
			if _, err := (*svc).SetPriority(args[0], line, args[2]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Priority set to %s\n", args[2])
			return nil
		},
	}
}
