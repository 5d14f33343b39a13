package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-lists/pkg/service"
)

func NewToggleCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <file> <line>",
		Short: "Toggle the completion checkbox on a line",
		Long: `Flip "[ ]" to "[x]" or back on the given 1-based line. A line without a
checkbox gets a checked one after its list marker.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := parseLineArg(args[1])
			if err != nil {
				return err
			}

			list, err := (*svc).ToggleComplete(args[0], line)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), list.Document.LineAt(line).Text)
			return nil
		},
	}
}
