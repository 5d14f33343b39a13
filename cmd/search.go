package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-lists/pkg/models"
	"github.com/mattsolo1/grove-lists/pkg/parser"
	"github.com/mattsolo1/grove-lists/pkg/search"
	"github.com/mattsolo1/grove-lists/pkg/service"
)

func NewSearchCmd(svc **service.Service) *cobra.Command {
	var searchJSON bool

	cmd := &cobra.Command{
		Use:   "search <file> <keyword>",
		Short: "Find lines containing a keyword",
		Long: `Case-insensitive search over every line of a file. Matches are
highlighted as »match«.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := (*svc).Open(args[0])
			if err != nil {
				return err
			}

			picks := search.KeywordMatches(doc, strings.Join(args[1:], " "))
			if searchJSON {
				return outputJSON(cmd.OutOrStdout(), picks)
			}
			if len(picks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matches found")
				return nil
			}
			printPicks(cmd.OutOrStdout(), picks)
			return nil
		},
	}

	cmd.Flags().BoolVar(&searchJSON, "json", false, "Output matches as JSON")
	return cmd
}

func NewHeadingsCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "headings <file>",
		Short: "List the markdown headings of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := (*svc).Open(args[0])
			if err != nil {
				return err
			}

			picks := search.HeadingPicks(doc)
			if len(picks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No headings found")
				return nil
			}
			printPicks(cmd.OutOrStdout(), picks)
			return nil
		},
	}
}

func NewPickCmd(svc **service.Service) *cobra.Command {
	var priorities []string

	cmd := &cobra.Command{
		Use:   "pick <file>",
		Short: "List items with the given priorities",
		Long: `List items whose priority is one of --priority. Use "No Priority" to
include items without a marker. Without --priority every configured
priority is included.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			list, err := s.Load(args[0])
			if err != nil {
				return err
			}

			wanted := priorities
			if len(wanted) == 0 {
				wanted = append(s.Priorities(list), search.NoPriority)
			}

			picks := search.PriorityPicks(list.Result, wanted)
			if len(picks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No items with the selected priorities")
				return nil
			}
			printPicks(cmd.OutOrStdout(), picks)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&priorities, "priority", "p", nil, "Priority to include (repeatable)")
	return cmd
}

func headingItems(list *service.List) []models.Item {
	return parser.Headings(list.Document)
}
