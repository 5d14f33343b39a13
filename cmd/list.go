package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-lists/pkg/models"
	"github.com/mattsolo1/grove-lists/pkg/service"
)

// viewFlags are the filter/sort/group flags shared by list, tree and tui.
type viewFlags struct {
	filter  string
	sort    string
	group   string
	keyword string
}

func (f *viewFlags) register(cmd *cobra.Command, withGroup bool) {
	cmd.Flags().StringVarP(&f.filter, "filter", "f", "", "Completion filter: all, incomplete, completed")
	cmd.Flags().StringVarP(&f.sort, "sort", "s", "", "Sort mode: none, alpha, completion, priority")
	if withGroup {
		cmd.Flags().StringVarP(&f.group, "group", "g", "", "Group mode: none, priority, project, tag")
	}
	cmd.Flags().StringVarP(&f.keyword, "keyword", "k", "", "Only show items containing this keyword")
}

// apply loads path and configures the session from its frontmatter and
// then from any flags that were set.
func (f *viewFlags) apply(cmd *cobra.Command, s *service.Service, path string) (*service.List, error) {
	list, err := s.Load(path)
	if err != nil {
		return nil, err
	}
	s.AdoptDefaults(list)

	if cmd.Flags().Changed("filter") {
		s.Session.SetFilterMode(models.FilterMode(f.filter))
	}
	if cmd.Flags().Changed("sort") {
		s.Session.SetSortMode(models.SortMode(f.sort))
	}
	if cmd.Flags().Changed("group") {
		s.Session.SetGroupMode(models.GroupMode(f.group))
	}
	s.Session.SetKeyword(f.keyword)
	return list, nil
}

func NewListCmd(svc **service.Service) *cobra.Command {
	var (
		flags    viewFlags
		listJSON bool
	)

	cmd := &cobra.Command{
		Use:     "list <file>",
		Short:   "List the items of an outline or task file",
		Aliases: []string{"ls"},
		Long: `Parse a task, markdown or plain-text list and print its items.

Examples:
  lists list todo.tasks                      # All items in file order
  lists list todo.tasks -f incomplete -s priority
  lists list notes.md -g tag                 # One section per tag
  lists list log.txt -k deploy --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			list, err := flags.apply(cmd, s, args[0])
			if err != nil {
				return err
			}

			groups := s.View(list)
			if listJSON {
				return outputJSON(cmd.OutOrStdout(), groups)
			}

			if len(groups.Flatten()) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No items found")
				return nil
			}
			printGroups(cmd.OutOrStdout(), groups, s.Session.GroupMode())
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&listJSON, "json", false, "Output groups as JSON")
	return cmd
}
