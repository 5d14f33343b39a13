package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltree "github.com/charmbracelet/lipgloss/tree"
	"github.com/mattsolo1/grove-core/tui/theme"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-lists/pkg/service"
	"github.com/mattsolo1/grove-lists/pkg/tree"
)

var (
	completedStyle = theme.DefaultTheme.Muted.Strikethrough(true)
	lineNumStyle   = theme.DefaultTheme.Muted
	enumStyle      = lipgloss.NewStyle().Foreground(theme.DefaultTheme.Colors.Blue)
)

func NewTreeCmd(svc **service.Service) *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the outline hierarchy of a file",
		Long: `Rebuild the parent/child outline from indentation and print it as a tree.
Headings are used instead of list items when --headings is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			list, err := flags.apply(cmd, s, args[0])
			if err != nil {
				return err
			}

			idx := s.Outline(list)
			if headings, _ := cmd.Flags().GetBool("headings"); headings {
				idx = tree.NewIndex(headingItems(list))
			}
			if idx.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No items found")
				return nil
			}
			renderForest(cmd.OutOrStdout(), idx.Forest())
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().Bool("headings", false, "Build the tree from markdown headings")
	return cmd
}

func renderForest(w io.Writer, forest []*tree.Node) {
	root := ltree.New().
		Enumerator(ltree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)
	for _, n := range forest {
		root.Child(buildBranch(n))
	}
	fmt.Fprintln(w, root.String())
}

func buildBranch(n *tree.Node) any {
	label := nodeLabel(n)
	if n.IsLeaf() {
		return label
	}
	branch := ltree.Root(label).
		Enumerator(ltree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)
	for _, c := range n.Children {
		branch.Child(buildBranch(c))
	}
	return branch
}

func nodeLabel(n *tree.Node) string {
	text := strings.TrimSpace(n.Item.Text)
	if n.Item.Completed {
		text = completedStyle.Render(text)
	}
	return lineNumStyle.Render(fmt.Sprintf("%d", n.Item.LineNumber+1)) + " " + text
}
