package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mattsolo1/grove-lists/pkg/models"
	"github.com/mattsolo1/grove-lists/pkg/search"
	"github.com/mattsolo1/grove-lists/pkg/view"
)

var titleCaser = cases.Title(language.English)

// parseLineArg converts a 1-based line argument to a zero-based index.
func parseLineArg(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid line %q: want a positive line number", arg)
	}
	return n - 1, nil
}

func outputJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printGroups(w io.Writer, groups view.Groups, mode models.GroupMode) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, g := range groups {
		if mode != models.GroupNone {
			if i > 0 {
				fmt.Fprintln(tw)
			}
			fmt.Fprintf(tw, "%s: %s (%d)\n", titleCaser.String(string(mode)), g.Label, len(g.Items))
		}
		for _, item := range g.Items {
			printItem(tw, item)
		}
	}
	tw.Flush()
}

func printItem(w io.Writer, item models.Item) {
	var meta []string
	if item.Priority != "" {
		meta = append(meta, "!"+item.Priority)
	}
	if item.Project != "" {
		meta = append(meta, "@"+item.Project)
	}
	if item.Timestamp != nil {
		meta = append(meta, item.Timestamp.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(w, "%d\t%s\t%s\n", item.LineNumber+1, strings.TrimSpace(item.Text), strings.Join(meta, " "))
}

func printPicks(w io.Writer, picks []search.Pick) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range picks {
		fmt.Fprintf(tw, "%s\t%s\n", p.Detail, p.Label)
	}
	tw.Flush()
}
