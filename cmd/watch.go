package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-lists/pkg/service"
)

func NewWatchCmd(svc **service.Service) *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-print a list every time the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			list, err := flags.apply(cmd, s, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSnapshot(out, s, list)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return s.Watch(ctx, args[0], func(list *service.List, err error) {
				if err != nil {
					fmt.Fprintf(out, "reload failed: %v\n", err)
					return
				}
				printSnapshot(out, s, list)
			})
		},
	}

	flags.register(cmd, true)
	return cmd
}

func printSnapshot(w io.Writer, s *service.Service, list *service.List) {
	done := 0
	for _, it := range list.Result.Items {
		if it.Completed {
			done++
		}
	}
	fmt.Fprintf(w, "\n[%s] %d items, %d completed\n", time.Now().Format("15:04:05"), len(list.Result.Items), done)
	if len(list.Result.Items) == 0 {
		fmt.Fprintln(w, "No items found")
		return
	}
	printGroups(w, s.View(list), s.Session.GroupMode())
}
