package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-lists/cmd/config"
	"github.com/mattsolo1/grove-lists/pkg/service"
)

// NewRootCmd assembles the lists command tree. The service is created once
// in PersistentPreRunE and shared by every subcommand through svc.
func NewRootCmd(svc **service.Service) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lists",
		Short:         "Parse, filter and browse outline and task files",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if *svc != nil {
				return nil
			}
			config.InitConfig()
			s, err := config.InitService()
			if err != nil {
				return err
			}
			*svc = s
			return nil
		},
	}
	config.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(NewListCmd(svc))
	rootCmd.AddCommand(NewTreeCmd(svc))
	rootCmd.AddCommand(NewToggleCmd(svc))
	rootCmd.AddCommand(NewPriorityCmd(svc))
	rootCmd.AddCommand(NewSearchCmd(svc))
	rootCmd.AddCommand(NewHeadingsCmd(svc))
	rootCmd.AddCommand(NewPickCmd(svc))
	rootCmd.AddCommand(NewWatchCmd(svc))
	rootCmd.AddCommand(NewMigrateCmd(svc))
	rootCmd.AddCommand(NewTuiCmd(svc))
	rootCmd.AddCommand(NewVersionCmd())
	return rootCmd
}
