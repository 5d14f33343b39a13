package main

import (
	"os"

	"github.com/mattsolo1/grove-lists/cmd"
	"github.com/mattsolo1/grove-lists/pkg/service"
)

var svc *service.Service

func main() {
	rootCmd := cmd.NewRootCmd(&svc)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
