package main

import (
	"os"

	"github.com/spf13/cobra"

	"flowdesk/internal/interfaces/cli/migrate"
	"flowdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flowdesk",
		Short: "FlowDesk - a ticket management service",
		Long:  `FlowDesk is a ticket management service with tagging, comments and realtime update streaming.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
