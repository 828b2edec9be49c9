package main

import (
	"os"

	"github.com/spf13/cobra"

	"ticketdesk/internal/interfaces/cli/migrate"
	"ticketdesk/internal/interfaces/cli/server"
)

// @title ticketdesk API
// @version 1.0
// @description Issue ticketing backend: users, tickets and comments.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "ticketdesk",
		Short: "ticketdesk - issue ticketing backend",
		Long:  `ticketdesk serves users, tickets and comments over HTTP and manages its database schema.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
