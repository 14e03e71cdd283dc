package main

import (
	"os"

	"github.com/spf13/cobra"

	"oficina/internal/interfaces/cli/admin"
	"oficina/internal/interfaces/cli/configcmd"
	"oficina/internal/interfaces/cli/migrate"
	"oficina/internal/interfaces/cli/server"
	"oficina/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "oficina",
		Short:   "Oficina - repair shop administration backend",
		Long:    `Oficina serves the repair shop admin API and ships the migration and account tools it needs.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
		configcmd.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
