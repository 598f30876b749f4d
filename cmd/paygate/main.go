package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/paygate/internal/interfaces/cli/migrate"
	"github.com/orris-inc/paygate/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paygate",
		Short: "Paygate - CCAvenue payment gateway service",
		Long:  `Paygate integrates an order system with the CCAvenue payment gateway, handling encrypted payment requests, callbacks and settlement records.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
