package main

import (
	"fmt"

	"github.com/jacksmith/pcat/internal/cli"
	"github.com/jacksmith/pcat/internal/storage"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration pcat is using after merging .pcatconfig.yaml,
PCAT_* environment variables and command-line flags.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	fmt.Printf("Config file:  %s\n", storage.ConfigPath("."))
	fmt.Printf("Catalog file: %s\n", a.path)
	fmt.Printf("Currency:     %s\n", a.cfg.Currency)
	fmt.Printf("No color:     %t\n", a.cfg.NoColor)
	fmt.Printf("Color output: %t\n", cli.ColorEnabled())

	help, err := storage.EnvHelp()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(help)
	return nil
}
