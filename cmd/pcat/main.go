// Package main is the entry point for the pcat CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jacksmith/pcat/internal/catalog"
	"github.com/jacksmith/pcat/internal/cli"
	"github.com/jacksmith/pcat/internal/menu"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pcat",
	Short: "pcat - a catalog of web and mobile projects",
	Long: `pcat keeps a catalog of development projects with their estimated hours,
task lists and cost calculations, saved to an XML, YAML or SQLite file.

Run without a subcommand to open the interactive menu. The subcommands
load the catalog file, make one change and save it again.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

var (
	rootFile    string
	rootVerbose bool
	rootNoColor bool
	rootLoad    bool
)

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("pcat version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&rootFile, "file", "f", "", "catalog file (default from .pcatconfig.yaml or projects.xml)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&rootLoad, "load", false, "load the catalog file before showing the menu")
}

func runMenu(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := context.Background()
	c := &catalog.Catalog{}
	if rootLoad {
		c, err = a.loadCatalog(ctx)
		if err != nil {
			return err
		}
	}

	session := menu.NewSession(os.Stdin, os.Stdout, c, a.store, menu.Options{
		Path:     a.path,
		Currency: a.cfg.Currency,
		Logger:   a.logger,
	})
	return session.Run(ctx)
}
