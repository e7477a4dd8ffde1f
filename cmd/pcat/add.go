package main

import (
	"context"
	"fmt"

	"github.com/jacksmith/pcat/internal/cli"
	"github.com/jacksmith/pcat/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new project",
	Long: `Add a project to the end of the catalog and save the file.

Examples:
  pcat add "Company site" --hours 40
  pcat add "Field app" --hours 60 --kind mobile`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addHours string
	addKind  string
)

func init() {
	addCmd.Flags().StringVar(&addHours, "hours", "0", "estimated hours")
	addCmd.Flags().StringVarP(&addKind, "kind", "k", "web", "project kind (web or mobile)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := args[0]

	hours, err := cli.ParseHours(addHours)
	if err != nil {
		return err
	}
	kind, err := model.ParseKind(addKind)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := context.Background()
	c, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}

	p, err := model.New(kind, title, hours)
	if err != nil {
		return err
	}
	c.Add(p)

	if err := a.saveCatalog(ctx, c); err != nil {
		return err
	}

	fmt.Printf("%d. %s\n", c.Len(), p.Describe())
	return nil
}
