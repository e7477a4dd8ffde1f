package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jacksmith/pcat/internal/cli"
	"github.com/jacksmith/pcat/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all projects",
	Long: `List the projects in the catalog file with their position, kind,
title, estimated hours and task count.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	c, err := a.loadCatalog(context.Background())
	if err != nil {
		return err
	}

	entries := c.List()
	if len(entries) == 0 {
		fmt.Println("No projects found.")
		return nil
	}

	table := cli.NewTable()
	table.SetMaxWidth(2, cli.DefaultMaxTitleWidth)
	for _, e := range entries {
		p := e.Project
		tasks := "-"
		if t, ok := p.(model.Taskable); ok {
			tasks = fmt.Sprintf("%d tasks", len(t.Tasks()))
		}
		table.AddRow(
			fmt.Sprintf("%d.", e.Index),
			formatKind(p),
			p.Title(),
			fmt.Sprintf("%dh", p.EstimatedHours()),
			tasks,
		)
	}
	table.Render(os.Stdout)
	return nil
}

func formatKind(p model.Project) string {
	switch p.Kind() {
	case model.KindWeb:
		return cli.Cyan(p.DisplayLabel())
	case model.KindMobile:
		return cli.Yellow(p.DisplayLabel())
	default:
		return p.DisplayLabel()
	}
}
