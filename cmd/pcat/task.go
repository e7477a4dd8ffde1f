package main

import (
	"context"
	"fmt"

	"github.com/jacksmith/pcat/internal/cli"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task <number> <text>",
	Short: "Add a task to a project",
	Long: `Append a task to the project at the given position and save the file.

Example:
  pcat task 1 "Design homepage"`,
	Args: cobra.ExactArgs(2),
	RunE: runTask,
}

func init() {
	rootCmd.AddCommand(taskCmd)
}

func runTask(cmd *cobra.Command, args []string) error {
	index, err := cli.ParseIndex(args[0])
	if err != nil {
		return err
	}
	text := args[1]

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

	if err := c.AddTaskTo(index, text); err != nil {
		return err
	}
	if err := a.saveCatalog(ctx, c); err != nil {
		return err
	}

	tasks, err := c.TasksOf(index)
	if err != nil {
		return err
	}
	fmt.Printf("Added task %d to project %d: %s\n", len(tasks), index, text)
	return nil
}
