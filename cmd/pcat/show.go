package main

import (
	"context"
	"fmt"

	"github.com/jacksmith/pcat/internal/cli"
	"github.com/jacksmith/pcat/internal/model"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <number>",
	Short: "Show project details",
	Long: `Show a project's summary and its tasks.

The number is the 1-based position shown by "pcat list".`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	index, err := cli.ParseIndex(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	c, err := a.loadCatalog(context.Background())
	if err != nil {
		return err
	}

	p, err := c.Get(index)
	if err != nil {
		return err
	}

	fmt.Println(p.Describe())
	if t, ok := p.(model.Taskable); ok {
		tasks := t.Tasks()
		if len(tasks) == 0 {
			fmt.Println(cli.Gray("No tasks."))
			return nil
		}
		fmt.Println("Tasks:")
		for i, task := range tasks {
			fmt.Printf("  %d. %s\n", i+1, task)
		}
	}
	return nil
}
