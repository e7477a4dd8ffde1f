package main

import (
	"context"
	"fmt"

	"github.com/jacksmith/pcat/internal/cli"
	"github.com/spf13/cobra"
)

var costCmd = &cobra.Command{
	Use:   "cost <number>",
	Short: "Calculate a project's cost",
	Long: `Multiply a project's estimated hours by an hourly rate.

The rate is exact decimal: --rate 25.50 on 10 hours is 255.00.

Example:
  pcat cost 2 --rate 15`,
	Args: cobra.ExactArgs(1),
	RunE: runCost,
}

var costRate string

func init() {
	costCmd.Flags().StringVarP(&costRate, "rate", "r", "", "hourly rate")
	costCmd.MarkFlagRequired("rate")
	rootCmd.AddCommand(costCmd)
}

func runCost(cmd *cobra.Command, args []string) error {
	index, err := cli.ParseIndex(args[0])
	if err != nil {
		return err
	}
	rate, err := cli.ParseRate(costRate)
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

	cost, err := c.CostOf(index, rate)
	if err != nil {
		return err
	}

	fmt.Printf("Project cost: %s\n", cli.FormatMoney(a.cfg.Currency, cost))
	return nil
}
