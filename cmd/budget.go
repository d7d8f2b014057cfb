package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guidepost-labs/guidepost/internal/budget"
	"github.com/guidepost-labs/guidepost/internal/cli"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Print the budget step table",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	table := budget.Standard()

	fmt.Printf("  %3s  %-8s %s\n", "idx", "label", "value")
	for i, v := range table {
		fmt.Printf("  %3d  %-8s %s\n", i, budget.Format(v), cli.FormatDollars(v))
	}
	return nil
}
