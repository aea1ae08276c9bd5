package expenses

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kjohnson1213/outfitter-finance/cmd/root"
	"github.com/Kjohnson1213/outfitter-finance/internal/common"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Export the organization's expenses as CSV",
	Long: `Export the organization's expenses as CSV, to stdout or a file. The
columns match the import header, so the output can be imported elsewhere.

Example:
  outfitter expenses list -o exports/expenses.csv`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "Output file (default stdout)")
}

func runList(cmd *cobra.Command, args []string) error {
	scope := root.Scope()
	if err := scope.RequireOrg(); err != nil {
		return err
	}

	app, err := root.Container()
	if err != nil {
		return err
	}

	expenses, err := app.GetRepository().ListExpenses(cmd.Context(), scope.OrgID)
	if err != nil {
		return err
	}

	if listOutput == "" {
		return common.WriteExpensesCSV(cmd.OutOrStdout(), expenses)
	}
	if err := common.WriteExpensesToFile(expenses, listOutput, root.Logger()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d expenses to %s\n", len(expenses), listOutput)
	return nil
}
