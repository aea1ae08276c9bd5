package expenses

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kjohnson1213/outfitter-finance/cmd/root"
	"github.com/Kjohnson1213/outfitter-finance/internal/ingest"
)

var manual ingest.ManualExpense

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a single expense",
	Long: `Add a single expense by hand.

Example:
  outfitter expenses add --date 2026-03-14 --amount 125.40 --vendor Cenex --payment-method card`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&manual.Date, "date", "", "Expense date (YYYY-MM-DD or MM/DD/YYYY)")
	addCmd.Flags().StringVar(&manual.Amount, "amount", "", "Amount, e.g. 125.40 or $1,250.00")
	addCmd.Flags().StringVar(&manual.Vendor, "vendor", "", "Vendor")
	addCmd.Flags().StringVar(&manual.Description, "description", "", "Description")
	addCmd.Flags().StringVar(&manual.Category, "category", "", "Category (default Uncategorized)")
	addCmd.Flags().StringVar(&manual.PaymentMethod, "payment-method", "", "card, ach, cash or check")
	addCmd.Flags().StringVar(&manual.HuntID, "hunt", "", "Attach to this hunt id (see 'outfitter hunts list')")
}

func runAdd(cmd *cobra.Command, args []string) error {
	scope := root.Scope()
	if err := scope.RequireOrg(); err != nil {
		return err
	}

	app, err := root.Container()
	if err != nil {
		return err
	}

	id, err := app.GetPipeline().AddExpense(cmd.Context(), scope, manual)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Expense saved: %s\n", id)
	return nil
}
