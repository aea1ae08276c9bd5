// Package hunts implements the commands that record and list sold hunts.
package hunts

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kjohnson1213/outfitter-finance/cmd/root"
	"github.com/Kjohnson1213/outfitter-finance/internal/common"
	"github.com/Kjohnson1213/outfitter-finance/internal/currencyutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/sale"
)

// Cmd represents the hunts command
var Cmd = &cobra.Command{
	Use:   "hunts",
	Short: "Record sold hunts and list them",
}

var request sale.SaleRequest

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a sold hunt with its invoice and payment schedule",
	Long: `Record a sold hunt. This creates the client, the hunt (status booked), an
invoice for the total price and a payment schedule: a deposit due today and
the balance due a number of days before the hunt starts (Elk 60, Turkey 30,
others 45, unless schedule.policy_file says otherwise).

Requires both an organization and a season id.

Example:
  outfitter hunts create --first-name Dana --last-name Reyes \
    --title "Early Season Elk" --type Elk --start 2026-09-01 --total 6000 --deposit 50`,
	RunE: runCreate,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the organization's hunts, newest first",
	RunE:  runList,
}

func init() {
	createCmd.Flags().StringVar(&request.FirstName, "first-name", "", "Client first name")
	createCmd.Flags().StringVar(&request.LastName, "last-name", "", "Client last name")
	createCmd.Flags().StringVar(&request.Email, "email", "", "Client email")
	createCmd.Flags().StringVar(&request.HuntTitle, "title", "", "Hunt title")
	createCmd.Flags().StringVar(&request.HuntType, "type", "Elk", "Hunt type: Elk, Deer, Turkey or Bear")
	createCmd.Flags().StringVar(&request.HuntStart, "start", "", "Hunt start date (YYYY-MM-DD or MM/DD/YYYY)")
	createCmd.Flags().StringVar(&request.TotalPrice, "total", "6000", "Total price in dollars")
	createCmd.Flags().StringVar(&request.DepositPercent, "deposit", "50", "Deposit percent, 0-100")

	Cmd.AddCommand(createCmd, listCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	scope := root.Scope()
	if err := scope.RequireOrgAndSeason(); err != nil {
		return err
	}

	app, err := root.Container()
	if err != nil {
		return err
	}

	res, err := app.GetSaleService().CreateSale(cmd.Context(), scope, request)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Hunt created: %s (%s)\n", res.Hunt.ID, res.Hunt.Title)
	_, _ = fmt.Fprintf(out, "Invoice: %s, total %s %s\n",
		res.Invoice.ID, currencyutils.FormatMinorUnits(res.Invoice.TotalCents), res.Invoice.Currency)
	return common.WriteScheduleCSV(out, res.Schedule)
}

func runList(cmd *cobra.Command, args []string) error {
	app, err := root.Container()
	if err != nil {
		return err
	}

	hunts, err := app.GetSaleService().ListHunts(cmd.Context(), root.Scope())
	if err != nil {
		return err
	}
	return common.WriteHuntsCSV(cmd.OutOrStdout(), hunts)
}
