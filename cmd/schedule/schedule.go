// Package schedule implements the payment schedule preview command.
package schedule

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Kjohnson1213/outfitter-finance/cmd/root"
	"github.com/Kjohnson1213/outfitter-finance/internal/common"
	"github.com/Kjohnson1213/outfitter-finance/internal/container"
	"github.com/Kjohnson1213/outfitter-finance/internal/currencyutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/dateutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/validation"
)

// Cmd represents the schedule command
var Cmd = &cobra.Command{
	Use:   "schedule",
	Short: "Work with payment schedules",
}

type previewRequest struct {
	Total   string `json:"total" validate:"required,money"`
	Deposit string `json:"deposit" validate:"required,percent"`
	Type    string `json:"type" validate:"required"`
	Start   string `json:"start" validate:"required,flexdate"`
	Today   string `json:"today" validate:"omitempty,flexdate"`
}

var preview previewRequest

// now is replaced in tests.
var now = time.Now

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the deposit and final payment for a price without saving anything",
	Long: `Show the payment schedule a sale would get, as CSV. Nothing is written.

Unknown hunt types use the default lead time.

Example:
  outfitter schedule preview --total 6000 --deposit 50 --type Elk --start 2026-09-01`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&preview.Total, "total", "", "Total price in dollars")
	previewCmd.Flags().StringVar(&preview.Deposit, "deposit", "50", "Deposit percent, 0-100")
	previewCmd.Flags().StringVar(&preview.Type, "type", "Elk", "Hunt type")
	previewCmd.Flags().StringVar(&preview.Start, "start", "", "Hunt start date")
	previewCmd.Flags().StringVar(&preview.Today, "today", "", "Date the deposit is due (default today)")

	Cmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if err := validation.Struct(preview); err != nil {
		return err
	}

	generator, err := container.NewGenerator(root.Config(), root.Logger())
	if err != nil {
		return err
	}

	start, _ := dateutils.ParseFlexibleDate(preview.Start)
	today := dateutils.Today(now())
	if preview.Today != "" {
		today, _ = dateutils.ParseFlexibleDate(preview.Today)
	}

	pct, _ := currencyutils.ParseDecimal(preview.Deposit)
	items, err := generator.Generate(
		currencyutils.ParseMinorUnits(preview.Total),
		pct,
		preview.Type,
		start,
		today,
	)
	if err != nil {
		return err
	}
	return common.WriteScheduleCSV(cmd.OutOrStdout(), items)
}
