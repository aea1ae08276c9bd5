package common

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kjohnson1213/outfitter-finance/internal/dateutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/ingest"
	"github.com/Kjohnson1213/outfitter-finance/internal/logging"
	"github.com/Kjohnson1213/outfitter-finance/internal/models"
	"github.com/Kjohnson1213/outfitter-finance/internal/store"
)

func sampleExpenses() []models.ExpenseRecord {
	pm := models.PaymentCheck
	return []models.ExpenseRecord{
		{
			OrgID:       "org-1",
			ExpenseDate: dateutils.MustParse("2026-01-05"),
			Vendor:      models.OptionalString("Cenex"),
			Category:    models.CategoryUncategorized,
			AmountCents: 15000,
			Source:      models.SourceCSV,
			ExternalID:  models.OptionalString("tx-1"),
		},
		{
			OrgID:         "org-1",
			ExpenseDate:   dateutils.MustParse("2026-01-06"),
			Vendor:        models.OptionalString("Murdoch's, Bozeman"),
			Description:   models.OptionalString(`12" scope mount`),
			Category:      "Gear",
			AmountCents:   7550,
			PaymentMethod: &pm,
			Source:        models.SourceManual,
		},
	}
}

func TestWriteExpensesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExpensesCSV(&buf, sampleExpenses()))

	expected := "date,amount,vendor,description,category,external_id,payment_method,source,hunt_id\n" +
		"2026-01-05,150.00,Cenex,,Uncategorized,tx-1,,csv,\n" +
		"2026-01-06,75.50,\"Murdoch's, Bozeman\",\"12\"\" scope mount\",Gear,,check,manual,\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteExpensesCSV_RoundTripsThroughImport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExpensesCSV(&buf, sampleExpenses()))

	repo := store.NewMemoryStore()
	p := ingest.NewPipeline(repo, logging.NewMockLogger(), 0)
	res, err := p.Ingest(context.Background(), buf.String(), models.Scope{OrgID: "org-2"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Inserted)

	got, err := repo.ListExpenses(context.Background(), "org-2")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Murdoch's, Bozeman", models.Deref(got[1].Vendor))
	assert.Equal(t, `12" scope mount`, models.Deref(got[1].Description))
	assert.Equal(t, int64(7550), got[1].AmountCents)
}

func TestWriteScheduleCSV(t *testing.T) {
	items := []models.PaymentLineItem{
		{Label: models.LabelDeposit, DueDate: dateutils.MustParse("2026-03-01"), AmountCents: 300000, Status: models.StatusDue},
		{Label: models.LabelFinalPayment, DueDate: dateutils.MustParse("2026-07-03"), AmountCents: 300000, Status: models.StatusDue},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteScheduleCSV(&buf, items))
	assert.Equal(t,
		"label,due_date,amount,status\n"+
			"Deposit,2026-03-01,3000.00,due\n"+
			"Final Payment,2026-07-03,3000.00,due\n",
		buf.String())
}

func TestWriteHuntsCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHuntsCSV(&buf, nil))
	assert.Equal(t, "id,title\n", buf.String())
}

func TestWriteExpensesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "expenses.csv")
	logger := logging.NewMockLogger()

	require.NoError(t, WriteExpensesToFile(sampleExpenses(), path, logger))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2026-01-05,150.00,Cenex")
	assert.True(t, logger.HasEntry("INFO", "Successfully wrote expenses to CSV file"))
}
