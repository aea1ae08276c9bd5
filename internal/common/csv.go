// Package common provides the CSV export shared by the expense and schedule
// commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/Kjohnson1213/outfitter-finance/internal/currencyutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/dateutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/fileutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/logging"
	"github.com/Kjohnson1213/outfitter-finance/internal/models"
)

// Delimiter separates exported CSV cells.
var Delimiter rune = ','

// ExpenseCSVRow is one exported expense. Column names match the import
// header, so an export can be imported again.
type ExpenseCSVRow struct {
	Date          string `csv:"date"`
	Amount        string `csv:"amount"`
	Vendor        string `csv:"vendor"`
	Description   string `csv:"description"`
	Category      string `csv:"category"`
	ExternalID    string `csv:"external_id"`
	PaymentMethod string `csv:"payment_method"`
	Source        string `csv:"source"`
	HuntID        string `csv:"hunt_id"`
}

// ScheduleCSVRow is one payment schedule line.
type ScheduleCSVRow struct {
	Label   string `csv:"label"`
	DueDate string `csv:"due_date"`
	Amount  string `csv:"amount"`
	Status  string `csv:"status"`
}

// HuntCSVRow is one entry of the hunt list.
type HuntCSVRow struct {
	ID    string `csv:"id"`
	Title string `csv:"title"`
}

// NewExpenseCSVRow converts a stored expense to its export row.
func NewExpenseCSVRow(e models.ExpenseRecord) ExpenseCSVRow {
	row := ExpenseCSVRow{
		Date:        dateutils.ToISODate(e.ExpenseDate),
		Amount:      currencyutils.FormatMinorUnits(e.AmountCents),
		Vendor:      models.Deref(e.Vendor),
		Description: models.Deref(e.Description),
		Category:    e.Category,
		ExternalID:  models.Deref(e.ExternalID),
		Source:      string(e.Source),
		HuntID:      models.Deref(e.HuntID),
	}
	if e.PaymentMethod != nil {
		row.PaymentMethod = string(*e.PaymentMethod)
	}
	return row
}

// WriteExpensesCSV writes expenses with a header row to w.
func WriteExpensesCSV(w io.Writer, expenses []models.ExpenseRecord) error {
	rows := make([]ExpenseCSVRow, len(expenses))
	for i, e := range expenses {
		rows[i] = NewExpenseCSVRow(e)
	}
	return marshal(w, &rows)
}

// WriteScheduleCSV writes schedule items with a header row to w.
func WriteScheduleCSV(w io.Writer, items []models.PaymentLineItem) error {
	rows := make([]ScheduleCSVRow, len(items))
	for i, it := range items {
		rows[i] = ScheduleCSVRow{
			Label:   it.Label,
			DueDate: dateutils.ToISODate(it.DueDate),
			Amount:  currencyutils.FormatMinorUnits(it.AmountCents),
			Status:  string(it.Status),
		}
	}
	return marshal(w, &rows)
}

// WriteHuntsCSV writes hunt summaries with a header row to w.
func WriteHuntsCSV(w io.Writer, hunts []models.HuntSummary) error {
	rows := make([]HuntCSVRow, len(hunts))
	for i, h := range hunts {
		rows[i] = HuntCSVRow{ID: h.ID, Title: h.Title}
	}
	return marshal(w, &rows)
}

// WriteExpensesToFile exports expenses to csvFile, creating parent
// directories as needed.
func WriteExpensesToFile(expenses []models.ExpenseRecord, csvFile string, logger logging.Logger) error {
	logger = logging.OrDefault(logger)

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteExpensesCSV(file, expenses); err != nil {
		logger.WithError(err).Error("Failed to marshal expenses to CSV")
		return err
	}

	logger.Info("Successfully wrote expenses to CSV file",
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldCount, len(expenses)))
	return nil
}

func marshal(w io.Writer, rows interface{}) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
