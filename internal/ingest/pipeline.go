// Package ingest turns expense files and manual entries into stored expense
// records.
package ingest

import (
	"context"
	"fmt"
	"io"

	"github.com/Kjohnson1213/outfitter-finance/internal/apperror"
	"github.com/Kjohnson1213/outfitter-finance/internal/columnmap"
	"github.com/Kjohnson1213/outfitter-finance/internal/csvparser"
	"github.com/Kjohnson1213/outfitter-finance/internal/logging"
	"github.com/Kjohnson1213/outfitter-finance/internal/models"
)

// DefaultBatchSize is the number of records written per repository call.
const DefaultBatchSize = 500

// ExpenseRepository is the storage the pipeline writes to.
type ExpenseRepository interface {
	// InsertExpense stores one record and returns its new id.
	InsertExpense(ctx context.Context, rec *models.ExpenseRecord) (string, error)
	// UpsertExpenses inserts records, skipping any whose (org id, external
	// id) already exists. It returns the number of rows actually inserted.
	UpsertExpenses(ctx context.Context, recs []models.ExpenseRecord) (int64, error)
	// ListHunts returns the hunts of an organization.
	ListHunts(ctx context.Context, orgID string) ([]models.HuntSummary, error)
}

// Result summarizes one import.
type Result struct {
	Rows       int // data rows after the header
	Dropped    int // rows rejected during normalization
	Submitted  int // records in batches that were written
	Inserted   int // records the repository reported as new
	Duplicates int // Submitted - Inserted
	Batches    int // batches written
}

// Pipeline parses, normalizes and writes expense records.
type Pipeline struct {
	repo      ExpenseRepository
	logger    logging.Logger
	batchSize int
}

// NewPipeline creates a Pipeline. A batchSize below 1 means DefaultBatchSize
// and a nil logger means the package default.
func NewPipeline(repo ExpenseRepository, logger logging.Logger, batchSize int) *Pipeline {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &Pipeline{
		repo:      repo,
		logger:    logging.OrDefault(logger),
		batchSize: batchSize,
	}
}

// BatchSize returns the configured batch size.
func (p *Pipeline) BatchSize() int {
	return p.batchSize
}

// Ingest imports CSV text for scope.
func (p *Pipeline) Ingest(ctx context.Context, text string, scope models.Scope) (Result, error) {
	if err := scope.RequireOrg(); err != nil {
		return Result{}, err
	}
	return p.IngestGrid(ctx, csvparser.Parse(text), scope)
}

// IngestReader imports CSV read from r.
func (p *Pipeline) IngestReader(ctx context.Context, r io.Reader, scope models.Scope) (Result, error) {
	if err := scope.RequireOrg(); err != nil {
		return Result{}, err
	}
	rows, err := csvparser.ParseReader(r)
	if err != nil {
		return Result{}, err
	}
	return p.IngestGrid(ctx, rows, scope)
}

// IngestGrid imports already-parsed rows; rows[0] is the header.
//
// Rows with an unreadable date or a non-positive amount are dropped and
// counted. A failing batch stops the import and returns a
// *apperror.BatchWriteError along with the counts written so far.
func (p *Pipeline) IngestGrid(ctx context.Context, rows [][]string, scope models.Scope) (Result, error) {
	if err := scope.RequireOrg(); err != nil {
		return Result{}, err
	}

	log := p.logger.WithFields(logging.F(logging.FieldOrgID, scope.OrgID))

	if len(rows) < 2 {
		return Result{}, apperror.ErrNoData
	}

	idx, err := columnmap.Build(rows[0])
	if err != nil {
		return Result{}, err
	}

	res := Result{Rows: len(rows) - 1}
	records := make([]models.ExpenseRecord, 0, res.Rows)
	for i, row := range rows[1:] {
		rec, reason := normalizeRow(idx, row, scope)
		if reason != "" {
			res.Dropped++
			// header is line 1
			log.Debug("Dropping row", logging.F(logging.FieldRow, i+2), logging.F(logging.FieldReason, reason))
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		log.Warn("No valid rows in import",
			logging.F(logging.FieldRows, res.Rows),
			logging.F(logging.FieldDropped, res.Dropped))
		return res, apperror.ErrNoValidRows
	}

	for start := 0; start < len(records); start += p.batchSize {
		end := start + p.batchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]
		batchNo := res.Batches + 1

		inserted, err := p.repo.UpsertExpenses(ctx, batch)
		if err != nil {
			log.WithError(err).Error("Batch write failed",
				logging.F(logging.FieldBatch, batchNo),
				logging.F(logging.FieldSubmitted, res.Submitted))
			return res, &apperror.BatchWriteError{Batch: batchNo, Committed: res.Submitted, Err: err}
		}

		res.Batches++
		res.Submitted += len(batch)
		res.Inserted += int(inserted)
		res.Duplicates = res.Submitted - res.Inserted

		log.Debug("Batch written",
			logging.F(logging.FieldBatch, batchNo),
			logging.F(logging.FieldBatchSize, len(batch)),
			logging.F(logging.FieldInserted, inserted))
	}

	log.Info("Import complete",
		logging.F(logging.FieldRows, res.Rows),
		logging.F(logging.FieldDropped, res.Dropped),
		logging.F(logging.FieldSubmitted, res.Submitted),
		logging.F(logging.FieldInserted, res.Inserted),
		logging.F(logging.FieldDuplicates, res.Duplicates))

	return res, nil
}

// String renders the result for the command line.
func (r Result) String() string {
	return fmt.Sprintf("%d rows, %d dropped, %d inserted, %d duplicates skipped",
		r.Rows, r.Dropped, r.Inserted, r.Duplicates)
}
