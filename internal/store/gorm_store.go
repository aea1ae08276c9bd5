// Package store persists expenses, hunts, invoices and payment schedules.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Kjohnson1213/outfitter-finance/internal/dateutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/logging"
	"github.com/Kjohnson1213/outfitter-finance/internal/models"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options selects and configures the database.
type Options struct {
	Driver string
	DSN    string
	// Debug logs every SQL statement.
	Debug bool
}

// GormStore is the relational repository.
type GormStore struct {
	db     *gorm.DB
	logger logging.Logger
}

// Open connects to the database named by opts and migrates the schema.
func Open(opts Options, logger logging.Logger) (*GormStore, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(opts.DSN)
	case DriverPostgres:
		dialector = postgres.Open(opts.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	level := gormlogger.Silent
	if opts.Debug {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(level)})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", opts.Driver, err)
	}

	s, err := NewGormStore(db, logger)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Database ready", logging.F(logging.FieldDriver, opts.Driver))
	return s, nil
}

// NewGormStore wraps an open connection and migrates the schema.
func NewGormStore(db *gorm.DB, logger logging.Logger) (*GormStore, error) {
	if err := db.AutoMigrate(&expenseRow{}, &clientRow{}, &huntRow{}, &invoiceRow{}, &scheduleItemRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &GormStore{db: db, logger: logging.OrDefault(logger)}, nil
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InsertExpense stores one record and returns its generated id.
func (s *GormStore) InsertExpense(ctx context.Context, rec *models.ExpenseRecord) (string, error) {
	row := toExpenseRow(*rec)
	row.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("insert expense: %w", err)
	}
	rec.ID = row.ID
	return row.ID, nil
}

// UpsertExpenses inserts recs, ignoring any that collide with an existing
// (org_id, external_id) pair. Records without an external id never collide.
func (s *GormStore) UpsertExpenses(ctx context.Context, recs []models.ExpenseRecord) (int64, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	rows := make([]expenseRow, len(recs))
	for i, rec := range recs {
		rows[i] = toExpenseRow(rec)
		rows[i].ID = uuid.NewString()
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "org_id"}, {Name: "external_id"}},
			DoNothing: true,
		}).
		Create(&rows)
	if result.Error != nil {
		return 0, fmt.Errorf("upsert expenses: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ListExpenses returns an organization's expenses ordered by date.
func (s *GormStore) ListExpenses(ctx context.Context, orgID string) ([]models.ExpenseRecord, error) {
	var rows []expenseRow
	if err := s.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("expense_date ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	out := make([]models.ExpenseRecord, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// ListHunts returns an organization's hunts, newest first.
func (s *GormStore) ListHunts(ctx context.Context, orgID string) ([]models.HuntSummary, error) {
	var rows []huntRow
	if err := s.db.WithContext(ctx).
		Select("id", "title").
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list hunts: %w", err)
	}

	out := make([]models.HuntSummary, len(rows))
	for i, r := range rows {
		out[i] = models.HuntSummary{ID: r.ID, Title: r.Title}
	}
	return out, nil
}

// CreateClient stores c and sets its id.
func (s *GormStore) CreateClient(ctx context.Context, c *models.Client) (string, error) {
	row := clientRow{
		ID:        uuid.NewString(),
		OrgID:     c.OrgID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("insert client: %w", err)
	}
	c.ID = row.ID
	return row.ID, nil
}

// CreateHunt stores h and sets its id.
func (s *GormStore) CreateHunt(ctx context.Context, h *models.Hunt) (string, error) {
	row := huntRow{
		ID:              uuid.NewString(),
		OrgID:           h.OrgID,
		SeasonID:        h.SeasonID,
		ClientID:        h.ClientID,
		Title:           h.Title,
		HuntType:        string(h.HuntType),
		HuntStart:       dateutils.ToTime(h.HuntStart),
		TotalPriceCents: h.TotalPriceCents,
		Status:          h.Status,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("insert hunt: %w", err)
	}
	h.ID = row.ID
	return row.ID, nil
}

// CreateInvoice stores inv and sets its id.
func (s *GormStore) CreateInvoice(ctx context.Context, inv *models.Invoice) (string, error) {
	row := invoiceRow{
		ID:         uuid.NewString(),
		OrgID:      inv.OrgID,
		HuntID:     inv.HuntID,
		TotalCents: inv.TotalCents,
		Currency:   inv.Currency,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("insert invoice: %w", err)
	}
	inv.ID = row.ID
	return row.ID, nil
}

// InsertScheduleItems stores items in one statement and sets their ids.
func (s *GormStore) InsertScheduleItems(ctx context.Context, items []models.PaymentLineItem) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]scheduleItemRow, len(items))
	for i, it := range items {
		rows[i] = scheduleItemRow{
			ID:          uuid.NewString(),
			OrgID:       it.OrgID,
			InvoiceID:   it.InvoiceID,
			Label:       it.Label,
			DueDate:     dateutils.ToTime(it.DueDate),
			AmountCents: it.AmountCents,
			Status:      string(it.Status),
		}
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("insert schedule items: %w", err)
	}
	for i := range items {
		items[i].ID = rows[i].ID
	}
	return nil
}

// ScheduleForInvoice returns an invoice's line items ordered by due date.
func (s *GormStore) ScheduleForInvoice(ctx context.Context, invoiceID string) ([]models.PaymentLineItem, error) {
	var rows []scheduleItemRow
	if err := s.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("due_date ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list schedule items: %w", err)
	}

	out := make([]models.PaymentLineItem, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}
