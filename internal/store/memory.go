package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Kjohnson1213/outfitter-finance/internal/models"
)

// MemoryStore is an in-memory repository with the same dedupe rules as
// GormStore. It is used by tests and by dry runs.
//
// Setting one of the Err fields makes the matching call fail. FailUpsertAt
// makes the n-th UpsertExpenses call (1-based) fail with UpsertErr.
type MemoryStore struct {
	mu sync.Mutex

	expenses []models.ExpenseRecord
	clients  []models.Client
	hunts    []models.Hunt
	invoices []models.Invoice
	items    []models.PaymentLineItem

	upsertCalls  int
	FailUpsertAt int
	UpsertErr    error

	InsertExpenseErr error
	ListHuntsErr     error
	CreateClientErr  error
	CreateHuntErr    error
	CreateInvoiceErr error
	InsertItemsErr   error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// InsertExpense stores one record and returns its generated id.
func (m *MemoryStore) InsertExpense(_ context.Context, rec *models.ExpenseRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InsertExpenseErr != nil {
		return "", m.InsertExpenseErr
	}
	rec.ID = uuid.NewString()
	m.expenses = append(m.expenses, *rec)
	return rec.ID, nil
}

// UpsertExpenses inserts recs, skipping any whose (org id, external id) is
// already stored or appeared earlier in the same call.
func (m *MemoryStore) UpsertExpenses(_ context.Context, recs []models.ExpenseRecord) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.upsertCalls++
	if m.UpsertErr != nil && (m.FailUpsertAt == 0 || m.FailUpsertAt == m.upsertCalls) {
		return 0, m.UpsertErr
	}

	seen := make(map[string]bool, len(m.expenses))
	for _, e := range m.expenses {
		if key, ok := e.DedupeKey(); ok {
			seen[key] = true
		}
	}

	var inserted int64
	for _, rec := range recs {
		if key, ok := rec.DedupeKey(); ok {
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		rec.ID = uuid.NewString()
		m.expenses = append(m.expenses, rec)
		inserted++
	}
	return inserted, nil
}

// UpsertCalls returns how many times UpsertExpenses was called.
func (m *MemoryStore) UpsertCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upsertCalls
}

// ListExpenses returns an organization's expenses ordered by date, then
// insertion order.
func (m *MemoryStore) ListExpenses(_ context.Context, orgID string) ([]models.ExpenseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.ExpenseRecord
	for _, e := range m.expenses {
		if e.OrgID == orgID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpenseDate.Before(out[j].ExpenseDate)
	})
	return out, nil
}

// ListHunts returns an organization's hunts, newest first.
func (m *MemoryStore) ListHunts(_ context.Context, orgID string) ([]models.HuntSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListHuntsErr != nil {
		return nil, m.ListHuntsErr
	}
	var out []models.HuntSummary
	for i := len(m.hunts) - 1; i >= 0; i-- {
		if h := m.hunts[i]; h.OrgID == orgID {
			out = append(out, models.HuntSummary{ID: h.ID, Title: h.Title})
		}
	}
	return out, nil
}

// CreateClient stores c and sets its id.
func (m *MemoryStore) CreateClient(_ context.Context, c *models.Client) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateClientErr != nil {
		return "", m.CreateClientErr
	}
	c.ID = uuid.NewString()
	m.clients = append(m.clients, *c)
	return c.ID, nil
}

// CreateHunt stores h and sets its id.
func (m *MemoryStore) CreateHunt(_ context.Context, h *models.Hunt) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateHuntErr != nil {
		return "", m.CreateHuntErr
	}
	h.ID = uuid.NewString()
	m.hunts = append(m.hunts, *h)
	return h.ID, nil
}

// CreateInvoice stores inv and sets its id.
func (m *MemoryStore) CreateInvoice(_ context.Context, inv *models.Invoice) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateInvoiceErr != nil {
		return "", m.CreateInvoiceErr
	}
	inv.ID = uuid.NewString()
	m.invoices = append(m.invoices, *inv)
	return inv.ID, nil
}

// InsertScheduleItems stores items and sets their ids.
func (m *MemoryStore) InsertScheduleItems(_ context.Context, items []models.PaymentLineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InsertItemsErr != nil {
		return m.InsertItemsErr
	}
	for i := range items {
		items[i].ID = uuid.NewString()
	}
	m.items = append(m.items, items...)
	return nil
}

// ScheduleForInvoice returns an invoice's line items ordered by due date.
func (m *MemoryStore) ScheduleForInvoice(_ context.Context, invoiceID string) ([]models.PaymentLineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.PaymentLineItem
	for _, it := range m.items {
		if it.InvoiceID == invoiceID {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out, nil
}

// Counts reports how many clients, hunts and invoices are stored.
func (m *MemoryStore) Counts() (clients, hunts, invoices int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients), len(m.hunts), len(m.invoices)
}
