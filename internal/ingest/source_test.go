package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestIngestFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jan.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,amount\r\n2026-01-05,150.00\r\n"), 0600))

	p, _, _ := newTestPipeline(0)
	res, err := p.IngestFile(context.Background(), path, testScope)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)
}

func TestIngestFile_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jan.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Date", "Amount", "Vendor"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"2026-01-05", "150.00", "Cenex"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"01/06/2026", "$75.50", "Murdoch's"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	p, repo, _ := newTestPipeline(0)
	res, err := p.IngestFile(context.Background(), path, testScope)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Inserted)

	got, err := repo.ListExpenses(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7550), got[1].AmountCents)
}

func TestIngestFile_Missing(t *testing.T) {
	p, _, _ := newTestPipeline(0)
	_, err := p.IngestFile(context.Background(), filepath.Join(t.TempDir(), "none.csv"), testScope)
	assert.Error(t, err)
}
