package hunts

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kjohnson1213/outfitter-finance/cmd/root"
	"github.com/Kjohnson1213/outfitter-finance/internal/apperror"
	"github.com/Kjohnson1213/outfitter-finance/internal/config"
	"github.com/Kjohnson1213/outfitter-finance/internal/container"
	"github.com/Kjohnson1213/outfitter-finance/internal/logging"
	"github.com/Kjohnson1213/outfitter-finance/internal/sale"
	"github.com/Kjohnson1213/outfitter-finance/internal/store"
)

func init() {
	root.Init()
	root.Cmd.AddCommand(Cmd)
}

func run(t *testing.T, repo *store.MemoryStore, scope [2]string, args ...string) (string, error) {
	t.Helper()

	request = sale.SaleRequest{HuntType: "Elk", TotalPrice: "6000", DepositPercent: "50"}

	cfg := &config.Config{}
	cfg.Org.ID = scope[0]
	cfg.Org.SeasonID = scope[1]
	cfg.Schedule.Currency = "USD"
	c, err := container.NewContainerWithRepository(cfg, repo, logging.NewMockLogger())
	require.NoError(t, err)
	root.SetContainer(c)

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&out)
	root.Cmd.SetArgs(args)
	err = root.Execute(context.Background())
	return out.String(), err
}

func TestCreateAndListHunts(t *testing.T) {
	repo := store.NewMemoryStore()
	scope := [2]string{"org-1", "season-26"}

	out, err := run(t, repo, scope, "hunts", "create",
		"--first-name", "Dana", "--title", "Early Season Elk", "--start", "2026-09-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Hunt created: ")
	assert.Contains(t, out, "total 6000.00 USD")
	assert.Contains(t, out, "label,due_date,amount,status")
	assert.Contains(t, out, "Final Payment,2026-07-03,3000.00,due")

	out, err = run(t, repo, scope, "hunts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "id,title")
	assert.Contains(t, out, "Early Season Elk")
}

func TestCreateHunt_RequiresSeason(t *testing.T) {
	_, err := run(t, store.NewMemoryStore(), [2]string{"org-1", ""}, "hunts", "create",
		"--title", "Early Season Elk", "--start", "2026-09-01")
	var pe *apperror.PreconditionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "season id", pe.Field)
}

func TestCreateHunt_MissingTitle(t *testing.T) {
	_, err := run(t, store.NewMemoryStore(), [2]string{"org-1", "s"}, "hunts", "create", "--start", "2026-09-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please enter a hunt title.")
}
