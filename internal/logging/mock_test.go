package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := NewMockLogger()
	child := mock.WithField(FieldOrgID, "org-1")
	child.Info("import started", F(FieldRows, 3))
	child.WithError(errors.New("boom")).Error("import failed")

	entries := mock.GetEntries()
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0].Level)
	org, ok := entries[0].FieldValue(FieldOrgID)
	assert.True(t, ok)
	assert.Equal(t, "org-1", org)
	rows, _ := entries[0].FieldValue(FieldRows)
	assert.Equal(t, 3, rows)

	assert.Equal(t, "ERROR", entries[1].Level)
	assert.EqualError(t, entries[1].Error, "boom")
	assert.True(t, mock.HasEntry("ERROR", "import failed"))
	assert.Len(t, mock.GetEntriesByLevel("INFO"), 1)
}

func TestMockLogger_Clear(t *testing.T) {
	var mock MockLogger
	mock.Debug("one")
	mock.Warn("two")
	assert.Len(t, mock.GetEntries(), 2)

	mock.Clear()
	assert.Empty(t, mock.GetEntries())
	assert.False(t, mock.HasEntry("WARN", "two"))
}
