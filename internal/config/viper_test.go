package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEnvVars = []string{
	"OUTFITTER_LOG_LEVEL",
	"OUTFITTER_LOG_FORMAT",
	"OUTFITTER_ORG_ID",
	"OUTFITTER_ORG_SEASON_ID",
	"OUTFITTER_DATABASE_DRIVER",
	"OUTFITTER_DATABASE_DSN",
	"OUTFITTER_IMPORT_BATCH_SIZE",
	"OUTFITTER_SCHEDULE_POLICY_FILE",
	"OUTFITTER_SCHEDULE_CURRENCY",
	LegacyOrgIDEnv,
	LegacySeasonIDEnv,
}

// clearTestEnvVars unsets the variables for the duration of the test.
func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range testEnvVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	// keep a config.yaml in the package directory or $HOME from leaking in
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "", config.Org.ID)
	assert.Equal(t, "", config.Org.SeasonID)
	assert.Equal(t, "sqlite", config.Database.Driver)
	assert.Equal(t, "outfitter.db", config.Database.DSN)
	assert.Equal(t, 500, config.Import.BatchSize)
	assert.Equal(t, "", config.Schedule.PolicyFile)
	assert.Equal(t, "USD", config.Schedule.Currency)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	for key, value := range map[string]string{
		"OUTFITTER_LOG_LEVEL":         "debug",
		"OUTFITTER_LOG_FORMAT":        "json",
		"OUTFITTER_ORG_ID":            "org-1",
		"OUTFITTER_ORG_SEASON_ID":     "season-26",
		"OUTFITTER_DATABASE_DRIVER":   "postgres",
		"OUTFITTER_DATABASE_DSN":      "host=localhost dbname=outfitter",
		"OUTFITTER_IMPORT_BATCH_SIZE": "250",
	} {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "org-1", config.Org.ID)
	assert.Equal(t, "season-26", config.Org.SeasonID)
	assert.Equal(t, "postgres", config.Database.Driver)
	assert.Equal(t, "host=localhost dbname=outfitter", config.Database.DSN)
	assert.Equal(t, 250, config.Import.BatchSize)
}

func TestInitializeConfig_LegacyScopeVariables(t *testing.T) {
	clearTestEnvVars(t)
	t.Setenv(LegacyOrgIDEnv, "legacy-org")
	t.Setenv(LegacySeasonIDEnv, "legacy-season")

	config, err := InitializeConfig("")
	require.NoError(t, err)
	assert.Equal(t, "legacy-org", config.Org.ID)
	assert.Equal(t, "legacy-season", config.Org.SeasonID)

	// prefixed variable wins
	t.Setenv("OUTFITTER_ORG_ID", "org-1")
	config, err = InitializeConfig("")
	require.NoError(t, err)
	assert.Equal(t, "org-1", config.Org.ID)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	path := filepath.Join(t.TempDir(), "outfitter.yaml")
	content := `
log:
  level: warn
org:
  id: org-from-file
  season_id: season-from-file
import:
  batch_size: 100
schedule:
  policy_file: lead_times.yaml
  currency: CAD
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	config, err := InitializeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "org-from-file", config.Org.ID)
	assert.Equal(t, "season-from-file", config.Org.SeasonID)
	assert.Equal(t, 100, config.Import.BatchSize)
	assert.Equal(t, "lead_times.yaml", config.Schedule.PolicyFile)
	assert.Equal(t, "CAD", config.Schedule.Currency)

	// environment overrides the file
	t.Setenv("OUTFITTER_IMPORT_BATCH_SIZE", "50")
	config, err = InitializeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, config.Import.BatchSize)
}

func TestInitializeConfig_SearchPath(t *testing.T) {
	clearTestEnvVars(t)

	require.NoError(t, os.WriteFile("config.yaml", []byte("org:\n  id: org-cwd\n"), 0600))

	config, err := InitializeConfig("")
	require.NoError(t, err)
	assert.Equal(t, "org-cwd", config.Org.ID)
}

func TestInitializeConfig_MissingExplicitFile(t *testing.T) {
	clearTestEnvVars(t)

	_, err := InitializeConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitializeConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad log level", map[string]string{"OUTFITTER_LOG_LEVEL": "loud"}, "invalid log level"},
		{"bad log format", map[string]string{"OUTFITTER_LOG_FORMAT": "xml"}, "invalid log format"},
		{"bad driver", map[string]string{"OUTFITTER_DATABASE_DRIVER": "mysql"}, "invalid database driver"},
		{"zero batch size", map[string]string{"OUTFITTER_IMPORT_BATCH_SIZE": "0"}, "import.batch_size"},
		{"bad currency", map[string]string{"OUTFITTER_SCHEDULE_CURRENCY": "DOLLARS"}, "schedule.currency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTestEnvVars(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := InitializeConfig("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	clearTestEnvVars(t)

	require.NoError(t, os.WriteFile(".env", []byte("OUTFITTER_ORG_ID=org-dotenv\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("OUTFITTER_ORG_ID") })

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "org-dotenv", os.Getenv("OUTFITTER_ORG_ID"))
}

func TestLoadEnv_NoFile(t *testing.T) {
	clearTestEnvVars(t)

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "", loaded)
}

func TestNewLogger(t *testing.T) {
	clearTestEnvVars(t)
	config, err := InitializeConfig("")
	require.NoError(t, err)
	assert.NotNil(t, config.NewLogger())
}
