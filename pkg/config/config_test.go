package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"SUPABASE_URL":      "https://abc.supabase.co/",
		"SUPABASE_ANON_KEY": "anon",
	}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "lewis-twins-websites", cfg.App.Name)
	assert.Equal(t, DriverSupabase, cfg.Store.Driver)
	assert.Equal(t, 10*time.Second, cfg.Store.Timeout)
	assert.Equal(t, "https://abc.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:8080", cfg.App.SiteBaseURL)
}

func TestFromViper_SupabaseRequiresCredentials(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"STORE_DRIVER": "supabase"}))
	assert.Error(t, err)
}

func TestFromViper_UnknownDriver(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"STORE_DRIVER": "firestore"}))
	assert.ErrorContains(t, err, "firestore")
}

func TestFromViper_SQLiteAndStringInts(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"STORE_DRIVER":          "SQLite",
		"SQLITE_SEED_FILE":      "seed.yaml",
		"HTTP_PORT":             "9090",
		"STORE_TIMEOUT_SECONDS": "3",
	}))
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "seed.yaml", cfg.SQLite.SeedFile)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.Store.Timeout)
}

func TestFromViper_ZeroTimeoutRejected(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"STORE_DRIVER": "sqlite", "STORE_TIMEOUT_SECONDS": 0}))
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss/word", DBName: "lewis", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p%40ss%2Fword@db:5432/lewis?sslmode=require", c.ConnectionString())

	c.DatabaseURL = "postgresql://x@y/z"
	assert.Equal(t, "postgresql://x@y/z", c.ConnectionString())
}
