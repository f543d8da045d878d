package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/archichudinow/cs50ai/config"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "degrees.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "large", cfg.DataDir)
	require.Equal(t, config.StoreMemory, cfg.Store.Backend)
	require.Equal(t, config.IndexMemory, cfg.NameIndex.Backend)
	require.Equal(t, 5, cfg.NameIndex.Suggestions)
	require.Equal(t, "queue", cfg.Search.Frontier)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
data_dir: small
search:
  frontier: stack
  max_expansions: 100
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "small", cfg.DataDir)
	require.Equal(t, "stack", cfg.Search.Frontier)
	require.Equal(t, 100, cfg.Search.MaxExpansions)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Equal(t, config.StoreMemory, cfg.Store.Backend)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := config.Load(writeConfig(t, "datadir: small\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse config")
}

func TestValidatePostgresNeedsDSN(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = config.StorePostgres
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "store.dsn is required")

	cfg.Store.DSN = "postgres://localhost/degrees?sslmode=disable"
	require.NoError(t, cfg.Validate())
}

func TestValidatePostgresDoesNotNeedDataDir(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = ""
	require.Error(t, cfg.Validate())

	cfg.Store.Backend = config.StorePostgres
	cfg.Store.DSN = "postgres://localhost/degrees"
	require.NoError(t, cfg.Validate())
}

func TestValidateElasticsearchNodes(t *testing.T) {
	cfg := config.Default()
	cfg.NameIndex.Backend = config.IndexElasticsearch
	require.ErrorContains(t, cfg.Validate(), "name_index.nodes is required")

	cfg.NameIndex.Nodes = []string{"not a url"}
	require.ErrorContains(t, cfg.Validate(), "name_index.nodes[0] is not a valid URL")

	cfg.NameIndex.Nodes = []string{"http://localhost:9200"}
	require.NoError(t, cfg.Validate())
}

func TestValidateEnumerations(t *testing.T) {
	cases := map[string]func(*config.Config){
		"store.backend":   func(c *config.Config) { c.Store.Backend = "sqlite" },
		"search.frontier": func(c *config.Config) { c.Search.Frontier = "astar" },
		"log.level":       func(c *config.Config) { c.Log.Level = "trace" },
		"log.format":      func(c *config.Config) { c.Log.Format = "xml" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), field+" must be one of")
		})
	}
}

func TestValidateBounds(t *testing.T) {
	cfg := config.Default()
	cfg.Search.MaxExpansions = -1
	require.ErrorContains(t, cfg.Validate(), "search.max_expansions must satisfy min=0")

	cfg = config.Default()
	cfg.NameIndex.Suggestions = 500
	require.ErrorContains(t, cfg.Validate(), "name_index.suggestions must satisfy max=50")
}

func TestReadDoesNotValidate(t *testing.T) {
	path := writeConfig(t, "search:\n  frontier: astar\n")

	_, err := config.Load(path)
	require.ErrorContains(t, err, "search.frontier must be one of")

	cfg, err := config.Read(path)
	require.NoError(t, err)
	require.Equal(t, "astar", cfg.Search.Frontier)
}
