package config

import (
	"os"
	"path/filepath"
	"testing"

	"gobridgeflow/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.RedisHost)
	assert.Equal(t, 6379, cfg.Server.RedisPort)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, types.ChainID("sui"), cfg.Catalog().HomeChain)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  redis_host: redis.internal
  redis_port: 6380
  profile_ttl: 60
log:
  level: debug
flow:
  home_chain: ethereum
`)
	t.Setenv("BRIDGEFLOW_SERVER_REDIS_HOST", "redis.env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "redis.env", cfg.Server.RedisHost)
	assert.Equal(t, 6380, cfg.Server.RedisPort)
	assert.Equal(t, 60, cfg.Server.ProfileTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, types.ChainID("ethereum"), cfg.Catalog().HomeChain)
}

func TestLoadRejectsUnknownHomeChain(t *testing.T) {
	path := writeConfig(t, "flow:\n  home_chain: solana\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "solana")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "server: [")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestCatalogTables(t *testing.T) {
	catalog := (&Configuration{}).Catalog()
	assert.Len(t, catalog.Chains, 4)
	assert.Len(t, catalog.Assets, 4)
	for id, chain := range catalog.Chains {
		assert.Equal(t, id, chain.ID)
	}
	for id, asset := range catalog.Assets {
		assert.Equal(t, id, asset.ID)
	}
}
