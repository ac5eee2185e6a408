package config

import (
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "ppm.yaml")
	configContent := `
ppm:
  general:
    instance_name: "ppm-test"
    log_level: "debug"
    env: "test"
  server:
    host: "127.0.0.1"
    port: 9090
    read_timeout: "10s"
  storage:
    database:
      type: "sqlite"
      dsn: "./data/ppm.db"
      max_open_conns: 4
      conn_max_lifetime: "1h"
      seed: "never"
    csv:
      dir: "./data"
      atomic_write: true
  entities:
    applicant:
      backend: "database"
    address:
      backend: "csv"
      file: "addresses.csv"
    contact:
      backend: "memory"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "ppm-test", cfg.PPM.General.InstanceName)
	assert.Equal(t, "127.0.0.1:9090", cfg.ServerAddr())
	assert.Equal(t, 10*time.Second, cfg.PPM.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.PPM.Server.WriteTimeout, "未配置项应使用默认值")
	assert.Equal(t, 4, cfg.PPM.Storage.Database.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.PPM.Storage.Database.ConnMaxLifetime)
	assert.Equal(t, "never", cfg.PPM.Storage.Database.Seed)
	assert.True(t, cfg.PPM.Storage.CSV.AtomicWrite)

	dbType, dsn := cfg.ResolveDatabase(cfg.PPM.Entities.Applicant)
	assert.Equal(t, "sqlite", dbType)
	assert.Equal(t, "./data/ppm.db", dsn)
	assert.Equal(t, filepath.Join("data", "addresses.csv"), cfg.CSVPath(EntityAddress, cfg.PPM.Entities.Address))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.PPM.Entities.Applicant.Backend)
	assert.Equal(t, BackendCSV, cfg.PPM.Entities.Address.Backend)
	assert.Equal(t, BackendDatabase, cfg.PPM.Entities.Contact.Backend)
	assert.Equal(t, "address.csv", cfg.CSVPath(EntityAddress, cfg.PPM.Entities.Address))

	dbType, dsn := cfg.ResolveDatabase(cfg.PPM.Entities.Contact)
	assert.Equal(t, "sqlite", dbType)
	assert.Equal(t, "contacts.db", dsn)
	assert.Equal(t, 8080, cfg.PPM.Server.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "ppm.yaml")
	configContent := `
ppm:
  storage:
    csv:
      dir: "${PPM_TEST_CSV_DIR}"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("PPM_TEST_CSV_DIR", "/var/lib/ppm")
	t.Setenv(EnvServerPort, "18080")
	t.Setenv(EnvDatabaseDSN, "/tmp/override.db")

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/ppm", cfg.PPM.Storage.CSV.Dir)
	assert.Equal(t, 18080, cfg.PPM.Server.Port)
	assert.Equal(t, "/tmp/override.db", cfg.GetDatabaseDSN())
}

func TestLoad_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	badYAML := filepath.Join(tmpDir, "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("ppm: [unclosed"), 0644))
	_, err := Load(badYAML)
	assert.Error(t, err)

	badBackend := filepath.Join(tmpDir, "backend.yaml")
	require.NoError(t, os.WriteFile(badBackend, []byte("ppm:\n  entities:\n    contact:\n      backend: redis\n"), 0644))
	_, err = Load(badBackend)
	assert.Error(t, err)

	t.Setenv(EnvServerPort, "not-a-port")
	_, err = Load(filepath.Join(tmpDir, "absent.yaml"))
	assert.Error(t, err)
}

func TestPPMConfig_LogFlags(t *testing.T) {
	cfg := Default()
	assert.Equal(t, log.LstdFlags, cfg.LogFlags())

	cfg.PPM.General.LogLevel = "debug"
	assert.NotZero(t, cfg.LogFlags()&log.Lshortfile)
}
