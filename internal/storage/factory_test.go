package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/LENAX/ppm/pkg/config"
	"github.com/LENAX/ppm/pkg/model"
	"github.com/LENAX/ppm/pkg/storage"
	"github.com/LENAX/ppm/pkg/storage/csvfile"
	"github.com/LENAX/ppm/pkg/storage/dao"
	"github.com/LENAX/ppm/pkg/storage/memory"
	"github.com/LENAX/ppm/pkg/storage/sqldb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.PPMConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.PPMConfig{}
	cfg.PPM.Storage.CSV.Dir = dir
	cfg.PPM.Storage.Database.DSN = filepath.Join(dir, "contacts.db")
	cfg.ApplyDefaults()
	return cfg
}

func TestNewRepositories_DefaultLayout(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	repos, err := NewRepositories(ctx, cfg)
	require.NoError(t, err)
	defer repos.Close()

	assert.IsType(t, &memory.MemoryRepo[model.Applicant]{}, repos.Applicants)
	assert.IsType(t, &csvfile.CSVRepo[model.Address]{}, repos.Addresses)
	assert.IsType(t, &sqldb.SQLRepo[model.Contact, dao.ContactDAO]{}, repos.Contacts)

	assert.Equal(t, map[string]string{
		config.EntityApplicant: "memory",
		config.EntityAddress:   "csv(" + filepath.Join(cfg.PPM.Storage.CSV.Dir, "address.csv") + ")",
		config.EntityContact:   "sqlite(contact)",
	}, repos.Backends)
}

func TestNewRepositories_DefaultBehaviour(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	repos, err := NewRepositories(ctx, cfg)
	require.NoError(t, err)
	defer repos.Close()

	applicants, err := repos.Applicants.List(ctx)
	require.NoError(t, err)
	assert.Len(t, applicants, 10)

	_, err = repos.Addresses.List(ctx)
	assert.True(t, storage.IsNotFound(err), "新建的address.csv只有表头")
	_, err = os.Stat(filepath.Join(cfg.PPM.Storage.CSV.Dir, "address.csv"))
	assert.NoError(t, err)

	contacts, err := repos.Contacts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 10)
}

func TestNewRepositories_SharedDatabase(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.PPM.Entities.Applicant.Backend = config.BackendSQLite
	cfg.PPM.Entities.Address.Backend = config.BackendDatabase

	repos, err := NewRepositories(ctx, cfg)
	require.NoError(t, err)

	assert.Len(t, repos.dbs, 1, "相同DSN只打开一个连接池")

	a, err := repos.Addresses.Create(ctx, model.Address{Street: "Elm", OwnerID: 1, OwnerType: "Applicant"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)

	applicants, err := repos.Applicants.List(ctx)
	require.NoError(t, err)
	assert.Len(t, applicants, 10)

	require.NoError(t, repos.Close())
}

func TestNewRepositories_UnsupportedDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.PPM.Entities.Contact.Backend = config.BackendDatabase
	cfg.PPM.Storage.Database.Type = "oracle"

	_, err := NewRepositories(context.Background(), cfg)
	assert.Error(t, err)
}
