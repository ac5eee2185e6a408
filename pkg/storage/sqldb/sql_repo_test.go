package sqldb

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/LENAX/ppm/pkg/model"
	"github.com/LENAX/ppm/pkg/storage"
	"github.com/LENAX/ppm/pkg/storage/dao"
	"github.com/LENAX/ppm/pkg/storage/sqlite"
	"github.com/LENAX/ppm/pkg/storage/storagetest"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, path string) *sqlx.DB {
	t.Helper()
	db, err := Open(sqlite.NewSQLiteDialect(), path, PoolConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newContactRepo(t *testing.T, db *sqlx.DB, opts ...Option) *SQLRepo[model.Contact, dao.ContactDAO] {
	t.Helper()
	repo, err := NewSQLRepo(context.Background(), db, sqlite.NewSQLiteDialect(), ContactTable(), opts...)
	require.NoError(t, err)
	return repo
}

func sampleContact(i int) model.Contact {
	return model.Contact{
		FirstName:    fmt.Sprintf("First%d", i),
		LastName:     fmt.Sprintf("Last%d", i),
		Phone:        fmt.Sprintf("555-000-%04d", i),
		Relationship: "Guardian",
	}
}

func TestSQLRepo_Contract(t *testing.T) {
	t.Run("contact", func(t *testing.T) {
		storagetest.Run(t, storagetest.Harness[model.Contact]{
			New: func(t *testing.T) storage.Repository[model.Contact] {
				db := openTestDB(t, filepath.Join(t.TempDir(), "contacts.db"))
				return newContactRepo(t, db, WithSeedMode(SeedNever))
			},
			Sample: sampleContact,
		})
	})

	t.Run("applicant", func(t *testing.T) {
		storagetest.Run(t, storagetest.Harness[model.Applicant]{
			New: func(t *testing.T) storage.Repository[model.Applicant] {
				db := openTestDB(t, filepath.Join(t.TempDir(), "ppm.db"))
				repo, err := NewSQLRepo(context.Background(), db, sqlite.NewSQLiteDialect(), ApplicantTable(), WithSeedMode(SeedNever))
				require.NoError(t, err)
				return repo
			},
			Sample: func(i int) model.Applicant {
				return model.Applicant{
					FirstName:      fmt.Sprintf("F%d", i),
					LastName:       fmt.Sprintf("L%d", i),
					DoB:            "2000-05-19",
					Gender:         "Female",
					ResidencyState: "Idaho",
					IsActive:       i%2 == 0,
				}
			},
		})
	})

	t.Run("address", func(t *testing.T) {
		storagetest.Run(t, storagetest.Harness[model.Address]{
			New: func(t *testing.T) storage.Repository[model.Address] {
				db := openTestDB(t, filepath.Join(t.TempDir(), "ppm.db"))
				repo, err := NewSQLRepo(context.Background(), db, sqlite.NewSQLiteDialect(), AddressTable())
				require.NoError(t, err)
				return repo
			},
			Sample: func(i int) model.Address {
				return model.Address{
					StreetNo: fmt.Sprintf("%d", i+1), Street: "Elm", City: "Canyon", State: "TX",
					Zip: "79015", Type: "Home", OwnerID: int64(i + 7), OwnerType: "Contact",
				}
			},
		})
	})
}

func TestSQLRepo_FreshDatabaseScenario(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t, filepath.Join(t.TempDir(), "contacts.db"))
	repo := newContactRepo(t, db)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 10)

	fixtures := model.ContactFixtures()
	for i, c := range list {
		assert.Equal(t, fixtures[i].WithID(int64(i+1)), c)
	}

	created, err := repo.Create(ctx, sampleContact(1))
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
}

func TestSQLRepo_ReinitDoesNotDuplicateFixtures(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "contacts.db")

	db := openTestDB(t, path)
	_ = newContactRepo(t, db)
	require.NoError(t, db.Close())

	db2 := openTestDB(t, path)
	repo := newContactRepo(t, db2)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 10)
}

func TestSQLRepo_SeedOnceSurvivesDeletes(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t, filepath.Join(t.TempDir(), "contacts.db"))
	repo := newContactRepo(t, db)

	for id := int64(1); id <= 5; id++ {
		require.NoError(t, repo.Delete(ctx, id))
	}

	// 再次初始化不应重新写入预置数据
	repo = newContactRepo(t, db)
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestSQLRepo_SeedThresholdLegacyBehavior(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t, filepath.Join(t.TempDir(), "contacts.db"))
	repo := newContactRepo(t, db, WithSeedMode(SeedBelowThreshold))

	require.NoError(t, repo.Delete(ctx, 1))

	repo = newContactRepo(t, db, WithSeedMode(SeedBelowThreshold))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 19, "行数少于10时旧策略会重新写入全部预置数据")
}

func TestSQLRepo_AdoptsPopulatedDatabase(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t, filepath.Join(t.TempDir(), "contacts.db"))

	// 模拟旧版本创建的库：有数据但没有seed_marker
	_, err := db.Exec(ContactTable().createSQL(sqlite.NewSQLiteDialect()))
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO contact (First_Name, Last_Name, Phone, Applicant_Relationship) VALUES ('Old', 'Row', '555', 'Parent')`)
	require.NoError(t, err)

	repo := newContactRepo(t, db)
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Old", list[0].FirstName)

	var rows int
	require.NoError(t, db.Get(&rows, `SELECT seeded_rows FROM seed_marker WHERE table_name = 'contact'`))
	assert.Equal(t, 0, rows)
}

func TestSQLRepo_SharedDatabase(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t, filepath.Join(t.TempDir(), "ppm.db"))
	d := sqlite.NewSQLiteDialect()

	contacts, err := NewSQLRepo(ctx, db, d, ContactTable())
	require.NoError(t, err)
	applicants, err := NewSQLRepo(ctx, db, d, ApplicantTable())
	require.NoError(t, err)

	cl, err := contacts.List(ctx)
	require.NoError(t, err)
	al, err := applicants.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cl, 10)
	assert.Len(t, al, 10)
	assert.False(t, al[1].IsActive, "Bob的IsActive应为false")

	// 非自有连接，Close不关闭数据库
	require.NoError(t, contacts.Close())
	assert.NoError(t, db.Ping())
}

func TestSQLRepo_UpdateMissingHasNoSideEffect(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t, filepath.Join(t.TempDir(), "contacts.db"))
	repo := newContactRepo(t, db)

	_, err := repo.Update(ctx, 999, sampleContact(1))
	assert.True(t, storage.IsNotFound(err))

	n, err := repo.count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

func TestNewContactRepoFromDSN(t *testing.T) {
	ctx := context.Background()
	repo, err := NewContactRepoFromDSN(ctx, "sqlite", filepath.Join(t.TempDir(), "contacts.db"))
	require.NoError(t, err)

	c, err := repo.Read(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Charlie", c.FirstName)

	require.NoError(t, repo.Close())

	_, err = NewContactRepoFromDSN(ctx, "oracle", "x")
	assert.Error(t, err)
}
