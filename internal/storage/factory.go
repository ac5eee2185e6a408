package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/LENAX/ppm/pkg/config"
	"github.com/LENAX/ppm/pkg/model"
	"github.com/LENAX/ppm/pkg/storage"
	"github.com/LENAX/ppm/pkg/storage/csvfile"
	"github.com/LENAX/ppm/pkg/storage/dao"
	"github.com/LENAX/ppm/pkg/storage/memory"
	"github.com/LENAX/ppm/pkg/storage/sqldb"
	"github.com/jmoiron/sqlx"
)

// Repositories 各实体的Repository集合（内部使用）
type Repositories struct {
	Applicants storage.Repository[model.Applicant]
	Addresses  storage.Repository[model.Address]
	Contacts   storage.Repository[model.Contact]

	// Backends 实体名 -> 实际使用的后端描述，如"csv(./address.csv)"
	Backends map[string]string

	dbs map[string]*sqlx.DB
}

// NewRepositories 按配置为每个实体创建Repository（内部方法）
// 相同数据库类型和DSN的实体共享一个连接池
func NewRepositories(ctx context.Context, cfg *config.PPMConfig) (*Repositories, error) {
	f := &factory{cfg: cfg, dbs: make(map[string]*sqlx.DB), backends: make(map[string]string)}
	repos := &Repositories{Backends: f.backends, dbs: f.dbs}

	var err error
	if repos.Applicants, err = build[model.Applicant, dao.ApplicantDAO](ctx, f, config.EntityApplicant, model.ApplicantFixtures(),
		csvfile.ApplicantCodec{}, sqldb.ApplicantTable()); err != nil {
		repos.Close()
		return nil, err
	}
	if repos.Addresses, err = build[model.Address, dao.AddressDAO](ctx, f, config.EntityAddress, model.AddressFixtures(),
		csvfile.AddressCodec{}, sqldb.AddressTable()); err != nil {
		repos.Close()
		return nil, err
	}
	if repos.Contacts, err = build[model.Contact, dao.ContactDAO](ctx, f, config.EntityContact, model.ContactFixtures(),
		csvfile.ContactCodec{}, sqldb.ContactTable()); err != nil {
		repos.Close()
		return nil, err
	}
	return repos, nil
}

// Close 关闭全部Repository和数据库连接
func (r *Repositories) Close() error {
	var errs []error
	for _, c := range []interface{ Close() error }{r.Applicants, r.Addresses, r.Contacts} {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	for key, db := range r.dbs {
		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("关闭数据库%s失败: %w", key, err))
		}
	}
	r.dbs = nil
	return errors.Join(errs...)
}

// Ping 检查所有数据库连接
func (r *Repositories) Ping() error {
	for key, db := range r.dbs {
		if err := db.Ping(); err != nil {
			return fmt.Errorf("数据库%s不可用: %w", key, err)
		}
	}
	return nil
}

// factory 构建过程中的共享状态（内部实现）
type factory struct {
	cfg      *config.PPMConfig
	dbs      map[string]*sqlx.DB
	backends map[string]string
}

// build 按实体配置选择后端
func build[T storage.Record[T], D any](ctx context.Context, f *factory, entity string, fixtures []T,
	codec csvfile.Codec[T], table *sqldb.Table[T, D]) (storage.Repository[T], error) {
	e, ok := f.cfg.Entity(entity)
	if !ok {
		return nil, fmt.Errorf("unknown entity: %s", entity)
	}

	switch e.Backend {
	case config.BackendMemory:
		log.Printf("[storage] %s 使用内存存储", entity)
		f.backends[entity] = config.BackendMemory
		return memory.NewMemoryRepo(memory.WithFixtures(fixtures)), nil

	case config.BackendCSV:
		path := f.cfg.CSVPath(entity, e)
		log.Printf("[storage] %s 使用CSV文件 %s", entity, path)
		repo, err := csvfile.NewCSVRepo(path, codec, csvfile.WithAtomicWrite(f.cfg.PPM.Storage.CSV.AtomicWrite))
		if err != nil {
			return nil, fmt.Errorf("create csv repository failed: %w", err)
		}
		f.backends[entity] = fmt.Sprintf("csv(%s)", path)
		return repo, nil

	case config.BackendDatabase, config.BackendSQLite, config.BackendMySQL, config.BackendPostgres:
		dbType, dsn := f.cfg.ResolveDatabase(e)
		db, dialect, err := f.openDB(dbType, dsn)
		if err != nil {
			return nil, err
		}
		seed, err := sqldb.ParseSeedMode(f.cfg.PPM.Storage.Database.Seed)
		if err != nil {
			return nil, err
		}
		log.Printf("[storage] %s 使用%s数据库", entity, dialect.Name())
		repo, err := sqldb.NewSQLRepo(ctx, db, dialect, table, sqldb.WithSeedMode(seed))
		if err != nil {
			return nil, fmt.Errorf("create %s repository failed: %w", dbType, err)
		}
		// DSN可能含密码，只记录方言和表名
		f.backends[entity] = fmt.Sprintf("%s(%s)", dialect.Name(), table.Name)
		return repo, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", e.Backend)
	}
}

// openDB 返回共享连接池，相同类型和DSN只打开一次
func (f *factory) openDB(dbType, dsn string) (*sqlx.DB, storage.Dialect, error) {
	dialect, err := sqldb.DialectFor(dbType)
	if err != nil {
		return nil, nil, err
	}
	key := dialect.Name() + "|" + dsn
	if db, ok := f.dbs[key]; ok {
		return db, dialect, nil
	}

	dbCfg := f.cfg.PPM.Storage.Database
	db, err := sqldb.Open(dialect, dsn, sqldb.PoolConfig{
		MaxOpenConns:    dbCfg.MaxOpenConns,
		MaxIdleConns:    dbCfg.MaxIdleConns,
		ConnMaxLifetime: dbCfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create %s repository failed: %w", dbType, err)
	}
	f.dbs[key] = db
	return db, dialect, nil
}
