package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/LENAX/ppm/pkg/model"
	"github.com/LENAX/ppm/pkg/storage"
	"github.com/LENAX/ppm/pkg/storage/dao"
	"github.com/jmoiron/sqlx"
)

// SQLRepo 单表关系数据库Repository实现（对外导出）
// ID由数据库自增列分配。*sqlx.DB为连接池，每次调用从池中取连接，
// 可被多个goroutine并发使用；SQLite固定为单连接，写入由该连接串行化
type SQLRepo[T storage.Record[T], D any] struct {
	db       *sqlx.DB
	dialect  storage.Dialect
	table    *Table[T, D]
	entity   string
	seedMode SeedMode
	ownsDB   bool
}

// Option SQLRepo构造选项
type Option func(*options)

type options struct {
	seedMode SeedMode
	ownsDB   bool
}

// WithSeedMode 设置预置数据写入策略
func WithSeedMode(mode SeedMode) Option {
	return func(o *options) {
		o.seedMode = mode
	}
}

// WithOwnedDB Close时一并关闭数据库连接
func WithOwnedDB() Option {
	return func(o *options) {
		o.ownsDB = true
	}
}

// NewSQLRepo 创建关系数据库Repository实例（对外导出）
// 表不存在时自动创建，并按策略写入预置数据
func NewSQLRepo[T storage.Record[T], D any](ctx context.Context, db *sqlx.DB, dialect storage.Dialect, table *Table[T, D], opts ...Option) (*SQLRepo[T, D], error) {
	o := &options{seedMode: SeedOnce}
	for _, opt := range opts {
		opt(o)
	}

	var zero T
	repo := &SQLRepo[T, D]{
		db:       db,
		dialect:  dialect,
		table:    table,
		entity:   zero.Entity(),
		seedMode: o.seedMode,
		ownsDB:   o.ownsDB,
	}
	if err := repo.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("初始化表结构失败: %w", err)
	}
	if err := repo.seed(ctx); err != nil {
		return nil, fmt.Errorf("初始化预置数据失败: %w", err)
	}
	return repo, nil
}

// NewContactRepoFromDSN 通过DSN创建contact表Repository（对外导出）
func NewContactRepoFromDSN(ctx context.Context, dbType, dsn string, opts ...Option) (*SQLRepo[model.Contact, dao.ContactDAO], error) {
	dialect, err := DialectFor(dbType)
	if err != nil {
		return nil, err
	}
	db, err := Open(dialect, dsn, PoolConfig{})
	if err != nil {
		return nil, err
	}
	repo, err := NewSQLRepo(ctx, db, dialect, ContactTable(), append(opts, WithOwnedDB())...)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// Close 关闭自有的数据库连接
func (r *SQLRepo[T, D]) Close() error {
	if r.ownsDB && r.db != nil {
		return r.db.Close()
	}
	return nil
}

// initSchema 初始化数据库表结构
func (r *SQLRepo[T, D]) initSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, r.table.createSQL(r.dialect))
	return err
}

// List 查询全部记录（按ID排序）
func (r *SQLRepo[T, D]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		r.table.selectColumns(r.dialect), r.dialect.QuoteIdent(r.table.Name), r.dialect.QuoteIdent(r.table.IDColumn))

	var rows []D
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("查询%s失败: %w", r.entity, err)
	}
	if len(rows) == 0 {
		return nil, storage.Empty(r.entity)
	}

	result := make([]T, len(rows))
	for i, row := range rows {
		result[i] = r.table.FromDAO(row)
	}
	return result, nil
}

// Create 插入记录，ID由数据库分配
func (r *SQLRepo[T, D]) Create(ctx context.Context, record T) (T, error) {
	var zero T
	id, err := r.insertWith(ctx, r.db, r.table.insertSQL(r.dialect), record)
	if err != nil {
		return zero, fmt.Errorf("保存%s失败: %w", r.entity, err)
	}
	return record.WithID(id), nil
}

// Read 根据ID查询
func (r *SQLRepo[T, D]) Read(ctx context.Context, id int64) (T, error) {
	var zero T
	query := r.db.Rebind(fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
		r.table.selectColumns(r.dialect), r.dialect.QuoteIdent(r.table.Name), r.dialect.QuoteIdent(r.table.IDColumn)))

	var row D
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, storage.NotFound(r.entity, "read", id)
	}
	if err != nil {
		return zero, fmt.Errorf("查询%s失败: %w", r.entity, err)
	}
	return r.table.FromDAO(row), nil
}

// Update 按ID全列更新，影响行数为0时返回ErrNotFound
func (r *SQLRepo[T, D]) Update(ctx context.Context, id int64, record T) (T, error) {
	var zero T
	stored := record.WithID(id)

	res, err := sqlx.NamedExecContext(ctx, r.db, r.table.updateSQL(r.dialect), r.table.ToDAO(stored))
	if err != nil {
		return zero, fmt.Errorf("更新%s失败: %w", r.entity, err)
	}
	if err := checkAffected(res, r.entity, "update", id); err != nil {
		return zero, err
	}
	return stored, nil
}

// Delete 按ID删除，影响行数为0时返回ErrNotFound
func (r *SQLRepo[T, D]) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(fmt.Sprintf("DELETE FROM %s WHERE %s = ?",
		r.dialect.QuoteIdent(r.table.Name), r.dialect.QuoteIdent(r.table.IDColumn)))

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("删除%s失败: %w", r.entity, err)
	}
	return checkAffected(res, r.entity, "delete", id)
}

// count 返回表中行数
func (r *SQLRepo[T, D]) count(ctx context.Context) (int, error) {
	var n int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", r.dialect.QuoteIdent(r.table.Name))
	if err := r.db.GetContext(ctx, &n, query); err != nil {
		return 0, fmt.Errorf("统计%s行数失败: %w", r.entity, err)
	}
	return n, nil
}

// insertWith 执行INSERT并返回自增ID
func (r *SQLRepo[T, D]) insertWith(ctx context.Context, ext sqlx.ExtContext, query string, record T) (int64, error) {
	arg := r.table.ToDAO(record)

	if r.dialect.ReturningClause(r.table.IDColumn) == "" {
		res, err := sqlx.NamedExecContext(ctx, ext, query, arg)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	rows, err := sqlx.NamedQueryContext(ctx, ext, query, arg)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, errors.New("INSERT未返回ID")
	}
	var id int64
	if err := rows.Scan(&id); err != nil {
		return 0, err
	}
	return id, rows.Err()
}

func checkAffected(res sql.Result, entity, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("获取影响行数失败: %w", err)
	}
	if n == 0 {
		return storage.NotFound(entity, op, id)
	}
	return nil
}

// 确保实现接口
var _ storage.Repository[model.Contact] = (*SQLRepo[model.Contact, dao.ContactDAO])(nil)
