package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/LENAX/ppm/pkg/storage/dao"
	"github.com/jmoiron/sqlx"
)

// SeedMode 预置数据写入策略
type SeedMode string

const (
	// SeedOnce 每张表只写入一次，由seed_marker记录；默认策略
	SeedOnce SeedMode = "once"
	// SeedNever 从不写入预置数据
	SeedNever SeedMode = "never"
	// SeedBelowThreshold 行数少于预置数据条数时写入（旧版行为）
	SeedBelowThreshold SeedMode = "threshold"
)

// ParseSeedMode 解析配置中的写入策略
func ParseSeedMode(s string) (SeedMode, error) {
	switch SeedMode(s) {
	case "":
		return SeedOnce, nil
	case SeedOnce, SeedNever, SeedBelowThreshold:
		return SeedMode(s), nil
	default:
		return "", fmt.Errorf("unsupported seed mode: %s", s)
	}
}

const seedMarkerTable = "seed_marker"

// seed 按策略写入预置数据
func (r *SQLRepo[T, D]) seed(ctx context.Context) error {
	if r.seedMode == SeedNever || len(r.table.Fixtures) == 0 {
		return nil
	}

	count, err := r.count(ctx)
	if err != nil {
		return err
	}

	if r.seedMode == SeedBelowThreshold {
		if count < len(r.table.Fixtures) {
			return r.insertFixtures(ctx, false)
		}
		return nil
	}

	if err := r.ensureMarkerTable(ctx); err != nil {
		return err
	}
	marked, err := r.isMarked(ctx)
	if err != nil {
		return err
	}
	if marked {
		return nil
	}
	if count > 0 {
		// 已有数据的库视为已初始化，只补记标记
		log.Printf("[sqldb] %s 表已有%d行，跳过预置数据", r.table.Name, count)
		return r.mark(ctx, r.db, 0)
	}
	return r.insertFixtures(ctx, true)
}

func (r *SQLRepo[T, D]) insertFixtures(ctx context.Context, withMarker bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}
	defer tx.Rollback()

	query := r.table.insertSQL(r.dialect)
	for _, f := range r.table.Fixtures {
		if _, err := r.insertWith(ctx, tx, query, f); err != nil {
			return fmt.Errorf("写入预置数据失败: %w", err)
		}
	}
	if withMarker {
		if err := r.mark(ctx, tx, len(r.table.Fixtures)); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("提交事务失败: %w", err)
	}

	log.Printf("[sqldb] %s 表写入%d条预置数据", r.table.Name, len(r.table.Fixtures))
	return nil
}

func (r *SQLRepo[T, D]) ensureMarkerTable(ctx context.Context) error {
	d := r.dialect
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s %s PRIMARY KEY,\n\t%s %s NOT NULL,\n\t%s %s NOT NULL\n)%s",
		d.QuoteIdent(seedMarkerTable),
		d.QuoteIdent("table_name"), d.TextType(),
		d.QuoteIdent("seeded_at"), d.TextType(),
		d.QuoteIdent("seeded_rows"), d.IntegerType(),
		d.TableSuffix(),
	)
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("创建seed_marker表失败: %w", err)
	}
	return nil
}

func (r *SQLRepo[T, D]) isMarked(ctx context.Context) (bool, error) {
	d := r.dialect
	var marker dao.SeedMarkerDAO
	query := r.db.Rebind(fmt.Sprintf("SELECT %s, %s, %s FROM %s WHERE %s = ?",
		d.QuoteIdent("table_name"), d.QuoteIdent("seeded_at"), d.QuoteIdent("seeded_rows"),
		d.QuoteIdent(seedMarkerTable), d.QuoteIdent("table_name")))
	err := r.db.GetContext(ctx, &marker, query, r.table.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("查询seed_marker失败: %w", err)
	}
	return true, nil
}

func (r *SQLRepo[T, D]) mark(ctx context.Context, ext sqlx.ExtContext, rows int) error {
	d := r.dialect
	query := fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES (:table_name, :seeded_at, :seeded_rows)",
		d.QuoteIdent(seedMarkerTable), d.QuoteIdent("table_name"), d.QuoteIdent("seeded_at"), d.QuoteIdent("seeded_rows"))
	marker := dao.SeedMarkerDAO{
		TableName: r.table.Name,
		SeededAt:  time.Now().UTC().Format(time.RFC3339),
		Rows:      rows,
	}
	if _, err := sqlx.NamedExecContext(ctx, ext, query, marker); err != nil {
		return fmt.Errorf("写入seed_marker失败: %w", err)
	}
	return nil
}
