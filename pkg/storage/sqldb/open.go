package sqldb

import (
	"fmt"
	"log"
	"time"

	"github.com/LENAX/ppm/pkg/storage"
	"github.com/LENAX/ppm/pkg/storage/mysql"
	"github.com/LENAX/ppm/pkg/storage/postgres"
	"github.com/LENAX/ppm/pkg/storage/sqlite"
	"github.com/jmoiron/sqlx"
)

// PoolConfig 连接池配置
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DialectFor 根据数据库类型返回方言
func DialectFor(dbType string) (storage.Dialect, error) {
	switch dbType {
	case "sqlite", "sqlite3":
		return sqlite.NewSQLiteDialect(), nil
	case "mysql":
		return mysql.NewMySQLDialect(), nil
	case "postgres", "postgresql":
		return postgres.NewPostgresDialect(), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

// Open 打开数据库连接并应用方言配置
func Open(dialect storage.Dialect, dsn string, pool PoolConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(dialect.DriverName(), dialect.NormalizeDSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}

	if dialect.SingleConnection() {
		db.SetMaxOpenConns(1)
	} else {
		if pool.MaxOpenConns > 0 {
			db.SetMaxOpenConns(pool.MaxOpenConns)
		}
		if pool.MaxIdleConns > 0 {
			db.SetMaxIdleConns(pool.MaxIdleConns)
		}
	}
	if pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("数据库连接失败: %w", err)
	}

	for _, stmt := range dialect.ConfigureDB() {
		if _, err := db.Exec(stmt); err != nil {
			// 配置失败不影响使用
			log.Printf("[sqldb] %s 配置语句执行失败: %v", dialect.Name(), err)
		}
	}

	return db, nil
}
