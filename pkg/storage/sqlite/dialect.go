package sqlite

import (
	"strings"

	"github.com/LENAX/ppm/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDialect SQLite方言实现（对外导出）
type SQLiteDialect struct{}

// NewSQLiteDialect 创建SQLite方言实例
func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

// Name 返回方言名称
func (d *SQLiteDialect) Name() string {
	return "sqlite"
}

// DriverName 返回驱动名称
func (d *SQLiteDialect) DriverName() string {
	return "sqlite3"
}

// NormalizeDSN 补全忙等待参数，空DSN使用共享内存库
func (d *SQLiteDialect) NormalizeDSN(dsn string) string {
	if dsn == "" {
		return "file::memory:?cache=shared"
	}
	if !strings.Contains(dsn, "_busy_timeout") {
		if strings.Contains(dsn, "?") {
			dsn += "&_busy_timeout=30000"
		} else {
			dsn += "?_busy_timeout=30000"
		}
	}
	return dsn
}

// ConfigureDB 返回SQLite配置SQL
func (d *SQLiteDialect) ConfigureDB() []string {
	return []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=30000;",
		"PRAGMA synchronous=NORMAL;",
	}
}

// SingleConnection SQLite使用单连接
func (d *SQLiteDialect) SingleConnection() bool {
	return true
}

// QuoteIdent 使用双引号
func (d *SQLiteDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// AutoIncrementKeyword 返回SQLite自增关键字
func (d *SQLiteDialect) AutoIncrementKeyword() string {
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// ReturningClause SQLite使用LastInsertId
func (d *SQLiteDialect) ReturningClause(idColumn string) string {
	return ""
}

// IntegerType 返回SQLite整数类型
func (d *SQLiteDialect) IntegerType() string {
	return "INTEGER"
}

// BooleanType 返回SQLite布尔类型
func (d *SQLiteDialect) BooleanType() string {
	return "INTEGER"
}

// TextType 返回SQLite文本类型
func (d *SQLiteDialect) TextType() string {
	return "TEXT"
}

// TableSuffix SQLite无需额外声明
func (d *SQLiteDialect) TableSuffix() string {
	return ""
}

// 确保实现接口
var _ storage.Dialect = (*SQLiteDialect)(nil)
