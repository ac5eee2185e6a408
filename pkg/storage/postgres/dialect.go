package postgres

import (
	"strings"

	"github.com/LENAX/ppm/pkg/storage"
	_ "github.com/lib/pq"
)

// PostgresDialect PostgreSQL方言实现（对外导出）
type PostgresDialect struct{}

// NewPostgresDialect 创建PostgreSQL方言实例
func NewPostgresDialect() *PostgresDialect {
	return &PostgresDialect{}
}

// Name 返回方言名称
func (d *PostgresDialect) Name() string {
	return "postgres"
}

// DriverName 返回驱动名称
func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

// NormalizeDSN 原样返回
func (d *PostgresDialect) NormalizeDSN(dsn string) string {
	return dsn
}

// ConfigureDB 返回PostgreSQL配置SQL
func (d *PostgresDialect) ConfigureDB() []string {
	return []string{
		"SET timezone = 'UTC';",
	}
}

// SingleConnection PostgreSQL使用连接池
func (d *PostgresDialect) SingleConnection() bool {
	return false
}

// QuoteIdent 使用双引号，避免未加引号的标识符被折叠为小写
func (d *PostgresDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// AutoIncrementKeyword 返回PostgreSQL自增关键字
func (d *PostgresDialect) AutoIncrementKeyword() string {
	return "BIGSERIAL PRIMARY KEY"
}

// ReturningClause PostgreSQL不支持LastInsertId，使用RETURNING
func (d *PostgresDialect) ReturningClause(idColumn string) string {
	return " RETURNING " + d.QuoteIdent(idColumn)
}

// IntegerType 返回PostgreSQL整数类型
func (d *PostgresDialect) IntegerType() string {
	return "BIGINT"
}

// BooleanType 返回PostgreSQL布尔类型
func (d *PostgresDialect) BooleanType() string {
	return "BOOLEAN"
}

// TextType 返回PostgreSQL文本类型
func (d *PostgresDialect) TextType() string {
	return "TEXT"
}

// TableSuffix PostgreSQL无需额外声明
func (d *PostgresDialect) TableSuffix() string {
	return ""
}

// 确保实现接口
var _ storage.Dialect = (*PostgresDialect)(nil)
