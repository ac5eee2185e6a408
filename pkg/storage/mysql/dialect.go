package mysql

import (
	"strings"

	"github.com/LENAX/ppm/pkg/storage"
	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect MySQL方言实现（对外导出）
type MySQLDialect struct{}

// NewMySQLDialect 创建MySQL方言实例
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

// Name 返回方言名称
func (d *MySQLDialect) Name() string {
	return "mysql"
}

// DriverName 返回驱动名称
func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

// NormalizeDSN 确保DSN包含parseTime=true和clientFoundRows=true
// dsn格式: user:password@tcp(host:port)/dbname?parseTime=true
// clientFoundRows使UPDATE在值未变化时仍返回匹配行数
func (d *MySQLDialect) NormalizeDSN(dsn string) string {
	for _, param := range []string{"parseTime=true", "clientFoundRows=true"} {
		if strings.Contains(dsn, param) {
			continue
		}
		if strings.Contains(dsn, "?") {
			dsn += "&" + param
		} else {
			dsn += "?" + param
		}
	}
	return dsn
}

// ConfigureDB 返回MySQL配置SQL
func (d *MySQLDialect) ConfigureDB() []string {
	return []string{
		"SET SESSION sql_mode='STRICT_TRANS_TABLES,NO_ZERO_IN_DATE,NO_ZERO_DATE,ERROR_FOR_DIVISION_BY_ZERO,NO_ENGINE_SUBSTITUTION';",
	}
}

// SingleConnection MySQL使用连接池
func (d *MySQLDialect) SingleConnection() bool {
	return false
}

// QuoteIdent 使用反引号
func (d *MySQLDialect) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// AutoIncrementKeyword 返回MySQL自增关键字
func (d *MySQLDialect) AutoIncrementKeyword() string {
	return "BIGINT PRIMARY KEY AUTO_INCREMENT"
}

// ReturningClause MySQL使用LastInsertId
func (d *MySQLDialect) ReturningClause(idColumn string) string {
	return ""
}

// IntegerType 返回MySQL整数类型
func (d *MySQLDialect) IntegerType() string {
	return "BIGINT"
}

// BooleanType 返回MySQL布尔类型
func (d *MySQLDialect) BooleanType() string {
	return "TINYINT(1)"
}

// TextType 返回MySQL文本类型
func (d *MySQLDialect) TextType() string {
	return "VARCHAR(255)"
}

// TableSuffix 添加引擎声明
func (d *MySQLDialect) TableSuffix() string {
	return " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"
}

// 确保实现接口
var _ storage.Dialect = (*MySQLDialect)(nil)
