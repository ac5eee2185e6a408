package storage

// Dialect SQL方言接口（对外导出）
// 封装不同数据库的SQL语法差异
type Dialect interface {
	// Name 返回方言名称（如 "sqlite", "mysql", "postgres"）
	Name() string

	// DriverName 返回database/sql驱动名称
	DriverName() string

	// NormalizeDSN 补全DSN中必需的参数
	NormalizeDSN(dsn string) string

	// ConfigureDB 配置数据库连接（如SQLite的PRAGMA）
	// 返回需要执行的SQL语句列表
	ConfigureDB() []string

	// SingleConnection 是否只允许一个打开的连接
	// SQLite内存库和写锁要求所有调用共享同一连接
	SingleConnection() bool

	// QuoteIdent 为表名/列名加引号，保留大小写
	QuoteIdent(name string) string

	// AutoIncrementKeyword 返回自增主键列定义
	// SQLite: INTEGER PRIMARY KEY AUTOINCREMENT
	// MySQL: BIGINT PRIMARY KEY AUTO_INCREMENT
	// PostgreSQL: BIGSERIAL PRIMARY KEY
	AutoIncrementKeyword() string

	// ReturningClause 返回INSERT获取自增ID的子句
	// 返回空字符串表示使用LastInsertId
	ReturningClause(idColumn string) string

	// IntegerType 返回整数类型
	IntegerType() string

	// BooleanType 返回布尔类型
	BooleanType() string

	// TextType 返回文本类型
	TextType() string

	// TableSuffix 返回CREATE TABLE语句的结尾（如MySQL的ENGINE声明）
	TableSuffix() string
}
