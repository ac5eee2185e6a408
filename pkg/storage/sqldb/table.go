package sqldb

import (
	"fmt"
	"strings"

	"github.com/LENAX/ppm/pkg/storage"
)

// ColumnKind 列类型
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInteger
	KindBoolean
)

// Column 数据列定义（不含主键）
type Column struct {
	Name     string
	Kind     ColumnKind
	Nullable bool
}

// Table 单表描述：表结构、记录与DAO的转换、预置数据
// D为带db标签的DAO结构
type Table[T storage.Record[T], D any] struct {
	Name     string
	IDColumn string
	Columns  []Column
	ToDAO    func(T) D
	FromDAO  func(D) T
	Fixtures []T
}

// createSQL 生成CREATE TABLE IF NOT EXISTS语句
func (t *Table[T, D]) createSQL(d storage.Dialect) string {
	defs := make([]string, 0, len(t.Columns)+1)
	defs = append(defs, d.QuoteIdent(t.IDColumn)+" "+d.AutoIncrementKeyword())
	for _, c := range t.Columns {
		def := d.QuoteIdent(c.Name) + " " + columnType(d, c.Kind)
		if !c.Nullable {
			def += " NOT NULL"
		}
		defs = append(defs, def)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)%s",
		d.QuoteIdent(t.Name), strings.Join(defs, ",\n\t"), d.TableSuffix())
}

// selectColumns 返回包含主键的列列表
func (t *Table[T, D]) selectColumns(d storage.Dialect) string {
	cols := make([]string, 0, len(t.Columns)+1)
	cols = append(cols, d.QuoteIdent(t.IDColumn))
	for _, c := range t.Columns {
		cols = append(cols, d.QuoteIdent(c.Name))
	}
	return strings.Join(cols, ", ")
}

// insertSQL 生成命名参数INSERT语句
func (t *Table[T, D]) insertSQL(d storage.Dialect) string {
	cols := make([]string, len(t.Columns))
	params := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = d.QuoteIdent(c.Name)
		params[i] = ":" + c.Name
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)%s",
		d.QuoteIdent(t.Name), strings.Join(cols, ", "), strings.Join(params, ", "), d.ReturningClause(t.IDColumn))
}

// updateSQL 生成命名参数全列UPDATE语句
func (t *Table[T, D]) updateSQL(d storage.Dialect) string {
	sets := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		sets[i] = fmt.Sprintf("%s = :%s", d.QuoteIdent(c.Name), c.Name)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = :%s",
		d.QuoteIdent(t.Name), strings.Join(sets, ", "), d.QuoteIdent(t.IDColumn), t.IDColumn)
}

func columnType(d storage.Dialect, k ColumnKind) string {
	switch k {
	case KindInteger:
		return d.IntegerType()
	case KindBoolean:
		return d.BooleanType()
	default:
		return d.TextType()
	}
}
