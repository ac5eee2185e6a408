package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 记录不存在或集合为空
	ErrNotFound = errors.New("record not found")
	// ErrConflict 指定的ID已存在
	ErrConflict = errors.New("record already exists")
)

// RecordError 携带实体、ID和操作上下文的错误（对外导出）
type RecordError struct {
	Entity string
	ID     int64 // 0表示针对整个集合
	Op     string
	Err    error
}

func (e *RecordError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotFound) && e.ID == 0:
		return fmt.Sprintf("%s: no %s records found", e.Op, e.Entity)
	case errors.Is(e.Err, ErrNotFound):
		return fmt.Sprintf("%s: %s %d was not found", e.Op, e.Entity, e.ID)
	case errors.Is(e.Err, ErrConflict):
		return fmt.Sprintf("%s: %s %d already exists", e.Op, e.Entity, e.ID)
	default:
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Err)
	}
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// NotFound 构造记录不存在错误
func NotFound(entity, op string, id int64) error {
	return &RecordError{Entity: entity, ID: id, Op: op, Err: ErrNotFound}
}

// Empty 构造集合为空错误
func Empty(entity string) error {
	return &RecordError{Entity: entity, Op: "list", Err: ErrNotFound}
}

// Conflict 构造ID冲突错误
func Conflict(entity string, id int64) error {
	return &RecordError{Entity: entity, ID: id, Op: "insert", Err: ErrConflict}
}

// IsNotFound 判断是否为记录不存在错误
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict 判断是否为ID冲突错误
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
