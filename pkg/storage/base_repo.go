package storage

import "context"

// Record 可被Repository管理的记录（对外导出）
// ID由Repository分配，调用方不应自行设置
type Record[T any] interface {
	// GetID 返回记录ID
	GetID() int64
	// WithID 返回设置了ID的副本
	WithID(id int64) T
	// Entity 返回实体名称，用于错误信息和日志
	Entity() string
}

// Repository 通用CRUD接口（对外导出）
// 内存、CSV文件、关系数据库三种实现共享此契约
type Repository[T Record[T]] interface {
	// List 返回全部记录，存储为空时返回ErrNotFound
	List(ctx context.Context) ([]T, error)
	// Create 分配新ID并保存记录，返回保存后的记录
	Create(ctx context.Context, record T) (T, error)
	// Read 根据ID查询记录，不存在时返回ErrNotFound
	Read(ctx context.Context, id int64) (T, error)
	// Update 以新记录替换指定ID的记录，ID保持不变，不存在时返回ErrNotFound
	Update(ctx context.Context, id int64, record T) (T, error)
	// Delete 删除指定ID的记录，不存在时返回ErrNotFound
	Delete(ctx context.Context, id int64) error
	// Close 释放底层资源
	Close() error
}

// Inserter 支持调用方指定ID的写入（可选能力）
// ID已存在时返回ErrConflict
type Inserter[T Record[T]] interface {
	Insert(ctx context.Context, record T) (T, error)
}
