package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/LENAX/ppm/pkg/model"
	"github.com/LENAX/ppm/pkg/storage"
)

// MemoryRepo 进程内存Repository实现（对外导出）
// 数据只在进程生命周期内有效，进程退出即丢失
type MemoryRepo[T storage.Record[T]] struct {
	mu      sync.Mutex
	entity  string
	records map[int64]T
	nextID  int64
}

// Option MemoryRepo构造选项
type Option[T storage.Record[T]] func(*MemoryRepo[T])

// WithFixtures 构造时按顺序载入预置记录，ID从1开始分配
func WithFixtures[T storage.Record[T]](fixtures []T) Option[T] {
	return func(r *MemoryRepo[T]) {
		for _, f := range fixtures {
			r.records[r.nextID] = f.WithID(r.nextID)
			r.nextID++
		}
	}
}

// NewMemoryRepo 创建内存Repository实例（对外导出）
func NewMemoryRepo[T storage.Record[T]](opts ...Option[T]) *MemoryRepo[T] {
	var zero T
	r := &MemoryRepo[T]{
		entity:  zero.Entity(),
		records: make(map[int64]T),
		nextID:  1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List 返回全部记录（按ID排序）
func (r *MemoryRepo[T]) List(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.records) == 0 {
		return nil, storage.Empty(r.entity)
	}

	result := make([]T, 0, len(r.records))
	for _, rec := range r.records {
		result = append(result, rec)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].GetID() < result[j].GetID()
	})
	return result, nil
}

// Create 使用当前计数器值作为ID保存记录
func (r *MemoryRepo[T]) Create(ctx context.Context, record T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := record.WithID(r.nextID)
	r.records[r.nextID] = stored
	r.nextID++
	return stored, nil
}

// Insert 使用调用方指定的ID保存记录
// ID已存在时返回ErrConflict；ID<=0时按Create分配；计数器会跳过该ID
func (r *MemoryRepo[T]) Insert(ctx context.Context, record T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := record.GetID()
	if id <= 0 {
		id = r.nextID
		record = record.WithID(id)
	}
	if _, ok := r.records[id]; ok {
		var zero T
		return zero, storage.Conflict(r.entity, id)
	}

	r.records[id] = record
	if id >= r.nextID {
		r.nextID = id + 1
	}
	return record, nil
}

// Read 根据ID查询记录
func (r *MemoryRepo[T]) Read(ctx context.Context, id int64) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		var zero T
		return zero, storage.NotFound(r.entity, "read", id)
	}
	return rec, nil
}

// Update 整体替换记录，保留原ID
func (r *MemoryRepo[T]) Update(ctx context.Context, id int64, record T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		var zero T
		return zero, storage.NotFound(r.entity, "update", id)
	}

	stored := record.WithID(id)
	r.records[id] = stored
	return stored, nil
}

// Delete 删除记录
func (r *MemoryRepo[T]) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return storage.NotFound(r.entity, "delete", id)
	}
	delete(r.records, id)
	return nil
}

// Len 返回当前记录数
func (r *MemoryRepo[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Close 内存实现无需释放资源
func (r *MemoryRepo[T]) Close() error {
	return nil
}

// 确保实现接口
var (
	_ storage.Repository[model.Applicant] = (*MemoryRepo[model.Applicant])(nil)
	_ storage.Inserter[model.Applicant]   = (*MemoryRepo[model.Applicant])(nil)
)
