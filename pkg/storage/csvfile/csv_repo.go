package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/LENAX/ppm/pkg/model"
	"github.com/LENAX/ppm/pkg/storage"
)

// ErrHeaderMismatch 文件表头与期望列不一致
var ErrHeaderMismatch = errors.New("csv header mismatch")

// CSVRepo 基于单个CSV文件的Repository实现（对外导出）
// 每次操作都完整读取文件、修改后整体重写，不维护索引
type CSVRepo[T storage.Record[T]] struct {
	mu          sync.Mutex
	path        string
	codec       Codec[T]
	entity      string
	atomicWrite bool
}

// Option CSVRepo构造选项
type Option func(*options)

type options struct {
	atomicWrite bool
}

// WithAtomicWrite 写入临时文件后重命名，避免重写中途崩溃损坏文件
func WithAtomicWrite(enabled bool) Option {
	return func(o *options) {
		o.atomicWrite = enabled
	}
}

// NewCSVRepo 创建CSV Repository实例（对外导出）
// 文件不存在时创建仅含表头的新文件；已存在的文件不会被覆盖
func NewCSVRepo[T storage.Record[T]](path string, codec Codec[T], opts ...Option) (*CSVRepo[T], error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var zero T
	r := &CSVRepo[T]{
		path:        path,
		codec:       codec,
		entity:      zero.Entity(),
		atomicWrite: o.atomicWrite,
	}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("检查CSV文件失败: %w", err)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("创建CSV目录失败: %w", err)
			}
		}
		if err := r.save(nil); err != nil {
			return nil, fmt.Errorf("初始化CSV文件失败: %w", err)
		}
		log.Printf("[csv] 创建%s文件: %s", r.entity, path)
	}

	return r, nil
}

// NewAddressRepo 创建address.csv Repository
func NewAddressRepo(path string, opts ...Option) (*CSVRepo[model.Address], error) {
	return NewCSVRepo[model.Address](path, AddressCodec{}, opts...)
}

// Path 返回文件路径
func (r *CSVRepo[T]) Path() string {
	return r.path
}

// List 返回文件中全部记录（按文件顺序）
func (r *CSVRepo[T]) List(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.load()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, storage.Empty(r.entity)
	}
	return rows, nil
}

// Create 以max(ID)+1作为新ID追加记录并重写文件
func (r *CSVRepo[T]) Create(ctx context.Context, record T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	rows, err := r.load()
	if err != nil {
		return zero, err
	}

	var maxID int64
	for _, row := range rows {
		maxID = max(maxID, row.GetID())
	}

	stored := record.WithID(maxID + 1)
	if err := r.save(append(rows, stored)); err != nil {
		return zero, err
	}
	return stored, nil
}

// Read 扫描查找指定ID
func (r *CSVRepo[T]) Read(ctx context.Context, id int64) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	rows, err := r.load()
	if err != nil {
		return zero, err
	}
	idx := indexOf(rows, id)
	if idx < 0 {
		return zero, storage.NotFound(r.entity, "read", id)
	}
	return rows[idx], nil
}

// Update 只覆盖提供的字段并重写文件
func (r *CSVRepo[T]) Update(ctx context.Context, id int64, record T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	rows, err := r.load()
	if err != nil {
		return zero, err
	}
	idx := indexOf(rows, id)
	if idx < 0 {
		return zero, storage.NotFound(r.entity, "update", id)
	}

	rows[idx] = r.codec.Merge(rows[idx], record).WithID(id)
	if err := r.save(rows); err != nil {
		return zero, err
	}
	return rows[idx], nil
}

// Delete 删除指定行并重写文件
func (r *CSVRepo[T]) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.load()
	if err != nil {
		return err
	}
	idx := indexOf(rows, id)
	if idx < 0 {
		return storage.NotFound(r.entity, "delete", id)
	}
	return r.save(slices.Delete(rows, idx, idx+1))
}

// Close CSV实现在每次操作后都已关闭文件
func (r *CSVRepo[T]) Close() error {
	return nil
}

// load 读取并解析整个文件
func (r *CSVRepo[T]) load() ([]T, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("打开CSV文件失败: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		// 空文件视为空表，下次写入时补齐表头
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取CSV表头失败: %w", err)
	}
	if !slices.Equal(header, r.codec.Header()) {
		return nil, fmt.Errorf("%w: %s 期望 %v, 实际 %v", ErrHeaderMismatch, r.path, r.codec.Header(), header)
	}

	var rows []T
	for line := 2; ; line++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("读取CSV第%d行失败: %w", line, err)
		}
		rec, err := r.codec.Decode(fields)
		if err != nil {
			return nil, fmt.Errorf("解析CSV第%d行失败: %w", line, err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// save 以表头+全部记录重写文件
func (r *CSVRepo[T]) save(rows []T) error {
	if r.atomicWrite {
		return r.saveAtomic(rows)
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("写入CSV文件失败: %w", err)
	}
	if err := r.write(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// saveAtomic 写入同目录临时文件后重命名
func (r *CSVRepo[T]) saveAtomic(rows []T) error {
	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := r.write(tmp, rows); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("同步临时文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("关闭临时文件失败: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("替换CSV文件失败: %w", err)
	}
	return nil
}

func (r *CSVRepo[T]) write(w io.Writer, rows []T) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.codec.Header()); err != nil {
		return fmt.Errorf("写入CSV表头失败: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(r.codec.Encode(row)); err != nil {
			return fmt.Errorf("写入CSV记录失败: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("写入CSV文件失败: %w", err)
	}
	return nil
}

func indexOf[T storage.Record[T]](rows []T, id int64) int {
	return slices.IndexFunc(rows, func(r T) bool {
		return r.GetID() == id
	})
}

// 确保实现接口
var _ storage.Repository[model.Address] = (*CSVRepo[model.Address])(nil)
