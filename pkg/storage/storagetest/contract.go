// Package storagetest 提供所有Repository实现共用的契约测试
package storagetest

import (
	"context"
	"testing"

	"github.com/LENAX/ppm/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Harness 契约测试所需的构造函数与样例数据
type Harness[T storage.Record[T]] struct {
	// New 返回一个空的Repository
	New func(t *testing.T) storage.Repository[T]
	// Sample 返回第i条合法记录，所有字段非零值
	Sample func(i int) T
}

// Run 对Repository执行全部契约测试
func Run[T storage.Record[T]](t *testing.T, h Harness[T]) {
	ctx := context.Background()

	t.Run("空集合List返回NotFound", func(t *testing.T) {
		repo := h.New(t)
		_, err := repo.List(ctx)
		assert.True(t, storage.IsNotFound(err), "期望NotFound，实际: %v", err)
	})

	t.Run("Create后Read得到相同记录", func(t *testing.T) {
		repo := h.New(t)
		in := h.Sample(1)

		created, err := repo.Create(ctx, in)
		require.NoError(t, err)
		assert.Greater(t, created.GetID(), int64(0))

		got, err := repo.Read(ctx, created.GetID())
		require.NoError(t, err)
		assert.Equal(t, in.WithID(created.GetID()), got)
	})

	t.Run("首条记录ID为1", func(t *testing.T) {
		repo := h.New(t)
		created, err := repo.Create(ctx, h.Sample(1))
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.GetID())

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, created, list[0])
	})

	t.Run("Delete后Read返回NotFound", func(t *testing.T) {
		repo := h.New(t)
		created, err := repo.Create(ctx, h.Sample(1))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.GetID()))

		_, err = repo.Read(ctx, created.GetID())
		assert.True(t, storage.IsNotFound(err))

		err = repo.Delete(ctx, created.GetID())
		assert.True(t, storage.IsNotFound(err), "重复删除应返回NotFound")
	})

	t.Run("Update后Read返回新记录且ID不变", func(t *testing.T) {
		repo := h.New(t)
		created, err := repo.Create(ctx, h.Sample(1))
		require.NoError(t, err)

		replacement := h.Sample(2)
		updated, err := repo.Update(ctx, created.GetID(), replacement)
		require.NoError(t, err)
		assert.Equal(t, created.GetID(), updated.GetID())

		got, err := repo.Read(ctx, created.GetID())
		require.NoError(t, err)
		assert.Equal(t, replacement.WithID(created.GetID()), got)
	})

	t.Run("连续Create的ID互不相同", func(t *testing.T) {
		repo := h.New(t)
		seen := make(map[int64]bool)
		for i := 0; i < 20; i++ {
			created, err := repo.Create(ctx, h.Sample(i))
			require.NoError(t, err)
			assert.False(t, seen[created.GetID()], "ID重复: %d", created.GetID())
			seen[created.GetID()] = true
		}
		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 20)
	})

	t.Run("Update不存在的ID返回NotFound且无副作用", func(t *testing.T) {
		repo := h.New(t)
		_, err := repo.Update(ctx, 999, h.Sample(1))
		assert.True(t, storage.IsNotFound(err))

		_, err = repo.Read(ctx, 999)
		assert.True(t, storage.IsNotFound(err))
		_, err = repo.List(ctx)
		assert.True(t, storage.IsNotFound(err), "Update失败后不应产生记录")
	})

	t.Run("Read不存在的ID返回NotFound", func(t *testing.T) {
		repo := h.New(t)
		_, err := repo.Create(ctx, h.Sample(1))
		require.NoError(t, err)

		_, err = repo.Read(ctx, 12345)
		assert.True(t, storage.IsNotFound(err))
	})
}
