package kernel_test

import (
	"strconv"
	"testing"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	t.Run("should accept first page", func(t *testing.T) {
		p, err := kernel.NewPage(0, 10)

		require.NoError(t, err)
		assert.Equal(t, 0, p.Number())
		assert.Equal(t, 10, p.Size())
		assert.Equal(t, 0, p.Offset())
	})

	t.Run("should compute offset", func(t *testing.T) {
		p, err := kernel.NewPage(3, 20)

		require.NoError(t, err)
		assert.Equal(t, 60, p.Offset())
	})

	t.Run("should reject negative page", func(t *testing.T) {
		_, err := kernel.NewPage(-1, 10)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject size out of bounds", func(t *testing.T) {
		for _, size := range []int{0, -5, kernel.MaxPageSize + 1} {
			_, err := kernel.NewPage(0, size)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "size %d", size)
		}
	})
}

func TestPageResult(t *testing.T) {
	p, _ := kernel.NewPage(1, 2)

	t.Run("should round total pages up", func(t *testing.T) {
		r := kernel.NewPageResult([]int{3, 4}, p, 5)

		assert.Equal(t, 3, r.TotalPages())
		assert.Equal(t, 1, r.Page)
		assert.Equal(t, 2, r.Size)
	})

	t.Run("should never expose nil items", func(t *testing.T) {
		r := kernel.NewPageResult[int](nil, p, 0)

		assert.NotNil(t, r.Items)
		assert.Empty(t, r.Items)
		assert.Equal(t, 0, r.TotalPages())
	})

	t.Run("should map items and keep metadata", func(t *testing.T) {
		r := kernel.MapPageResult(kernel.NewPageResult([]int{3, 4}, p, 5), strconv.Itoa)

		assert.Equal(t, []string{"3", "4"}, r.Items)
		assert.Equal(t, int64(5), r.TotalItems)
	})
}
