package dish_test

import (
	"testing"

	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDish(t *testing.T, price int) *dish.Dish {
	t.Helper()
	d, err := dish.NewDish(kernel.NewUUID(), kernel.NewUUID(), "Bandeja paisa", price,
		"Beans, rice and chicharron", "https://cdn.example/bandeja.png", "Typical")
	require.NoError(t, err)
	return d
}

func TestNewDish(t *testing.T) {
	id := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	t.Run("should create active dish", func(t *testing.T) {
		d, err := dish.NewDish(id, restaurantID, "Bandeja paisa", 15000, "desc", "img", "Typical")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.True(t, d.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, "Bandeja paisa", d.Name())
		assert.Equal(t, 15000, d.Price())
		assert.Equal(t, "desc", d.Description())
		assert.Equal(t, "img", d.ImageURL())
		assert.Equal(t, "Typical", d.Category())
		assert.True(t, d.IsActive())
	})

	t.Run("should reject zero price", func(t *testing.T) {
		d, err := dish.NewDish(id, restaurantID, "Bandeja paisa", 0, "desc", "img", "Typical")

		require.ErrorIs(t, err, dish.ErrInvalidPrice)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
		assert.Nil(t, d)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := dish.NewDish(id, restaurantID, "Bandeja paisa", -10, "desc", "img", "Typical")

		require.ErrorIs(t, err, dish.ErrInvalidPrice)
	})

	t.Run("should report price before other violations", func(t *testing.T) {
		_, err := dish.NewDish(kernel.UUID{}, kernel.UUID{}, "", 0, "", "", "")

		require.ErrorIs(t, err, dish.ErrInvalidPrice)
	})

	t.Run("should require name", func(t *testing.T) {
		_, err := dish.NewDish(id, restaurantID, " ", 100, "desc", "img", "Typical")

		require.ErrorIs(t, err, dish.ErrNameIsRequired)
	})

	t.Run("should require category", func(t *testing.T) {
		_, err := dish.NewDish(id, restaurantID, "Arepa", 100, "desc", "img", "")

		require.ErrorIs(t, err, dish.ErrCategoryIsRequired)
	})

	t.Run("should require restaurant", func(t *testing.T) {
		_, err := dish.NewDish(id, kernel.UUID{}, "Arepa", 100, "desc", "img", "Typical")

		require.ErrorIs(t, err, dish.ErrRestaurantIsRequired)
	})
}

func TestRestoreDish(t *testing.T) {
	d, err := dish.RestoreDish(kernel.NewUUID(), kernel.NewUUID(), "Arepa", 100, "desc", "img", "Typical", false)

	require.NoError(t, err)
	assert.False(t, d.IsActive())

	_, err = dish.RestoreDish(kernel.NewUUID(), kernel.NewUUID(), "Arepa", 0, "desc", "img", "Typical", true)
	require.ErrorIs(t, err, dish.ErrInvalidPrice)
}

func TestDish_UpdateDetails(t *testing.T) {
	t.Run("should update price and description only", func(t *testing.T) {
		d := newTestDish(t, 15000)

		require.NoError(t, d.UpdateDetails(18000, "Now with avocado"))

		assert.Equal(t, 18000, d.Price())
		assert.Equal(t, "Now with avocado", d.Description())
		assert.Equal(t, "Bandeja paisa", d.Name())
		assert.Equal(t, "Typical", d.Category())
		assert.Equal(t, "https://cdn.example/bandeja.png", d.ImageURL())
	})

	t.Run("should keep previous values on invalid price", func(t *testing.T) {
		d := newTestDish(t, 15000)

		err := d.UpdateDetails(0, "free")

		require.ErrorIs(t, err, dish.ErrInvalidPrice)
		assert.Equal(t, 15000, d.Price())
		assert.Equal(t, "Beans, rice and chicharron", d.Description())
	})
}

func TestDish_SetActive(t *testing.T) {
	d := newTestDish(t, 15000)

	d.SetActive(false)
	assert.False(t, d.IsActive())

	d.SetActive(true)
	assert.True(t, d.IsActive())
}

func TestDish_BelongsTo(t *testing.T) {
	restaurantID := kernel.NewUUID()
	d, err := dish.NewDish(kernel.NewUUID(), restaurantID, "Arepa", 100, "", "", "Typical")
	require.NoError(t, err)

	assert.True(t, d.BelongsTo(restaurantID))
	assert.False(t, d.BelongsTo(kernel.NewUUID()))
}

func TestDish_Validate(t *testing.T) {
	var d *dish.Dish
	require.ErrorIs(t, d.Validate(), dish.ErrDishIsNotConstructed)
}
