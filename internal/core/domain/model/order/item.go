package order

import (
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
)

// Item is one line of an order. It is a value owned by its order.
type Item struct {
	dishID   kernel.UUID
	quantity int
}

// NewItem validates the quantity before the dish reference.
func NewItem(dishID kernel.UUID, quantity int) (Item, error) {
	if quantity <= 0 {
		return Item{}, fmt.Errorf("%w: %d is not greater than 0", ErrInvalidQuantity, quantity)
	}
	if err := dishID.Validate(); err != nil {
		return Item{}, err
	}
	return Item{dishID: dishID, quantity: quantity}, nil
}

func (i Item) DishID() kernel.UUID {
	return i.dishID
}

func (i Item) Quantity() int {
	return i.quantity
}
