// Package dish provides the Dish aggregate: a menu item of a single restaurant.
package dish

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

var (
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

	ErrInvalidPrice = errs.NewBusinessError(errs.ErrValueIsInvalid, "DISH_PRICE_INVALID",
		"dish price must be a positive integer")
	ErrNameIsRequired = errs.NewBusinessError(errs.ErrValueIsRequired, "DISH_NAME_REQUIRED",
		"dish name is required")
	ErrCategoryIsRequired = errs.NewBusinessError(errs.ErrValueIsRequired, "DISH_CATEGORY_REQUIRED",
		"dish category is required")
	ErrRestaurantIsRequired = errs.NewBusinessError(errs.ErrValueIsRequired, "DISH_RESTAURANT_REQUIRED",
		"dish restaurant is required")
	ErrActiveFlagIsRequired = errs.NewBusinessError(errs.ErrValueIsRequired, "DISH_ACTIVE_REQUIRED",
		"dish active flag is required")
	ErrDishNotFound = errs.NewBusinessError(errs.ErrObjectNotFound, "DISH_NOT_FOUND",
		"dish not found")
)

// Dish is the aggregate root for a menu item.
//
// Invariants:
//   - price > 0 at all times
//   - name, category and restaurant are fixed at creation
//   - only price, description and the active flag change afterwards
type Dish struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        int
	description  string
	imageURL     string
	category     string
	active       bool

	isConstructed bool
}

// NewDish creates an active dish. The price is validated first, so an invalid
// price is reported before anything else about the dish.
func NewDish(
	id, restaurantID kernel.UUID,
	name string,
	price int,
	description, imageURL, category string,
) (*Dish, error) {
	return newDish(id, restaurantID, name, price, description, imageURL, category, true)
}

// RestoreDish rebuilds a dish from persistence, keeping its active flag.
func RestoreDish(
	id, restaurantID kernel.UUID,
	name string,
	price int,
	description, imageURL, category string,
	active bool,
) (*Dish, error) {
	d, err := newDish(id, restaurantID, name, price, description, imageURL, category, active)
	if err != nil {
		return nil, fmt.Errorf("restore dish %s: %w", id, err)
	}
	return d, nil
}

func newDish(
	id, restaurantID kernel.UUID,
	name string,
	price int,
	description, imageURL, category string,
	active bool,
) (*Dish, error) {
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if restaurantID.IsZero() {
		return nil, ErrRestaurantIsRequired
	}
	if kernel.IsBlank(name) {
		return nil, ErrNameIsRequired
	}
	if kernel.IsBlank(category) {
		return nil, ErrCategoryIsRequired
	}

	return &Dish{
		id:            id,
		restaurantID:  restaurantID,
		name:          name,
		price:         price,
		description:   description,
		imageURL:      imageURL,
		category:      category,
		active:        active,
		isConstructed: true,
	}, nil
}

func validatePrice(price int) error {
	if price <= 0 {
		return fmt.Errorf("%w: %d is not greater than 0", ErrInvalidPrice, price)
	}
	return nil
}

// ValidatePrice exposes the price rule to use cases that must check it before loading the dish.
func ValidatePrice(price int) error {
	return validatePrice(price)
}

func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) ID() kernel.UUID {
	return d.id
}

func (d *Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

func (d *Dish) Name() string {
	return d.name
}

func (d *Dish) Price() int {
	return d.price
}

func (d *Dish) Description() string {
	return d.description
}

func (d *Dish) ImageURL() string {
	return d.imageURL
}

func (d *Dish) Category() string {
	return d.category
}

func (d *Dish) IsActive() bool {
	return d.active
}

// BelongsTo reports whether the dish is on the menu of restaurantID.
func (d *Dish) BelongsTo(restaurantID kernel.UUID) bool {
	return d.restaurantID.IsEqual(restaurantID)
}

// UpdateDetails changes price and description. Everything else is immutable.
func (d *Dish) UpdateDetails(price int, description string) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	d.price = price
	d.description = description
	return nil
}

// SetActive toggles whether the dish can be ordered.
func (d *Dish) SetActive(active bool) {
	d.active = active
}
