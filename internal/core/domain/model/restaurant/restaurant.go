package restaurant

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// Domain errors for restaurant operations.
var (
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

	ErrInvalidName = errs.NewBusinessError(errs.ErrValueIsInvalid, "RESTAURANT_NAME_INVALID",
		"restaurant name must not be blank or purely numeric")
	ErrInvalidNit = errs.NewBusinessError(errs.ErrValueIsInvalid, "RESTAURANT_NIT_INVALID",
		"restaurant NIT must be a non-blank numeric string")
	ErrInvalidPhone = errs.NewBusinessError(errs.ErrValueIsInvalid, "RESTAURANT_PHONE_INVALID",
		"restaurant phone must have up to 12 digits with an optional leading '+'")
	ErrOwnerIsRequired = errs.NewBusinessError(errs.ErrValueIsRequired, "RESTAURANT_OWNER_REQUIRED",
		"restaurant owner is required")
	ErrOwnerNotFound = errs.NewBusinessError(errs.ErrObjectNotFound, "OWNER_NOT_FOUND",
		"restaurant owner does not exist")
	ErrUserNotOwnerRole = errs.NewBusinessError(errs.ErrAccessDenied, "USER_NOT_OWNER_ROLE",
		"user does not hold the OWNER role")
	ErrDuplicateNit = errs.NewBusinessError(errs.ErrObjectAlreadyExists, "RESTAURANT_NIT_DUPLICATED",
		"a restaurant with this NIT is already registered")
	ErrRestaurantNotFound = errs.NewBusinessError(errs.ErrObjectNotFound, "RESTAURANT_NOT_FOUND",
		"restaurant not found")
	ErrUserNotRestaurantOwner = errs.NewBusinessError(errs.ErrAccessDenied, "USER_NOT_RESTAURANT_OWNER",
		"user is not the owner of the restaurant")
)

// Restaurant is the aggregate root for a registered food-court stand.
//
// Invariants:
//   - name is not blank and not purely numeric
//   - nit is a non-blank digit string (uniqueness is enforced by the repository)
//   - phone matches ^\+?\d{1,12}$
//   - ownerID is set
type Restaurant struct {
	id      kernel.UUID
	name    string
	nit     string
	address string
	phone   string
	logoURL string
	ownerID kernel.UUID

	isConstructed bool
}

// NewRestaurant validates the registration data and returns a new restaurant.
//
// Validation is fail-fast in a fixed order, the first violation wins:
// name, NIT, phone, owner. Owner existence/role and NIT uniqueness need
// collaborators and are checked by the registering use case afterwards.
func NewRestaurant(
	id kernel.UUID,
	name, nit, address, phone, logoURL string,
	ownerID kernel.UUID,
) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if kernel.IsBlank(name) || kernel.IsNumeric(name) {
		return nil, ErrInvalidName
	}
	if kernel.IsBlank(nit) || !kernel.IsNumeric(nit) {
		return nil, ErrInvalidNit
	}
	if kernel.IsBlank(phone) || !kernel.IsValidPhone(phone) {
		return nil, ErrInvalidPhone
	}
	if ownerID.IsZero() {
		return nil, ErrOwnerIsRequired
	}

	return &Restaurant{
		id:            id,
		name:          name,
		nit:           nit,
		address:       address,
		phone:         phone,
		logoURL:       logoURL,
		ownerID:       ownerID,
		isConstructed: true,
	}, nil
}

// RestoreRestaurant rebuilds a restaurant from persistence with the same validation as NewRestaurant.
func RestoreRestaurant(
	id kernel.UUID,
	name, nit, address, phone, logoURL string,
	ownerID kernel.UUID,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, name, nit, address, phone, logoURL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("restore restaurant %s: %w", id, err)
	}
	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Nit() string {
	return r.nit
}

func (r *Restaurant) Address() string {
	return r.address
}

func (r *Restaurant) Phone() string {
	return r.phone
}

func (r *Restaurant) LogoURL() string {
	return r.logoURL
}

func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// IsOwnedBy reports whether userID is the registered owner.
func (r *Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

// EnsureOwnedBy returns ErrUserNotRestaurantOwner unless userID is the registered owner.
func (r *Restaurant) EnsureOwnedBy(userID kernel.UUID) error {
	if !r.IsOwnedBy(userID) {
		return fmt.Errorf("%w: restaurant %s", ErrUserNotRestaurantOwner, r.id)
	}
	return nil
}
