// Package orderrepo persists order aggregates in the orders table and their
// lines in order_items.
package orderrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row. Status is stored as the integer code of
// order.Status; Version is the optimistic concurrency token.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ClientID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;not null;index:ix_orders_restaurant_status,priority:1"`
	EmployeeID   *uuid.UUID     `gorm:"type:uuid;index"`
	Status       int            `gorm:"not null;index:ix_orders_restaurant_status,priority:2"`
	Pin          *string        `gorm:"size:16"`
	CreatedAt    time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time      `gorm:"not null;autoUpdateTime:false"`
	Version      int64          `gorm:"not null;default:0"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Position keeps the lines in the order the
// client listed them.
type OrderItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey;autoIncrement:false"`
	DishID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity int       `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// ActiveStatusCodes are the stored codes of the statuses covered by the
// single active order index.
func ActiveStatusCodes() []int {
	statuses := order.ActiveStatuses()
	codes := make([]int, 0, len(statuses))
	for _, s := range statuses {
		codes = append(codes, int(s))
	}
	return codes
}

func fromDomain(o *order.Order) OrderDTO {
	var employeeID *uuid.UUID
	if id := o.EmployeeID(); id != nil {
		raw := id.Bytes()
		employeeID = &raw
	}

	items := o.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:  o.ID().Bytes(),
			Position: i,
			DishID:   item.DishID().Bytes(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		ClientID:     o.ClientID().Bytes(),
		RestaurantID: o.RestaurantID().Bytes(),
		EmployeeID:   employeeID,
		Status:       int(o.Status()),
		Pin:          o.Pin(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
		Version:      o.Version(),
		Items:        itemDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var employeeID *kernel.UUID
	if dto.EmployeeID != nil {
		eID, employeeErr := kernel.UUIDFromBytes((*dto.EmployeeID)[:])
		if employeeErr != nil {
			return nil, employeeErr
		}
		employeeID = &eID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		dishID, dishErr := kernel.UUIDFromBytes(itemDTO.DishID[:])
		if dishErr != nil {
			return nil, dishErr
		}
		item, itemErr := order.NewItem(dishID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, clientID, restaurantID, employeeID, order.Status(dto.Status), dto.Pin, items,
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(), dto.Version)
}
