package http

import (
	"strconv"
	"time"

	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/core/domain/model/traceability"
	"foodcourt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultPage = 0

type CreateRestaurantRequest struct {
	Name    string `json:"name"`
	Nit     string `json:"nit"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	LogoURL string `json:"logoUrl"`
	OwnerID string `json:"ownerId" validate:"required,uuid"`
}

type CreateDishRequest struct {
	RestaurantID string `json:"restaurantId" validate:"required,uuid"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	Category     string `json:"category"`
}

type UpdateDishRequest struct {
	Price       *int   `json:"price"`
	Description string `json:"description"`
}

type ChangeDishActiveRequest struct {
	Active *bool `json:"active"`
}

type OrderLineRequest struct {
	DishID   string `json:"dishId" validate:"required,uuid"`
	Quantity int    `json:"quantity"`
}

type CreateOrderRequest struct {
	RestaurantID string             `json:"restaurantId" validate:"required,uuid"`
	Items        []OrderLineRequest `json:"items" validate:"dive"`
}

type DeliverOrderRequest struct {
	Pin string `json:"pin"`
}

type PageResponse[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

func newPageResponse[T, R any](in kernel.PageResult[T], fn func(T) R) PageResponse[R] {
	out := kernel.MapPageResult(in, fn)
	items := out.Items
	if items == nil {
		items = []R{}
	}
	return PageResponse[R]{
		Items:      items,
		Page:       out.Page,
		Size:       out.Size,
		TotalItems: out.TotalItems,
		TotalPages: out.TotalPages(),
	}
}

type RestaurantResponse struct {
	ID      kernel.UUID `json:"id"`
	Name    string      `json:"name"`
	Nit     string      `json:"nit"`
	Address string      `json:"address"`
	Phone   string      `json:"phone"`
	LogoURL string      `json:"logoUrl"`
	OwnerID kernel.UUID `json:"ownerId"`
}

func newRestaurantResponse(r *restaurant.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:      r.ID(),
		Name:    r.Name(),
		Nit:     r.Nit(),
		Address: r.Address(),
		Phone:   r.Phone(),
		LogoURL: r.LogoURL(),
		OwnerID: r.OwnerID(),
	}
}

type RestaurantSummaryResponse struct {
	ID      kernel.UUID `json:"id"`
	Name    string      `json:"name"`
	LogoURL string      `json:"logoUrl"`
}

func newRestaurantSummaryResponse(s queries.RestaurantSummary) RestaurantSummaryResponse {
	return RestaurantSummaryResponse{ID: s.ID, Name: s.Name, LogoURL: s.LogoURL}
}

type DishResponse struct {
	ID           kernel.UUID `json:"id"`
	RestaurantID kernel.UUID `json:"restaurantId"`
	Name         string      `json:"name"`
	Price        int         `json:"price"`
	Description  string      `json:"description"`
	ImageURL     string      `json:"imageUrl"`
	Category     string      `json:"category"`
	Active       bool        `json:"active"`
}

func newDishResponse(d queries.DishResponse) DishResponse {
	return DishResponse{
		ID:           d.ID,
		RestaurantID: d.RestaurantID,
		Name:         d.Name,
		Price:        d.Price,
		Description:  d.Description,
		ImageURL:     d.ImageURL,
		Category:     d.Category,
		Active:       d.Active,
	}
}

func newDishResponseFromDomain(d *dish.Dish) DishResponse {
	return newDishResponse(queries.NewDishResponse(d))
}

type OrderItemResponse struct {
	DishID   kernel.UUID `json:"dishId"`
	DishName string      `json:"dishName,omitempty"`
	Price    *int        `json:"price,omitempty"`
	Quantity int         `json:"quantity"`
}

type OrderResponse struct {
	ID             kernel.UUID         `json:"id"`
	ClientID       kernel.UUID         `json:"clientId"`
	RestaurantID   kernel.UUID         `json:"restaurantId"`
	RestaurantName string              `json:"restaurantName,omitempty"`
	EmployeeID     *kernel.UUID        `json:"employeeId,omitempty"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	Items          []OrderItemResponse `json:"items"`
}

func newOrderResponse(o queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			DishID:   it.DishID,
			DishName: it.DishName,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return OrderResponse{
		ID:             o.ID,
		ClientID:       o.ClientID,
		RestaurantID:   o.RestaurantID,
		RestaurantName: o.RestaurantName,
		EmployeeID:     o.EmployeeID,
		Status:         o.Status,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		Items:          items,
	}
}

type ItemSnapshotResponse struct {
	DishID    kernel.UUID `json:"dishId"`
	DishName  string      `json:"dishName"`
	UnitPrice int         `json:"unitPrice"`
	Quantity  int         `json:"quantity"`
}

type TraceabilityRecordResponse struct {
	OrderID        kernel.UUID            `json:"orderId"`
	ClientID       kernel.UUID            `json:"clientId"`
	ClientEmail    string                 `json:"clientEmail,omitempty"`
	RestaurantID   kernel.UUID            `json:"restaurantId"`
	EmployeeID     *kernel.UUID           `json:"employeeId,omitempty"`
	EmployeeEmail  string                 `json:"employeeEmail,omitempty"`
	PreviousStatus string                 `json:"previousStatus,omitempty"`
	NewStatus      string                 `json:"newStatus"`
	OccurredAt     time.Time              `json:"occurredAt"`
	Items          []ItemSnapshotResponse `json:"items"`
	Total          int                    `json:"total"`
}

func newTraceabilityRecordResponse(r traceability.Record) TraceabilityRecordResponse {
	items := make([]ItemSnapshotResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, ItemSnapshotResponse{
			DishID:    it.DishID,
			DishName:  it.DishName,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	resp := TraceabilityRecordResponse{
		OrderID:       r.OrderID,
		ClientID:      r.ClientID,
		ClientEmail:   r.ClientEmail,
		RestaurantID:  r.RestaurantID,
		EmployeeID:    r.EmployeeID,
		EmployeeEmail: r.EmployeeEmail,
		NewStatus:     r.NewStatus.String(),
		OccurredAt:    r.OccurredAt,
		Items:         items,
		Total:         r.Total(),
	}
	if r.PreviousStatus.Validate() == nil {
		resp.PreviousStatus = r.PreviousStatus.String()
	}
	return resp
}

type OrderEfficiencyResponse struct {
	OrderID         kernel.UUID  `json:"orderId"`
	EmployeeID      *kernel.UUID `json:"employeeId,omitempty"`
	StartedAt       time.Time    `json:"startedAt"`
	CompletedAt     time.Time    `json:"completedAt"`
	DurationSeconds float64      `json:"durationSeconds"`
}

func newOrderEfficiencyResponse(e traceability.OrderEfficiency) OrderEfficiencyResponse {
	return OrderEfficiencyResponse{
		OrderID:         e.OrderID,
		EmployeeID:      e.EmployeeID,
		StartedAt:       e.StartedAt,
		CompletedAt:     e.CompletedAt,
		DurationSeconds: e.Duration.Seconds(),
	}
}

type EmployeeRankingResponse struct {
	Position               int         `json:"position"`
	EmployeeID             kernel.UUID `json:"employeeId"`
	EmployeeEmail          string      `json:"employeeEmail,omitempty"`
	AverageDurationSeconds float64     `json:"averageDurationSeconds"`
	CompletedOrders        int         `json:"completedOrders"`
}

func newEmployeeRankingResponse(r traceability.EmployeeRanking) EmployeeRankingResponse {
	return EmployeeRankingResponse{
		Position:               r.Position,
		EmployeeID:             r.EmployeeID,
		EmployeeEmail:          r.EmployeeEmail,
		AverageDurationSeconds: r.AverageDuration.Seconds(),
		CompletedOrders:        r.CompletedOrders,
	}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

// pageFromQuery reads `page` and `size`, defaulting to the first page of ten.
func pageFromQuery(c echo.Context) (kernel.Page, error) {
	number, err := intQueryParam(c, "page", defaultPage)
	if err != nil {
		return kernel.Page{}, err
	}
	size, err := intQueryParam(c, "size", kernel.DefaultPageSize)
	if err != nil {
		return kernel.Page{}, err
	}
	return kernel.NewPage(number, size)
}

func intQueryParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func uuidParam(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// bind decodes and validates the body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return c.Validate(req)
}
