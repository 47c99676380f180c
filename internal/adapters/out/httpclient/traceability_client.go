package httpclient

import (
	"context"
	"net/http"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/traceability"
	"foodcourt/internal/core/ports"

	"github.com/pkg/errors"
)

type itemSnapshotJSON struct {
	DishID    kernel.UUID `json:"dishId"`
	DishName  string      `json:"dishName"`
	UnitPrice int         `json:"unitPrice"`
	Quantity  int         `json:"quantity"`
}

type recordJSON struct {
	OrderID        kernel.UUID        `json:"orderId"`
	ClientID       kernel.UUID        `json:"clientId"`
	ClientEmail    string             `json:"clientEmail,omitempty"`
	RestaurantID   kernel.UUID        `json:"restaurantId"`
	EmployeeID     *kernel.UUID       `json:"employeeId,omitempty"`
	EmployeeEmail  string             `json:"employeeEmail,omitempty"`
	PreviousStatus string             `json:"previousStatus,omitempty"`
	NewStatus      string             `json:"newStatus"`
	OccurredAt     time.Time          `json:"occurredAt"`
	Items          []itemSnapshotJSON `json:"items"`
}

type efficiencyJSON struct {
	OrderID         kernel.UUID  `json:"orderId"`
	EmployeeID      *kernel.UUID `json:"employeeId,omitempty"`
	StartedAt       time.Time    `json:"startedAt"`
	CompletedAt     time.Time    `json:"completedAt"`
	DurationSeconds float64      `json:"durationSeconds"`
}

type rankingJSON struct {
	Position               int         `json:"position"`
	EmployeeID             kernel.UUID `json:"employeeId"`
	EmployeeEmail          string      `json:"employeeEmail"`
	AverageDurationSeconds float64     `json:"averageDurationSeconds"`
	CompletedOrders        int         `json:"completedOrders"`
}

func toRecordJSON(r traceability.Record) recordJSON {
	items := make([]itemSnapshotJSON, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, itemSnapshotJSON(item))
	}

	previous := ""
	if r.PreviousStatus != order.Unknown {
		previous = r.PreviousStatus.String()
	}

	return recordJSON{
		OrderID:        r.OrderID,
		ClientID:       r.ClientID,
		ClientEmail:    r.ClientEmail,
		RestaurantID:   r.RestaurantID,
		EmployeeID:     r.EmployeeID,
		EmployeeEmail:  r.EmployeeEmail,
		PreviousStatus: previous,
		NewStatus:      r.NewStatus.String(),
		OccurredAt:     r.OccurredAt,
		Items:          items,
	}
}

func fromRecordJSON(j recordJSON) (traceability.Record, error) {
	previous := order.Unknown
	if j.PreviousStatus != "" {
		parsed, err := order.ParseStatus(j.PreviousStatus)
		if err != nil {
			return traceability.Record{}, err
		}
		previous = parsed
	}
	next, err := order.ParseStatus(j.NewStatus)
	if err != nil {
		return traceability.Record{}, err
	}

	items := make([]traceability.ItemSnapshot, 0, len(j.Items))
	for _, item := range j.Items {
		items = append(items, traceability.ItemSnapshot(item))
	}

	return traceability.Record{
		OrderID:        j.OrderID,
		ClientID:       j.ClientID,
		ClientEmail:    j.ClientEmail,
		RestaurantID:   j.RestaurantID,
		EmployeeID:     j.EmployeeID,
		EmployeeEmail:  j.EmployeeEmail,
		PreviousStatus: previous,
		NewStatus:      next,
		OccurredAt:     j.OccurredAt,
		Items:          items,
	}, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

var _ ports.TraceabilityStore = (*TraceabilityClient)(nil)

// TraceabilityClient implements ports.TraceabilityStore on top of the
// traceability service:
//
//	POST /traceability                              <- record
//	GET  /traceability/orders/{id}                  -> [record]
//	GET  /traceability/restaurants/{id}/efficiency  -> [efficiency]
//	GET  /traceability/restaurants/{id}/ranking     -> [ranking]
type TraceabilityClient struct {
	client jsonClient
}

func NewTraceabilityClient(baseURL string, timeout time.Duration) *TraceabilityClient {
	return &TraceabilityClient{client: newJSONClient(baseURL, timeout)}
}

func (c *TraceabilityClient) Append(ctx context.Context, record traceability.Record) error {
	const path = "/traceability"

	status, err := c.client.do(ctx, http.MethodPost, path, toRecordJSON(record), nil)
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusOK && status != http.StatusNoContent {
		return c.client.unexpected(http.MethodPost, path, status)
	}
	return nil
}

// GetByOrder returns an empty history when the service knows nothing of the order.
func (c *TraceabilityClient) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]traceability.Record, error) {
	path := "/traceability/orders/" + orderID.String()

	var resp []recordJSON
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	records := make([]traceability.Record, 0, len(resp))
	for _, j := range resp {
		r, err := fromRecordJSON(j)
		if err != nil {
			return nil, errors.Wrap(err, "traceability service returned an invalid record")
		}
		records = append(records, r)
	}
	return records, nil
}

func (c *TraceabilityClient) GetOrdersEfficiency(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]traceability.OrderEfficiency, error) {
	var resp []efficiencyJSON
	if err := c.get(ctx, "/traceability/restaurants/"+restaurantID.String()+"/efficiency", &resp); err != nil {
		return nil, err
	}

	out := make([]traceability.OrderEfficiency, 0, len(resp))
	for _, j := range resp {
		out = append(out, traceability.OrderEfficiency{
			OrderID:     j.OrderID,
			EmployeeID:  j.EmployeeID,
			StartedAt:   j.StartedAt,
			CompletedAt: j.CompletedAt,
			Duration:    seconds(j.DurationSeconds),
		})
	}
	return out, nil
}

func (c *TraceabilityClient) GetEmployeeRanking(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]traceability.EmployeeRanking, error) {
	var resp []rankingJSON
	if err := c.get(ctx, "/traceability/restaurants/"+restaurantID.String()+"/ranking", &resp); err != nil {
		return nil, err
	}

	out := make([]traceability.EmployeeRanking, 0, len(resp))
	for _, j := range resp {
		out = append(out, traceability.EmployeeRanking{
			Position:        j.Position,
			EmployeeID:      j.EmployeeID,
			EmployeeEmail:   j.EmployeeEmail,
			AverageDuration: seconds(j.AverageDurationSeconds),
			CompletedOrders: j.CompletedOrders,
		})
	}
	return out, nil
}

// get treats 404 as an empty list.
func (c *TraceabilityClient) get(ctx context.Context, path string, out any) error {
	status, err := c.client.do(ctx, http.MethodGet, path, nil, out)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK, http.StatusNotFound:
		return nil
	default:
		return c.client.unexpected(http.MethodGet, path, status)
	}
}
