package httpclient_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/httpclient"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/traceability"
	"foodcourt/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceabilityClient_Append(t *testing.T) {
	employeeID := kernel.NewUUID()
	record := traceability.Record{
		OrderID:        kernel.NewUUID(),
		ClientID:       kernel.NewUUID(),
		ClientEmail:    "client@example.com",
		RestaurantID:   kernel.NewUUID(),
		EmployeeID:     &employeeID,
		PreviousStatus: order.Pending,
		NewStatus:      order.InPreparation,
		OccurredAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Items: []traceability.ItemSnapshot{
			{DishID: kernel.NewUUID(), DishName: "Ajiaco", UnitPrice: 18000, Quantity: 1},
		},
	}

	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/traceability", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	err := httpclient.NewTraceabilityClient(server.URL, time.Second).Append(t.Context(), record)

	require.NoError(t, err)
	assert.Equal(t, record.OrderID.String(), body["orderId"])
	assert.Equal(t, employeeID.String(), body["employeeId"])
	assert.Equal(t, "PENDING", body["previousStatus"])
	assert.Equal(t, "IN_PREPARATION", body["newStatus"])
	assert.Equal(t, "2026-03-01T12:00:00Z", body["occurredAt"])
	require.Len(t, body["items"], 1)
}

func TestTraceabilityClient_AppendCreationOmitsPreviousStatus(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	err := httpclient.NewTraceabilityClient(server.URL, time.Second).Append(t.Context(), traceability.Record{
		OrderID:      kernel.NewUUID(),
		ClientID:     kernel.NewUUID(),
		RestaurantID: kernel.NewUUID(),
		NewStatus:    order.Pending,
	})

	require.NoError(t, err)
	assert.NotContains(t, body, "previousStatus")
	assert.NotContains(t, body, "employeeId")
}

func TestTraceabilityClient_AppendUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := httpclient.NewTraceabilityClient(server.URL, time.Second).Append(t.Context(), traceability.Record{})

	require.ErrorIs(t, err, ports.ErrCollaboratorUnavailable)
}

func TestTraceabilityClient_Reads(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	employeeID := kernel.NewUUID()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /traceability/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != orderID.String() {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[
			{"orderId":"` + orderID.String() + `","clientId":"` + kernel.NewUUID().String() + `",
			 "restaurantId":"` + restaurantID.String() + `","newStatus":"PENDING",
			 "occurredAt":"2026-03-01T12:00:00Z","items":[]},
			{"orderId":"` + orderID.String() + `","clientId":"` + kernel.NewUUID().String() + `",
			 "restaurantId":"` + restaurantID.String() + `","employeeId":"` + employeeID.String() + `",
			 "previousStatus":"PENDING","newStatus":"IN_PREPARATION",
			 "occurredAt":"2026-03-01T12:05:00Z","items":[]}
		]`))
	})
	mux.HandleFunc("GET /traceability/restaurants/{id}/efficiency", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"orderId":"` + orderID.String() + `","employeeId":"` + employeeID.String() +
			`","startedAt":"2026-03-01T12:00:00Z","completedAt":"2026-03-01T12:30:00Z","durationSeconds":1800}]`))
	})
	mux.HandleFunc("GET /traceability/restaurants/{id}/ranking", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"position":1,"employeeId":"` + employeeID.String() +
			`","employeeEmail":"cook@example.com","averageDurationSeconds":90.5,"completedOrders":4}]`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := httpclient.NewTraceabilityClient(server.URL, time.Second)

	records, err := client.GetByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, order.Unknown, records[0].PreviousStatus)
	assert.Equal(t, order.Pending, records[0].NewStatus)
	assert.Nil(t, records[0].EmployeeID)
	assert.Equal(t, order.InPreparation, records[1].NewStatus)
	require.NotNil(t, records[1].EmployeeID)
	assert.True(t, records[1].EmployeeID.IsEqual(employeeID))

	empty, err := client.GetByOrder(ctx, kernel.NewUUID())
	require.NoError(t, err)
	assert.Empty(t, empty)

	efficiency, err := client.GetOrdersEfficiency(ctx, restaurantID)
	require.NoError(t, err)
	require.Len(t, efficiency, 1)
	assert.Equal(t, 30*time.Minute, efficiency[0].Duration)

	ranking, err := client.GetEmployeeRanking(ctx, restaurantID)
	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, 1, ranking[0].Position)
	assert.Equal(t, 90*time.Second+500*time.Millisecond, ranking[0].AverageDuration)
	assert.Equal(t, 4, ranking[0].CompletedOrders)
}
