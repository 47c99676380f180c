package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

type userResponse struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type employeeRestaurantResponse struct {
	RestaurantID string `json:"restaurantId"`
}

var (
	_ ports.UserDirectory     = (*UsersClient)(nil)
	_ ports.EmployeeDirectory = (*UsersClient)(nil)
	_ ports.ClientDirectory   = (*UsersClient)(nil)
)

// UsersClient implements the user, employee and client directories on top of
// the users service:
//
//	GET /users/{id}                     -> {id, role, email, phone}
//	GET /employees/{id}/restaurant      -> {restaurantId}
type UsersClient struct {
	client jsonClient
}

func NewUsersClient(baseURL string, timeout time.Duration) *UsersClient {
	return &UsersClient{client: newJSONClient(baseURL, timeout)}
}

func (c *UsersClient) Exists(ctx context.Context, userID kernel.UUID) (bool, error) {
	_, found, err := c.user(ctx, userID)
	return found, err
}

func (c *UsersClient) GetRole(ctx context.Context, userID kernel.UUID) (string, error) {
	u, err := c.existingUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

// RestaurantOf maps a 404 to order.ErrEmployeeNotAssociatedWithRestaurant.
func (c *UsersClient) RestaurantOf(ctx context.Context, employeeID kernel.UUID) (kernel.UUID, error) {
	path := "/employees/" + employeeID.String() + "/restaurant"

	var resp employeeRestaurantResponse
	status, err := c.client.do(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return kernel.UUID{}, err
	}

	switch status {
	case http.StatusOK:
		restaurantID, parseErr := kernel.UUIDFromString(resp.RestaurantID)
		if parseErr != nil {
			return kernel.UUID{}, fmt.Errorf("%w: employee %s", order.ErrEmployeeNotAssociatedWithRestaurant, employeeID)
		}
		return restaurantID, nil
	case http.StatusNotFound:
		return kernel.UUID{}, fmt.Errorf("%w: employee %s", order.ErrEmployeeNotAssociatedWithRestaurant, employeeID)
	default:
		return kernel.UUID{}, c.client.unexpected(http.MethodGet, path, status)
	}
}

func (c *UsersClient) EmailOf(ctx context.Context, userID kernel.UUID) (string, error) {
	u, err := c.existingUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.Email, nil
}

func (c *UsersClient) PhoneOf(ctx context.Context, clientID kernel.UUID) (string, error) {
	u, err := c.existingUser(ctx, clientID)
	if err != nil {
		return "", err
	}
	return u.Phone, nil
}

func (c *UsersClient) existingUser(ctx context.Context, userID kernel.UUID) (userResponse, error) {
	u, found, err := c.user(ctx, userID)
	if err != nil {
		return userResponse{}, err
	}
	if !found {
		return userResponse{}, errs.NewObjectNotFoundError("user", userID.String())
	}
	return u, nil
}

func (c *UsersClient) user(ctx context.Context, userID kernel.UUID) (userResponse, bool, error) {
	path := "/users/" + userID.String()

	var resp userResponse
	status, err := c.client.do(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return userResponse{}, false, err
	}

	switch status {
	case http.StatusOK:
		return resp, true, nil
	case http.StatusNotFound:
		return userResponse{}, false, nil
	default:
		return userResponse{}, false, c.client.unexpected(http.MethodGet, path, status)
	}
}
