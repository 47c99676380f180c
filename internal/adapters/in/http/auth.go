package http

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"foodcourt/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const callerKey = "caller"

// Caller is the authenticated user behind a request.
type Caller struct {
	ID   kernel.UUID
	Role kernel.Role
}

// Claims is the token payload issued by the users service. The subject holds
// the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator validates HS256 bearer tokens. Tokens are issued elsewhere.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Authenticate rejects requests without a valid token and stores the Caller
// in the echo context.
func (a *Authenticator) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		caller, err := a.parse(strings.TrimSpace(raw))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token").SetInternal(err)
		}

		c.Set(callerKey, caller)
		return next(c)
	}
}

func (a *Authenticator) parse(raw string) (Caller, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Caller{}, err
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Caller{}, fmt.Errorf("subject: %w", err)
	}
	return Caller{ID: id, Role: kernel.ParseRole(claims.Role)}, nil
}

// RequireRole lets the request through only for callers holding one of roles.
func RequireRole(roles ...kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := CallerFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			if !slices.Contains(roles, caller.Role) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

func CallerFrom(c echo.Context) (Caller, bool) {
	caller, ok := c.Get(callerKey).(Caller)
	return caller, ok
}
