// Package auth issues and verifies the HS256 bearer tokens that protect the
// record endpoints. Roles travel in the token as claims only; every
// authenticated caller may use every record route.
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	UserKey contextKey = "auth_user"
	RoleKey contextKey = "auth_role"
)

// Claims carried by an issued token: subject (username), jti, and role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type Config struct {
	Secret   []byte
	Issuer   string
	Audience string
	TokenTTL time.Duration
}

// Middleware verifies the bearer token on every request and stores the
// authenticated username and role in the request context.
func Middleware(cfg Config) echo.MiddlewareFunc {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(*jwt.Token) (any, error) {
				return cfg.Secret, nil
			}, opts...)
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, UserKey, claims.Subject)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// UserFromContext returns the authenticated username, if any.
func UserFromContext(ctx context.Context) string {
	u, _ := ctx.Value(UserKey).(string)
	return u
}

// RoleFromContext returns the authenticated user's role claim, if any.
func RoleFromContext(ctx context.Context) string {
	r, _ := ctx.Value(RoleKey).(string)
	return r
}
