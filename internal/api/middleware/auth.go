package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/datacatalog/metadata-system/internal/api/metrics"
	"github.com/datacatalog/metadata-system/internal/core/token"
)

// Machine-readable auth rejection codes, returned as the error body on 401.
const (
	CodeNoToken      = "NO_TOKEN"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeExpiredToken = "EXPIRED_TOKEN"
)

// Auth verifies the bearer token and injects the decoded claims into context.
// Rejections are always JSON with one of the codes above; which failure
// occurred only matters for observability, the request is unauthenticated
// either way.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(CodeNoToken)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return reject(CodeNoToken)
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					return reject(CodeExpiredToken)
				}
				return reject(CodeInvalidToken)
			}

			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

func reject(code string) error {
	metrics.AuthRejectionsTotal.WithLabelValues(code).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, code)
}
