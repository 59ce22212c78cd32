package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/urban-monkey/storefront/internal/logging"
)

const subjectKey = "subject"

// RequireBearer verifies the Authorization header and stores the subject in
// the echo context. Missing or invalid credentials end the request with 401.
func RequireBearer(v Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			l := logging.FromContext(c.Request().Context())

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				l.Warn("auth_error", "status", 401, "reason", "no bearer token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "No token provided"})
			}

			sub, err := v.Verify(c.Request().Context(), token)
			if err != nil {
				l.Warn("auth_error", "status", 401, "error", err)
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
			}

			c.Set(subjectKey, sub)
			return next(c)
		}
	}
}

// Subject returns the verified identity stored by RequireBearer.
func Subject(c echo.Context) (string, error) {
	s, ok := c.Get(subjectKey).(string)
	if !ok || s == "" {
		return "", ErrUnauthenticated
	}
	return s, nil
}

// RequireAdminKey guards admin mutations with an API key compared against a
// bcrypt hash from config.
func RequireAdminKey(keyHash []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get("X-API-KEY")
			if key == "" || bcrypt.CompareHashAndPassword(keyHash, []byte(key)) != nil {
				logging.FromContext(c.Request().Context()).Warn("admin_auth_error", "status", 401)
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid or missing API key"})
			}
			return next(c)
		}
	}
}
