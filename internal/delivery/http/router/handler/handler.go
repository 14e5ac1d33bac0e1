// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"buytrek/internal/delivery/http/middleware"
	"buytrek/internal/delivery/http/response"
	"buytrek/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentPrincipal reads the authenticated caller the auth middleware set.
func currentPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(middleware.PrincipalContextKey).(entity.Principal)

	return principal, ok
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
