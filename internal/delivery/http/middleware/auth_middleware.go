package middleware

import (
	"net/http"
	"strings"

	"buytrek/internal/domain/entity"
	"buytrek/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// PrincipalContextKey is where Authenticate stores the caller's identity on
// the echo context.
const PrincipalContextKey = "principal"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	sessions service.SessionStore
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, sessions service.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, sessions: sessions}
}

// Authenticate validates the bearer token and checks it is still the user's
// current session. Logout deletes the cached token, so a token that no
// longer matches is treated as revoked even before it expires.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		cached, err := m.sessions.GetAccessToken(c.Request().Context(), claims.UserID.String())
		if err != nil || cached != tokenString {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Session has been revoked"})
		}

		c.Set(PrincipalContextKey, entity.Principal{
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		return next(c)
	}
}

// RequireRoles is a middleware factory that checks the caller holds one of
// the given roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRoles(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(PrincipalContextKey).(entity.Principal)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if !principal.Role.In(roles...) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + rolesLabel(roles) + "' role"})
			}

			return next(c)
		}
	}
}

func rolesLabel(roles []entity.Role) string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}

	return strings.Join(names, "' or '")
}
