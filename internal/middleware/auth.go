package middleware

import (
	"net/http"
	"strings"

	"github.com/An2rei-84/skystore/internal/model"
	"github.com/An2rei-84/skystore/pkg/database"
	"github.com/An2rei-84/skystore/pkg/jwtutil"
	"github.com/An2rei-84/skystore/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const currentUserKey = "current_user"

// AuthMiddleware validates the JWT token and loads the authenticated user
// with group and direct permissions. The user is fetched fresh on every
// request so permission changes take effect immediately.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		// Validate the token
		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Error("Invalid JWT token", zap.Error(err))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		// Load the user with effective permissions
		var user model.User
		result := database.GetDB().
			Preload("Groups.Permissions").
			Preload("Permissions").
			First(&user, claims.UserID)
		if result.Error != nil {
			log.Error("Token user not found",
				zap.Uint("user_id", claims.UserID),
				zap.Error(result.Error))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		if !user.IsActive {
			log.Warn("Inactive user attempted access", zap.String("email", user.Email))
			return c.JSON(http.StatusForbidden, echo.Map{"error": "account is disabled"})
		}

		// Store user info in context for later use
		c.Set(currentUserKey, &user)
		c.Set("user_id", user.ID)
		c.Set("email", user.Email)

		// Token is valid, proceed with the request
		return next(c)
	}
}

// CurrentUser retrieves the authenticated user from the context.
// Returns nil for anonymous requests.
func CurrentUser(c echo.Context) *model.User {
	user, ok := c.Get(currentUserKey).(*model.User)
	if !ok {
		return nil
	}
	return user
}
