package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"speaker-booking/logger"
	"speaker-booking/types"
	"speaker-booking/utils"
)

// RequireAuth validates the bearer token and attaches its claims to the
// request context.
func RequireAuth() fiber.Handler {
	return requireRole("")
}

// RequireRole additionally checks the user_type claim against the given role
func RequireRole(role string) fiber.Handler {
	return requireRole(role)
}

func requireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Authorization token missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid authorization header format",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := utils.ParseToken(tokenParts[1])
		if err != nil {
			logger.Error("JWT verification failed", err)
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid or expired token",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if role != "" {
			userType, _ := claims["user_type"].(string)
			if userType != role {
				return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
					Message: "Insufficient permissions",
					Status:  fiber.StatusForbidden,
				})
			}
		}

		c.Locals("user", claims)
		return c.Next()
	}
}
