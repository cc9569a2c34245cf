package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole lets the request through only when the authenticated role is
// one of the given ones. Must run after Protected.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User role not found in context",
			})
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}
}
