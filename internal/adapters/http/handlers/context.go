package handlers

import "github.com/gofiber/fiber/v2"

// isAdmin reads the role claim the auth middleware stored in locals.
// Mutating services take this flag and no-op without it, independently
// of the AdminOnly route guard.
func isAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals("role").(string)
	return role == "ADMIN"
}
