package middleware

import (
	"aaharly-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// EntryPath is the login screen every unauthenticated request is redirected to.
const EntryPath = "/login"

// RequireAuth is the route guard: a binary check re-evaluated on every request.
// Unauthenticated sessions get a 401 whose details carry the entry path and the
// originally requested location, so the shell can return the user there after
// login (best-effort; the entry screen is not required to honor it).
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals(userLocal)
		if user == nil {
			return response.Unauthorized(c, "Unauthorized", fiber.Map{
				"redirect_to": EntryPath,
				"from":        c.OriginalURL(),
			})
		}
		// Attach auth context for handlers
		c.Locals("auth", user)
		return c.Next()
	}
}

// GetUser returns the session user from Locals (nil if not logged in).
func GetUser(c *fiber.Ctx) interface{} {
	return c.Locals(userLocal)
}

// GetRole returns the active role from the session user ("" if not logged in).
func GetRole(c *fiber.Ctx) string {
	m, ok := GetUser(c).(map[string]interface{})
	if !ok {
		return ""
	}
	r, _ := m["role"].(string)
	return r
}
