package nav

import (
	"aaharly-backend/internal/middleware"
	navtree "aaharly-backend/internal/nav"
	"aaharly-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers serves the navigation shell: the filtered menu and the landing
// route for the active role. Both are re-derived from the session on every
// call, so there is no stale navigation state to invalidate on role switches.
type Handlers struct{}

type menuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

type menuGroup struct {
	Title       string     `json:"title"`
	DefaultOpen bool       `json:"default_open"`
	Items       []menuItem `json:"items"`
}

// Menu GET /api/v1/nav/menu — the visible subset of the static menu tree for
// the active role, insertion order preserved.
func (h *Handlers) Menu(c *fiber.Ctx) error {
	role := middleware.GetRole(c)
	groups := navtree.Filter(navtree.Menu, role)

	out := make([]menuGroup, 0, len(groups))
	for _, g := range groups {
		items := make([]menuItem, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, menuItem{Label: it.Label, Path: it.Path, Icon: it.Icon})
		}
		out = append(out, menuGroup{Title: g.Title, DefaultOpen: g.DefaultOpen, Items: items})
	}
	return response.Success(c, "Menu", fiber.Map{"groups": out}, nil)
}

// Landing GET /api/v1/nav/landing — the root-path destination for the active role.
func (h *Handlers) Landing(c *fiber.Ctx) error {
	role := middleware.GetRole(c)
	return response.Success(c, "Landing", fiber.Map{
		"role":    role,
		"landing": navtree.Landing(role),
	}, nil)
}
