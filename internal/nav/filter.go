package nav

import "aaharly-backend/internal/pkg/constants"

// Landing is the role router: a pure total mapping from role to the screen an
// authenticated session lands on at the root path. Safe to re-evaluate at any
// time (e.g. on a role switch while already at root).
func Landing(role string) string {
	switch role {
	case constants.VendorAdmin:
		return "/vendor/production"
	case constants.VendorStaff:
		return "/vendor/kitchen"
	default:
		// SUPER_ADMIN, OPS, and anything unrecognized
		return "/dashboard"
	}
}

// Filter derives the visible menu for a role from the static tree: groups the
// role is not gated into are dropped, items keep their insertion order and are
// visible when they have no override or their override includes the role, and
// a group with zero visible items is dropped entirely.
func Filter(menu []Group, role string) []Group {
	out := make([]Group, 0, len(menu))
	for _, g := range menu {
		if !contains(g.Roles, role) {
			continue
		}
		items := make([]Item, 0, len(g.Items))
		for _, it := range g.Items {
			if it.Roles == nil || contains(it.Roles, role) {
				items = append(items, it)
			}
		}
		if len(items) == 0 {
			continue
		}
		g.Items = items
		out = append(out, g)
	}
	return out
}

// Visible reports whether a single item is visible to role inside its group:
// the item's own override (if any) intersected with the group's gate.
func Visible(g Group, it Item, role string) bool {
	if !contains(g.Roles, role) {
		return false
	}
	return it.Roles == nil || contains(it.Roles, role)
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
