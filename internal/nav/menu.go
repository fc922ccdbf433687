package nav

import "aaharly-backend/internal/pkg/constants"

// Item is one navigation entry. Roles, when set, narrows the parent group's
// gate; when nil the item inherits the group's allowed roles exactly.
type Item struct {
	Label string   `json:"label"`
	Path  string   `json:"path"`
	Icon  string   `json:"icon"`
	Roles []string `json:"-"`
}

// Group is a titled block of navigation entries with an allowed-role gate.
// DefaultOpen seeds the shell's expand/collapse state; the shell keeps that
// state locally per title afterwards.
type Group struct {
	Title       string `json:"title"`
	Roles       []string
	DefaultOpen bool   `json:"default_open"`
	Items       []Item `json:"items"`
}

// Menu is the full static navigation tree. Order is significant and must be
// preserved by filtering; visibility is derived from this one table and never
// duplicated per screen.
var Menu = []Group{
	{
		Title:       "Overview",
		Roles:       constants.ValidRoles,
		DefaultOpen: true,
		Items: []Item{
			{Label: "Dashboard", Path: "/dashboard", Icon: "gauge", Roles: []string{constants.SuperAdmin, constants.Ops}},
			{Label: "Production", Path: "/vendor/production", Icon: "factory", Roles: []string{constants.VendorAdmin}},
			{Label: "Kitchen", Path: "/vendor/kitchen", Icon: "chef-hat", Roles: []string{constants.VendorAdmin, constants.VendorStaff}},
		},
	},
	{
		Title:       "Management",
		Roles:       []string{constants.SuperAdmin, constants.Ops},
		DefaultOpen: true,
		Items: []Item{
			{Label: "Vendors", Path: "/vendors", Icon: "store"},
			{Label: "Subscriptions", Path: "/subscriptions", Icon: "repeat"},
			{Label: "Offers", Path: "/offers", Icon: "tag", Roles: []string{constants.SuperAdmin}},
			{Label: "Reports", Path: "/reports", Icon: "bar-chart"},
		},
	},
	{
		Title:       "Kitchen Ops",
		Roles:       []string{constants.VendorAdmin, constants.VendorStaff},
		DefaultOpen: true,
		Items: []Item{
			{Label: "Menu Planner", Path: "/vendor/menu", Icon: "utensils", Roles: []string{constants.VendorAdmin}},
			{Label: "Inventory", Path: "/vendor/inventory", Icon: "boxes"},
			{Label: "Dispatch", Path: "/vendor/dispatch", Icon: "truck"},
			{Label: "Profile", Path: "/vendor/profile", Icon: "id-card", Roles: []string{constants.VendorAdmin}},
		},
	},
	{
		Title:       "Settings",
		Roles:       []string{constants.SuperAdmin},
		DefaultOpen: false,
		Items: []Item{
			{Label: "Staff & Roles", Path: "/settings/staff", Icon: "users"},
			{Label: "Integrations", Path: "/settings/integrations", Icon: "plug"},
		},
	},
}
