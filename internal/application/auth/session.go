package auth

import (
	"strings"

	"aaharly-backend/internal/pkg/constants"
)

// Identity is the display identity shown in the console shell.
type Identity struct {
	DisplayName  string `json:"display_name"`
	Initials     string `json:"initials"`
	ContactLabel string `json:"contact_label"`
}

// Session is the in-memory authentication state for one console session:
// the single value the route guard, role router, and navigation filter all
// derive from.
type Session struct {
	IsAuthenticated bool     `json:"is_authenticated"`
	Role            string   `json:"role"`
	Identity        Identity `json:"identity"`
	VendorID        *string  `json:"vendor_id,omitempty"`
}

// DefaultSession is the unauthenticated initial state. SUPER_ADMIN is the safe
// default role; nothing is reachable while IsAuthenticated is false.
func DefaultSession() Session {
	return Session{Role: constants.SuperAdmin}
}

// roleIdentities is the fixed per-role label table used for the super-admin
// login and for every impersonation switch (vendor logins derive their
// identity from the vendor profile instead).
var roleIdentities = map[string]Identity{
	constants.SuperAdmin:  {DisplayName: "Aaharly Admin", Initials: "AD", ContactLabel: "admin@aaharly.com"},
	constants.Ops:         {DisplayName: "Operations Desk", Initials: "OD", ContactLabel: "ops@aaharly.com"},
	constants.VendorAdmin: {DisplayName: "Vendor Admin", Initials: "VA", ContactLabel: "vendor@aaharly.com"},
	constants.VendorStaff: {DisplayName: "Kitchen Staff", Initials: "KS", ContactLabel: "kitchen@aaharly.com"},
}

// RoleIdentity returns the fixed display identity for a role. Unrecognized
// roles fall back to the super-admin label so the table stays total.
func RoleIdentity(role string) Identity {
	if id, ok := roleIdentities[role]; ok {
		return id
	}
	return roleIdentities[constants.SuperAdmin]
}

// Initials derives up to two uppercase initials from a display name.
func Initials(name string) string {
	fields := strings.Fields(name)
	var b strings.Builder
	for i, f := range fields {
		if i == 2 {
			break
		}
		r := []rune(f)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}
