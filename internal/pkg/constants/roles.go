package constants

const (
	SuperAdmin  = "SUPER_ADMIN"
	Ops         = "OPS"
	VendorAdmin = "VENDOR_ADMIN"
	VendorStaff = "VENDOR_STAFF"
)

// ValidRoles is the closed set of session roles. Exactly one is active per session.
var ValidRoles = []string{SuperAdmin, Ops, VendorAdmin, VendorStaff}

// SwitchableRoles are the roles the profile switcher may impersonate. OPS is a
// valid role but is only provisioned through the backoffice, never the switcher.
var SwitchableRoles = []string{SuperAdmin, VendorAdmin, VendorStaff}

// IsValidRole returns true if role is a member of the closed role set.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsSwitchableRole returns true if the profile switcher may target role.
func IsSwitchableRole(role string) bool {
	for _, r := range SwitchableRoles {
		if r == role {
			return true
		}
	}
	return false
}
