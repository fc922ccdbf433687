package constants

import pkgconstants "aaharly-backend/internal/pkg/constants"

// PermissionRoles maps each console action to the roles allowed to perform it.
// Every permission decision is an explicit membership test against this table;
// roles are not hierarchical.
var PermissionRoles = map[string][]string{
	ViewReports:         {pkgconstants.SuperAdmin, pkgconstants.Ops},
	ManageVendors:       {pkgconstants.SuperAdmin, pkgconstants.Ops},
	ManageSubscribers:   {pkgconstants.SuperAdmin, pkgconstants.Ops},
	ManageOffers:        {pkgconstants.SuperAdmin},
	ManageMenu:          {pkgconstants.VendorAdmin},
	RecordProduction:    {pkgconstants.VendorAdmin, pkgconstants.VendorStaff},
	DispatchOrders:      {pkgconstants.VendorAdmin, pkgconstants.VendorStaff},
	UpdateVendorProfile: {pkgconstants.VendorAdmin},
	ImpersonateRoles:    {pkgconstants.SuperAdmin, pkgconstants.VendorAdmin, pkgconstants.VendorStaff},
}

// AllowedRole returns true if role is in the list of allowed roles for the permission.
func AllowedRole(permission, role string) bool {
	roles, ok := PermissionRoles[permission]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
