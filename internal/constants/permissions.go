package constants

const (
	ViewReports         = "view_reports"
	ManageVendors       = "manage_vendors"
	ManageSubscribers   = "manage_subscribers"
	ManageOffers        = "manage_offers"
	ManageMenu          = "manage_menu"
	RecordProduction    = "record_production"
	DispatchOrders      = "dispatch_orders"
	UpdateVendorProfile = "update_vendor_profile"
	ImpersonateRoles    = "impersonate_roles"
)
