package vendors

import (
	vendorsvc "aaharly-backend/internal/application/vendor"
	"aaharly-backend/internal/middleware"
	"aaharly-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Handlers serves the vendor screens: the vendor's own profile plus the
// management list the admin console uses.
type Handlers struct {
	Service *vendorsvc.Service
}

// sessionVendorID returns the vendor bound to the session ("" for admin or
// impersonated sessions, which have no real vendor behind them).
func sessionVendorID(c *fiber.Ctx) string {
	m, ok := middleware.GetUser(c).(map[string]interface{})
	if !ok {
		return ""
	}
	v, _ := m["vendor_id"].(string)
	return v
}

// Profile GET /api/v1/vendors/profile — the session vendor's own profile.
func (h *Handlers) Profile(c *fiber.Ctx) error {
	vendorID := sessionVendorID(c)
	if vendorID == "" {
		return response.Error(c, "No vendor bound to this session", fiber.StatusNotFound, nil)
	}
	v, err := h.Service.GetProfile(c.Context(), vendorID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.Error(c, "Vendor not found", fiber.StatusNotFound, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Vendor profile", fiber.Map{"vendor": v}, nil)
}

// UpdateProfileRequest body; absent fields are left untouched.
type UpdateProfileRequest struct {
	Name     *string        `json:"name"`
	Phone    *string        `json:"phone"`
	Cuisine  *string        `json:"cuisine"`
	Settings datatypes.JSON `json:"settings"`
}

// UpdateProfile PATCH /api/v1/vendors/profile — partial update of the session
// vendor's profile.
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	vendorID := sessionVendorID(c)
	if vendorID == "" {
		return response.Error(c, "No vendor bound to this session", fiber.StatusNotFound, nil)
	}
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	v, err := h.Service.UpdateProfile(c.Context(), vendorID, vendorsvc.UpdateProfileInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Cuisine:  req.Cuisine,
		Settings: req.Settings,
	})
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Vendor profile updated", fiber.Map{"vendor": v}, nil)
}

// List GET /api/v1/vendors — all vendors for the management screen.
func (h *Handlers) List(c *fiber.Ctx) error {
	vendors, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Vendors", fiber.Map{"vendors": vendors}, nil)
}

// SetStatusRequest body for PATCH /:id/status.
type SetStatusRequest struct {
	Active *bool `json:"active"`
}

// SetStatus PATCH /api/v1/vendors/:id/status — toggle a vendor's active flag.
// Inactive vendors can no longer authenticate.
func (h *Handlers) SetStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return response.Error(c, "Invalid vendor id", fiber.StatusBadRequest, nil)
	}
	var req SetStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Active == nil {
		return response.Error(c, "active is required", fiber.StatusBadRequest, nil)
	}
	v, err := h.Service.SetActive(c.Context(), id, *req.Active)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.Error(c, "Vendor not found", fiber.StatusNotFound, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Vendor status updated", fiber.Map{"vendor": v}, nil)
}
