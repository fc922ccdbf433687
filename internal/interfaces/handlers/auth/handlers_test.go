package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	authsvc "aaharly-backend/internal/application/auth"
	"aaharly-backend/internal/domain"
	"aaharly-backend/internal/middleware"
	"aaharly-backend/internal/pkg/constants"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVendorAuth for handler tests: configured vendor or error.
type fakeVendorAuth struct {
	vendor   *domain.Vendor
	password string
}

func (f *fakeVendorAuth) Authenticate(ctx context.Context, identifier, password string) (*domain.Vendor, error) {
	if f.vendor == nil || (identifier != f.vendor.Email && identifier != f.vendor.Phone) {
		return nil, authsvc.ErrAccountNotFound
	}
	if password != f.password {
		return nil, authsvc.ErrIncorrectPassword
	}
	if !f.vendor.Active {
		return nil, authsvc.ErrAccountInactive
	}
	return f.vendor, nil
}

func setupAuthHandlers(t *testing.T, vendors authsvc.VendorAuthenticator) (*Handlers, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	h := &Handlers{
		Auth:               &authsvc.Service{Vendors: vendors},
		Tokens:             &authsvc.TokenBridge{Rdb: rdb},
		Rdb:                rdb,
		Config:             middleware.SessionConfig{},
		AllowImpersonation: true,
	}
	return h, rdb
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}, []string) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out, resp.Header.Values("Set-Cookie")
}

func dataOf(t *testing.T, out map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, _ := out["data"].(map[string]interface{})
	require.NotNil(t, data)
	return data
}

func TestLogin_MissingCredentials(t *testing.T) {
	h, _ := setupAuthHandlers(t, nil)
	app := fiber.New()
	app.Post("/login", h.Login)

	code, _, _ := doJSON(t, app, "POST", "/login", map[string]string{"email": "a@b.com"})
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestLogin_SuperAdminScenario(t *testing.T) {
	h, rdb := setupAuthHandlers(t, nil)
	app := fiber.New()
	app.Post("/login", h.Login)

	code, out, cookies := doJSON(t, app, "POST", "/login", map[string]string{
		"email": "admin@aaharly.com", "password": "admin123",
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "success", out["status"])

	data := dataOf(t, out)
	sess, _ := data["session"].(map[string]interface{})
	require.NotNil(t, sess)
	assert.Equal(t, constants.SuperAdmin, sess["role"])
	assert.Equal(t, true, sess["is_authenticated"])
	assert.Equal(t, "/dashboard", data["landing"])

	require.NotEmpty(t, cookies)
	assert.Contains(t, cookies[0], "aaharly.sid=")

	ctx := context.Background()
	adminKeys, err := rdb.Keys(ctx, "admin_token:*").Result()
	require.NoError(t, err)
	assert.Len(t, adminKeys, 1, "admin token stored")
	vendorKeys, err := rdb.Keys(ctx, "vendor_token:*").Result()
	require.NoError(t, err)
	assert.Empty(t, vendorKeys)
}

func TestLogin_DoubleFailureScenario(t *testing.T) {
	// Unrecognized pair that also fails vendor authentication.
	h, rdb := setupAuthHandlers(t, &fakeVendorAuth{})
	app := fiber.New()
	app.Post("/login", h.Login)

	code, out, _ := doJSON(t, app, "POST", "/login", map[string]string{
		"email": "nobody@example.com", "password": "nope",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
	errObj, _ := out["error"].(map[string]interface{})
	require.NotNil(t, errObj)
	assert.Equal(t, "Invalid credentials", errObj["message"])

	keys, err := rdb.Keys(context.Background(), "*token:*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys, "no token stored on failed login")
}

func TestLogin_VendorSuccess(t *testing.T) {
	vid := uuid.New()
	h, rdb := setupAuthHandlers(t, &fakeVendorAuth{
		vendor:   &domain.Vendor{VendorID: vid, Name: "Spice Route Kitchen", Email: "owner@spiceroute.in", Active: true},
		password: "secret123",
	})
	app := fiber.New()
	app.Post("/login", h.Login)

	code, out, _ := doJSON(t, app, "POST", "/login", map[string]string{
		"email": "owner@spiceroute.in", "password": "secret123",
	})
	assert.Equal(t, fiber.StatusOK, code)
	data := dataOf(t, out)
	sess, _ := data["session"].(map[string]interface{})
	assert.Equal(t, constants.VendorAdmin, sess["role"])
	assert.Equal(t, "/vendor/production", data["landing"])

	identity, _ := sess["identity"].(map[string]interface{})
	require.NotNil(t, identity)
	assert.Equal(t, "Spice Route Kitchen", identity["display_name"])

	vendorKeys, err := rdb.Keys(context.Background(), "vendor_token:*").Result()
	require.NoError(t, err)
	assert.Len(t, vendorKeys, 1)
}

func TestLogin_VendorRejectionMessageVerbatim(t *testing.T) {
	h, _ := setupAuthHandlers(t, &fakeVendorAuth{
		vendor:   &domain.Vendor{VendorID: uuid.New(), Email: "closed@spiceroute.in", Active: false},
		password: "secret123",
	})
	app := fiber.New()
	app.Post("/login", h.Login)

	code, out, _ := doJSON(t, app, "POST", "/login", map[string]string{
		"email": "closed@spiceroute.in", "password": "secret123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
	errObj, _ := out["error"].(map[string]interface{})
	assert.Equal(t, "Account is inactive. Contact support.", errObj["message"])
}

func withSession(h fiber.Handler, sid string, user map[string]interface{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data := map[string]interface{}{}
		if user != nil {
			data["user"] = user
		}
		c.Locals("session_data", data)
		c.Locals("session_id", sid)
		if user != nil {
			c.Locals("user", data["user"])
		}
		return h(c)
	}
}

func superAdminSessionUser() map[string]interface{} {
	return map[string]interface{}{
		"role":          constants.SuperAdmin,
		"display_name":  "Aaharly Admin",
		"initials":      "AD",
		"contact_label": "admin@aaharly.com",
	}
}

func TestLogout_ClearsBothSlotsAndSession(t *testing.T) {
	h, rdb := setupAuthHandlers(t, nil)
	ctx := context.Background()
	sid := uuid.New().String()

	// Only the vendor slot is populated; no admin token exists.
	require.NoError(t, rdb.Set(ctx, "vendor_token:"+sid, "tok-v", 0).Err())
	require.NoError(t, rdb.Set(ctx, middleware.SessionRedisPrefix+sid, `{"user":{"role":"VENDOR_ADMIN"}}`, 0).Err())

	app := fiber.New()
	app.Delete("/logout", withSession(h.Logout, sid, superAdminSessionUser()))

	code, out, cookies := doJSON(t, app, "DELETE", "/logout", nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Logged out successfully", out["message"])

	keys, err := rdb.Keys(ctx, "*token:*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys, "both token slots absent after logout")

	exists, err := rdb.Exists(ctx, middleware.SessionRedisPrefix+sid).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)

	require.NotEmpty(t, cookies)
	assert.Contains(t, cookies[0], "aaharly.sid=")
}

func TestLogout_NoSessionStillSucceeds(t *testing.T) {
	h, _ := setupAuthHandlers(t, nil)
	app := fiber.New()
	app.Delete("/logout", h.Logout)

	code, _, _ := doJSON(t, app, "DELETE", "/logout", nil)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestMe_NoSession(t *testing.T) {
	h, _ := setupAuthHandlers(t, nil)
	app := fiber.New()
	app.Get("/me", h.Me)

	code, _, _ := doJSON(t, app, "GET", "/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestMe_WithSession(t *testing.T) {
	h, _ := setupAuthHandlers(t, nil)
	app := fiber.New()
	app.Get("/me", withSession(h.Me, uuid.New().String(), superAdminSessionUser()))

	code, out, _ := doJSON(t, app, "GET", "/me", nil)
	assert.Equal(t, fiber.StatusOK, code)
	data := dataOf(t, out)
	sess, _ := data["session"].(map[string]interface{})
	assert.Equal(t, constants.SuperAdmin, sess["role"])
	assert.Equal(t, "/dashboard", data["landing"])
}

func TestSwitchRole_ToVendorStaffScenario(t *testing.T) {
	h, _ := setupAuthHandlers(t, nil)
	app := fiber.New()
	app.Post("/switch-role", withSession(h.SwitchRole, uuid.New().String(), superAdminSessionUser()))

	code, out, _ := doJSON(t, app, "POST", "/switch-role", map[string]string{"role": constants.VendorStaff})
	assert.Equal(t, fiber.StatusOK, code)

	data := dataOf(t, out)
	assert.Equal(t, true, data["switched"])
	assert.Equal(t, "/vendor/kitchen", data["landing"])
	sess, _ := data["session"].(map[string]interface{})
	assert.Equal(t, constants.VendorStaff, sess["role"])
	identity, _ := sess["identity"].(map[string]interface{})
	assert.Equal(t, "Kitchen Staff", identity["display_name"])
}

func TestSwitchRole_SameRoleIsNoOp(t *testing.T) {
	h, _ := setupAuthHandlers(t, nil)
	app := fiber.New()
	app.Post("/switch-role", withSession(h.SwitchRole, uuid.New().String(), superAdminSessionUser()))

	code, out, _ := doJSON(t, app, "POST", "/switch-role", map[string]string{"role": constants.SuperAdmin})
	assert.Equal(t, fiber.StatusOK, code)
	data := dataOf(t, out)
	assert.Equal(t, false, data["switched"])
	assert.Equal(t, "/dashboard", data["landing"])
	sess, _ := data["session"].(map[string]interface{})
	identity, _ := sess["identity"].(map[string]interface{})
	assert.Equal(t, "Aaharly Admin", identity["display_name"], "identity unchanged on no-op switch")
}

func TestSwitchRole_OpsRejected(t *testing.T) {
	h, _ := setupAuthHandlers(t, nil)
	app := fiber.New()
	app.Post("/switch-role", withSession(h.SwitchRole, uuid.New().String(), superAdminSessionUser()))

	code, out, _ := doJSON(t, app, "POST", "/switch-role", map[string]string{"role": constants.Ops})
	assert.Equal(t, fiber.StatusBadRequest, code)
	errObj, _ := out["error"].(map[string]interface{})
	assert.Equal(t, "Role is not switchable", errObj["message"])
}

func TestSwitchRole_DisabledInProduction(t *testing.T) {
	h, _ := setupAuthHandlers(t, nil)
	h.AllowImpersonation = false
	app := fiber.New()
	app.Post("/switch-role", withSession(h.SwitchRole, uuid.New().String(), superAdminSessionUser()))

	code, _, _ := doJSON(t, app, "POST", "/switch-role", map[string]string{"role": constants.VendorStaff})
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestSwitchRole_Unauthenticated(t *testing.T) {
	h, _ := setupAuthHandlers(t, nil)
	app := fiber.New()
	app.Post("/switch-role", h.SwitchRole)

	code, _, _ := doJSON(t, app, "POST", "/switch-role", map[string]string{"role": constants.VendorStaff})
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestLoginLogout_RoundTripToDefaultState(t *testing.T) {
	h, rdb := setupAuthHandlers(t, nil)
	ctx := context.Background()

	app := fiber.New()
	app.Post("/login", h.Login)
	app.Delete("/logout", func(c *fiber.Ctx) error {
		// Simulate the session middleware having loaded the session created
		// by login: pick up the stored session id from Redis.
		keys, _ := rdb.Keys(ctx, "admin_token:*").Result()
		if len(keys) > 0 {
			sid := keys[0][len("admin_token:"):]
			c.Locals("session_id", sid)
			c.Locals("session_data", map[string]interface{}{})
		}
		return h.Logout(c)
	})

	code, _, _ := doJSON(t, app, "POST", "/login", map[string]string{
		"email": "admin@aaharly.com", "password": "admin123",
	})
	require.Equal(t, fiber.StatusOK, code)

	code, _, _ = doJSON(t, app, "DELETE", "/logout", nil)
	require.Equal(t, fiber.StatusOK, code)

	keys, err := rdb.Keys(ctx, "*token:*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys, "both token slots empty after round trip")
}
