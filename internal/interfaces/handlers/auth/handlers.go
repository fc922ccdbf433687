package auth

import (
	"context"

	authsvc "aaharly-backend/internal/application/auth"
	"aaharly-backend/internal/middleware"
	"aaharly-backend/internal/nav"
	"aaharly-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Handlers holds dependencies for the auth endpoints.
type Handlers struct {
	Auth   *authsvc.Service
	Tokens *authsvc.TokenBridge
	Rdb    *redis.Client
	Config middleware.SessionConfig
	// AllowImpersonation gates POST /switch-role. When false the switcher
	// returns 403 and performs no mutation.
	AllowImpersonation bool
}

// LoginRequest body. Email doubles as the vendor phone identifier.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login POST /api/v1/auth/login — run the dual-strategy login, create the
// session, persist the credential token under the winning slot, set the
// cookie, return the session snapshot plus the landing route.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Email and password are required", fiber.StatusBadRequest, nil)
	}
	if req.Email == "" || req.Password == "" {
		return response.Error(c, "Email and password are required", fiber.StatusBadRequest, nil)
	}

	res := h.Auth.Login(c.Context(), req.Email, req.Password)
	switch res.Kind {
	case authsvc.KindInvalidCredential:
		return response.Unauthorized(c, "Invalid credentials", nil)
	case authsvc.KindRejected:
		// Message preserved verbatim so the console can specialize it
		// (e.g. the inactive-account hint).
		return response.Unauthorized(c, res.Reason, fiber.Map{"kind": "rejected"})
	}

	sessionID := middleware.RegenerateSessionID(c)
	middleware.SetSessionUser(c, sessionUserFromSession(res.Session))

	if err := h.Tokens.Store(context.Background(), sessionID, res.Slot, res.Token); err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = sessionID
	c.Cookie(&cookie)

	log.Info().Str("role", res.Session.Role).Str("slot", res.Slot).Msg("auth/login: success")
	return response.Success(c, "Login successful", fiber.Map{
		"session": res.Session,
		"landing": nav.Landing(res.Session.Role),
	}, nil)
}

// Me GET /api/v1/auth/me — return the current session snapshot.
func (h *Handlers) Me(c *fiber.Ctx) error {
	sessionID := middleware.GetSessionID(c)
	sessionUser := middleware.GetUser(c)

	sess, err := authsvc.VerifySession(sessionUser)
	if err != nil {
		if sessionID == "" {
			cookieVal := c.Cookies(middleware.SessionCookieName)
			log.Info().Str("path", "/auth/me").
				Bool("cookie_present", cookieVal != "").
				Msg("auth/me: no session id")
		}
		return response.Unauthorized(c, "Not authenticated", nil)
	}
	return response.Success(c, "Authenticated", fiber.Map{
		"session": sess,
		"landing": nav.Landing(sess.Role),
	}, nil)
}

// Logout DELETE /api/v1/auth/logout — clear both token slots, delete the
// session key, reset Locals, clear the cookie. Unconditional: succeeds even
// when nothing was stored.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	sessionID := middleware.GetSessionID(c)
	ctx := context.Background()

	if sessionID != "" {
		_ = h.Tokens.ClearAll(ctx, sessionID)
		_ = h.Rdb.Del(ctx, middleware.SessionRedisPrefix+sessionID).Err()
	}
	middleware.DestroySession(c)
	// Keep the id so the session middleware persists the now-empty session
	// instead of resurrecting the old one on a stale cookie.

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = ""
	cookie.MaxAge = -1
	c.Cookie(&cookie)

	return response.Success(c, "Logged out successfully", nil, nil)
}

// SwitchRoleRequest body for POST /switch-role.
type SwitchRoleRequest struct {
	Role string `json:"role"`
}

// SwitchRole POST /api/v1/auth/switch-role — development impersonation:
// change the active role within the same session, no re-authentication and no
// server-side revalidation. The response carries the landing route for the new
// role so the shell navigates to root and re-resolves.
func (h *Handlers) SwitchRole(c *fiber.Ctx) error {
	if !h.AllowImpersonation {
		return response.Forbidden(c, authsvc.ErrSwitchingDisabled.Error())
	}

	sess, err := authsvc.VerifySession(middleware.GetUser(c))
	if err != nil {
		return response.Unauthorized(c, "Not authenticated", nil)
	}

	var req SwitchRoleRequest
	if err := c.BodyParser(&req); err != nil || req.Role == "" {
		return response.Error(c, "Role is required", fiber.StatusBadRequest, nil)
	}

	next, changed, err := h.Auth.SwitchRole(sess, req.Role)
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	}
	if changed {
		middleware.SetSessionUser(c, sessionUserFromSession(next))
		log.Info().Str("from", sess.Role).Str("to", next.Role).Msg("auth/switch-role: impersonation switch")
	}
	return response.Success(c, "Role ready", fiber.Map{
		"switched": changed,
		"session":  next,
		"landing":  nav.Landing(next.Role),
	}, nil)
}

func sessionUserFromSession(s authsvc.Session) middleware.SessionUser {
	return middleware.SessionUser{
		Role:         s.Role,
		DisplayName:  s.Identity.DisplayName,
		Initials:     s.Identity.Initials,
		ContactLabel: s.Identity.ContactLabel,
		VendorID:     s.VendorID,
	}
}
