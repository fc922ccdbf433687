package auth

import (
	"context"

	"aaharly-backend/internal/domain"
	"aaharly-backend/internal/pkg/constants"

	"github.com/google/uuid"
)

// The hard-coded super-admin credential, checked before any vendor lookup.
const (
	superAdminEmail    = "admin@aaharly.com"
	superAdminPassword = "admin123"
)

// Token slot names: which login path succeeded decides which durable slot the
// credential token is stored under.
const (
	SlotAdmin  = "admin"
	SlotVendor = "vendor"
)

// Result kinds for the unified login result. Callers never need to know which
// authentication strategy was attempted.
const (
	KindOK                = "ok"
	KindInvalidCredential = "invalid_credential"
	KindRejected          = "rejected"
)

// LoginResult is the single result type for both login strategies:
// Kind "ok" carries the new session, the credential token, and its slot;
// "invalid_credential" means neither strategy matched; "rejected" means the
// vendor authenticator refused for a structured reason (wrong password,
// inactive account) and Reason carries the message verbatim.
type LoginResult struct {
	Kind    string
	Session Session
	Token   string
	Slot    string
	Reason  string
}

// VendorAuthenticator is the delegated vendor login strategy.
type VendorAuthenticator interface {
	Authenticate(ctx context.Context, identifier, password string) (*domain.Vendor, error)
}

// Service is the identity core. Injectable (no package state) so tests can run
// independent sessions in parallel.
type Service struct {
	Vendors VendorAuthenticator // nil disables the vendor strategy
}

// Login attempts the two strategies in fixed priority order: the hard-coded
// super-admin check, then delegation to the vendor authenticator. A vendor
// account always lands on VENDOR_ADMIN regardless of its actual staffing.
func (s *Service) Login(ctx context.Context, email, password string) LoginResult {
	if email == superAdminEmail && password == superAdminPassword {
		return LoginResult{
			Kind: KindOK,
			Session: Session{
				IsAuthenticated: true,
				Role:            constants.SuperAdmin,
				Identity:        RoleIdentity(constants.SuperAdmin),
			},
			Token: uuid.New().String(),
			Slot:  SlotAdmin,
		}
	}

	if s.Vendors == nil {
		return LoginResult{Kind: KindInvalidCredential, Session: DefaultSession()}
	}

	v, err := s.Vendors.Authenticate(ctx, email, password)
	if err != nil {
		if err == ErrAccountNotFound {
			// Unknown identity: treat as "no strategy matched", not a rejection.
			return LoginResult{Kind: KindInvalidCredential, Session: DefaultSession()}
		}
		return LoginResult{Kind: KindRejected, Session: DefaultSession(), Reason: err.Error()}
	}

	vendorID := v.VendorID.String()
	return LoginResult{
		Kind: KindOK,
		Session: Session{
			IsAuthenticated: true,
			Role:            constants.VendorAdmin,
			Identity: Identity{
				DisplayName:  v.Name,
				Initials:     Initials(v.Name),
				ContactLabel: v.Email,
			},
			VendorID: &vendorID,
		},
		Token: uuid.New().String(),
		Slot:  SlotVendor,
	}
}

// SwitchRole changes the active role of an authenticated session without a new
// authentication round-trip. Switching to the current role is a no-op (the
// returned session is the input, changed=false). The new identity comes from
// the fixed per-role label table; any vendor binding is dropped because the
// impersonated identity is synthetic.
func (s *Service) SwitchRole(cur Session, newRole string) (Session, bool, error) {
	if !cur.IsAuthenticated {
		return cur, false, ErrNotAuthenticated
	}
	if !constants.IsValidRole(newRole) {
		return cur, false, ErrInvalidRole
	}
	if !constants.IsSwitchableRole(newRole) {
		return cur, false, ErrRoleNotSwitchable
	}
	if newRole == cur.Role {
		return cur, false, nil
	}
	return Session{
		IsAuthenticated: true,
		Role:            newRole,
		Identity:        RoleIdentity(newRole),
	}, true, nil
}

// VerifySession validates the raw session user (as stored in the session map)
// and returns the typed session for /me and the switcher.
func VerifySession(sessionUser interface{}) (Session, error) {
	m, ok := sessionUser.(map[string]interface{})
	if !ok {
		return DefaultSession(), ErrNotAuthenticated
	}
	role, _ := m["role"].(string)
	if role == "" {
		return DefaultSession(), ErrNotAuthenticated
	}
	sess := Session{
		IsAuthenticated: true,
		Role:            role,
		Identity: Identity{
			DisplayName:  str(m["display_name"]),
			Initials:     str(m["initials"]),
			ContactLabel: str(m["contact_label"]),
		},
	}
	if v, ok := m["vendor_id"]; ok && v != nil {
		if s, ok := v.(string); ok && s != "" {
			sess.VendorID = &s
		}
	}
	return sess, nil
}

func str(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
