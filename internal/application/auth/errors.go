package auth

import "errors"

var (
	ErrNotAuthenticated  = errors.New("Not authenticated")
	ErrInvalidRole       = errors.New("Invalid role")
	ErrRoleNotSwitchable = errors.New("Role is not switchable")
	ErrSwitchingDisabled = errors.New("Role switching is disabled")
)

// Credential errors shared by the login strategies. The vendor authenticator
// returns these so the unified result can tell "no account" (falls through to
// invalid_credential) apart from structured rejections whose message the
// console shows verbatim.
var (
	ErrIdentifierRequired = errors.New("Email/phone and password are required")
	ErrAccountNotFound    = errors.New("Account not found")
	ErrIncorrectPassword  = errors.New("Incorrect Password")
	ErrAccountInactive    = errors.New("Account is inactive. Contact support.")
)
