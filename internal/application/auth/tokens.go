package auth

import (
	"context"

	"aaharly-backend/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Token slot key prefixes. Two independent durable slots per session: one for
// the admin login path, one for the vendor path.
const (
	adminTokenPrefix  = "admin_token:"
	vendorTokenPrefix = "vendor_token:"
)

// TokenBridge is the only component that touches durable credential storage.
// Login stores a token under the slot matching the strategy that succeeded;
// logout clears both slots, since the active kind is not always known at
// logout time.
type TokenBridge struct {
	Rdb *redis.Client
}

// Store persists the credential token under the slot's key for this session.
func (b *TokenBridge) Store(ctx context.Context, sessionID, slot, token string) error {
	key := vendorTokenPrefix + sessionID
	if slot == SlotAdmin {
		key = adminTokenPrefix + sessionID
	}
	return b.Rdb.Set(ctx, key, token, middleware.SessionMaxAge).Err()
}

// ClearAll removes both token slots. Deleting an absent key is not an error.
func (b *TokenBridge) ClearAll(ctx context.Context, sessionID string) error {
	return b.Rdb.Del(ctx, adminTokenPrefix+sessionID, vendorTokenPrefix+sessionID).Err()
}

// AdminToken returns the stored admin-slot token ("" if absent).
func (b *TokenBridge) AdminToken(ctx context.Context, sessionID string) string {
	v, _ := b.Rdb.Get(ctx, adminTokenPrefix+sessionID).Result()
	return v
}

// VendorToken returns the stored vendor-slot token ("" if absent).
func (b *TokenBridge) VendorToken(ctx context.Context, sessionID string) string {
	v, _ := b.Rdb.Get(ctx, vendorTokenPrefix+sessionID).Result()
	return v
}
