package model

import (
	"context"
	"strings"
	"time"

	"tripbook/shared/constant"

	"github.com/google/uuid"
)

const cacheKeyPrefix = "session"

// Session is the signed-in shopper. The booking core never reads it; it only decides
// who owns a submitted booking and who may list them.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	TokenID   string    `json:"token_id"`
	LoggedIn  bool      `json:"logged_in"`
	CreatedAt time.Time `json:"created_at"`
}

// UserIDFor derives a stable user id from an email so repeat logins own the same bookings.
func UserIDFor(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(strings.TrimSpace(email)))).String()
}

func CacheKey(tokenID string) string {
	return cacheKeyPrefix + ":" + tokenID
}

type contextKey struct{}

// WithSession stores s on ctx along with the user keys the service layer reads.
func WithSession(ctx context.Context, s Session) context.Context {
	ctx = context.WithValue(ctx, contextKey{}, s)
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, s.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, s.Email)

	return context.WithValue(ctx, constant.ContextKeyTokenID, s.TokenID)
}

// FromContext returns the session on ctx, or a logged out one.
func FromContext(ctx context.Context) Session {
	s, ok := ctx.Value(contextKey{}).(Session)
	if !ok {
		return Session{}
	}

	return s
}
