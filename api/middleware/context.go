package middleware

import (
	"context"

	"github.com/carebridge/eldercare-backend/pkg/auth"
	"github.com/carebridge/eldercare-backend/pkg/enums"
)

type contextKey string

const ctxSession contextKey = "session"

// SessionFromContext returns the claims seeded by RequireSession, or nil
// when the request is anonymous.
func SessionFromContext(ctx context.Context) *auth.SessionClaims {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxSession).(*auth.SessionClaims); ok {
		return v
	}
	return nil
}

func UserIDFromContext(ctx context.Context) int64 {
	if claims := SessionFromContext(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}

func RoleFromContext(ctx context.Context) enums.Role {
	if claims := SessionFromContext(ctx); claims != nil {
		return claims.Role
	}
	return ""
}

func NameFromContext(ctx context.Context) string {
	if claims := SessionFromContext(ctx); claims != nil {
		return claims.Name
	}
	return ""
}

// WithSession injects session claims into the context.
func WithSession(ctx context.Context, claims *auth.SessionClaims) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSession, claims)
}
