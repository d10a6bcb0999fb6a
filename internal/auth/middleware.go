package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const (
	claimsKey contextKey = "auth_claims"
	ownerKey  contextKey = "auth_owner"
)

// ClaimsFromContext extracts JWT claims from request context.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

// OwnerIDFromContext extracts the authenticated owner ID from request context.
// Returns uuid.Nil when the request was not authenticated.
func OwnerIDFromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(ownerKey).(uuid.UUID)
	return id
}

// Authenticate returns middleware that validates Bearer tokens and stores
// the owner ID in the request context.
func Authenticate(jwtMgr *JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, http.StatusUnauthorized)
				return
			}

			claims, err := jwtMgr.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, `{"code":"UNAUTHORIZED","message":"invalid token"}`, http.StatusUnauthorized)
				return
			}

			ownerID, err := uuid.Parse(claims.Subject)
			if err != nil {
				http.Error(w, `{"code":"UNAUTHORIZED","message":"invalid token subject"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			ctx = context.WithValue(ctx, ownerKey, ownerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
