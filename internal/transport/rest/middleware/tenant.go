package middleware

import (
	"context"
	"net/http"
	"strings"

	"dancenavi/internal/service"
)

type contextKey string

const SchoolIDKey contextKey = "schoolId"

// TenantMiddleware pins requests to the school encoded in a bearer token
type TenantMiddleware struct {
	authSvc *service.AuthService
}

// NewTenantMiddleware creates a new tenant middleware
func NewTenantMiddleware(authSvc *service.AuthService) *TenantMiddleware {
	return &TenantMiddleware{authSvc: authSvc}
}

// WithTenant resolves an optional bearer token into a context schoolId. A
// present-but-invalid token is rejected; no token leaves tenant selection to
// the request body.
func (m *TenantMiddleware) WithTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.authSvc.ValidateTenantToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), SchoolIDKey, claims.SchoolID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSchoolID extracts the token-pinned school id from context
func GetSchoolID(ctx context.Context) string {
	if v := ctx.Value(SchoolIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
