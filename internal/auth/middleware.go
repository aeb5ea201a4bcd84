package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

// CtxEmployeeID holds the authenticated employee's id on the request context.
const CtxEmployeeID ctxKey = "employeeID"

// Middleware rejects requests without a valid Bearer token and injects the
// employee id into the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}
		claims, err := ValidateToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxEmployeeID, claims.EmployeeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// EmployeeID extracts the authenticated employee id from the context.
func EmployeeID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(CtxEmployeeID).(uint)
	return id, ok
}
