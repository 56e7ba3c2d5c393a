package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sankaL/loku-caters-sub000/internal/auth"

	"github.com/jackc/pgx/v5/pgxpool"
)

type contextKey string

const authContextKey contextKey = "authContext"

type AuthContext struct {
	AdminID string
	Email   string
}

func WithAuthContext(ctx context.Context, authCtx *AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey, authCtx)
}

func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	value := ctx.Value(authContextKey)
	if value == nil {
		return nil, false
	}
	ac, ok := value.(*AuthContext)
	return ac, ok
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "UNAUTHORIZED",
		"message": message,
	})
}

// AdminAuth guards the back-office routes: it verifies the Bearer token and
// checks the admin account still exists and is enabled, so a disabled admin
// loses access before their token expires.
func AdminAuth(db *pgxpool.Pool, jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ParseBearerToken(r.Header.Get("Authorization"))
			claims, err := auth.VerifyAdminToken(token, jwtSecret)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "Authorization token required")
				return
			}

			var active bool
			err = db.QueryRow(r.Context(), `
				select is_active from admin_users where id = $1
			`, claims.AdminID).Scan(&active)
			if err != nil || !active {
				writeAuthError(w, http.StatusForbidden, "Admin access is disabled")
				return
			}

			ctx := WithAuthContext(r.Context(), &AuthContext{
				AdminID: claims.AdminID,
				Email:   claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
