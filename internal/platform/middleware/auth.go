package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKeySubject struct{}

// GetSubject retrieves the authenticated subject from the context.
func GetSubject(ctx context.Context) string {
	if subject, ok := ctx.Value(contextKeySubject{}).(string); ok {
		return subject
	}
	return ""
}

// RequireAuth validates a bearer JWT signed with the shared HMAC key and
// stores the token subject in the request context. Write endpoints (event
// producers, submit) sit behind this; read projections are left to the
// deployment's gateway.
func RequireAuth(signingKey []byte, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := GetRequestID(ctx)

			authHeader := r.Header.Get("Authorization")
			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				logger.WarnContext(ctx, "unauthorized access - missing bearer token",
					"request_id", requestID,
					"path", r.URL.Path,
				)
				writeAuthError(w, "missing bearer token")
				return
			}

			token, err := jwt.Parse(strings.TrimPrefix(authHeader, bearerPrefix), func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return signingKey, nil
			})
			if err != nil || !token.Valid {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"request_id", requestID,
					"error", err,
				)
				writeAuthError(w, "invalid token")
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				logger.WarnContext(ctx, "unauthorized access - token missing subject",
					"request_id", requestID,
				)
				writeAuthError(w, "token missing subject")
				return
			}

			ctx = context.WithValue(ctx, contextKeySubject{}, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
