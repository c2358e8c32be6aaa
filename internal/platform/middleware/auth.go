package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"curio/pkg/domain"
	dErrors "curio/pkg/domain-errors"
	"curio/pkg/platform/httputil"
	"curio/pkg/requestcontext"
)

// TokenValidator validates a bearer token and returns the account it
// identifies.
type TokenValidator interface {
	ValidateToken(tokenString string) (domain.Address, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's account in the request context.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				logger.WarnContext(ctx, "unauthorized request, missing bearer token",
					"request_id", requestcontext.RequestID(ctx))
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing or invalid Authorization header"))
				return
			}

			caller, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized request, invalid token",
					"error", err.Error(),
					"request_id", requestcontext.RequestID(ctx))
				httputil.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithCaller(ctx, caller)))
		})
	}
}
