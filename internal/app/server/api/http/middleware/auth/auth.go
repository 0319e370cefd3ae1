package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"cardbox/internal/identity"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Auth resolves the caller identity from the Authorization header before any
// handler logic runs. Requests without a verifiable identity never reach a
// handler, so no storage access happens for them.
type Auth struct {
	verifier identity.Verifier
	log      *slog.Logger
}

func New(verifier identity.Verifier, log *slog.Logger) *Auth {
	return &Auth{
		verifier: verifier,
		log:      log.With("component", "auth_middleware"),
	}
}

type contextKey string

const emailKey contextKey = "ownerEmail"

func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			a.reject(ctx)
			return
		}

		email, err := a.verifier.Verify(token)
		if err != nil {
			a.log.Debug("token verification failed", "error", err)
			a.reject(ctx)
			return
		}

		newCtx := WithEmail(ctx.Context(), email)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) reject(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	})
	if err != nil {
		a.log.Error("failed to write unauthorized response", "error", err)
	}
}

// WithEmail stores the verified owner email in the context.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// GetEmail returns the verified owner email placed by the middleware.
func GetEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}
