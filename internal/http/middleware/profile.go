package middleware

import (
	"context"
	"net/http"

	"github.com/briangreenhill/paceplan/profile"
)

type contextKey string

const ProfileKey contextKey = "runner_profile"

// WithProfile stashes a runner profile on the request context.
func WithProfile(ctx context.Context, p profile.Profile) context.Context {
	return context.WithValue(ctx, ProfileKey, p)
}

// ProfileFrom pulls the runner profile back out of the context.
func ProfileFrom(ctx context.Context) (profile.Profile, bool) {
	p, ok := ctx.Value(ProfileKey).(profile.Profile)
	return p, ok
}

// RequireProfile rejects requests whose session never established a runner
// profile. Creating a plan establishes one.
func RequireProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ProfileFrom(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"no runner profile in session; create a plan first"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
