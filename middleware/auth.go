package middleware

import (
	"context"
	"net/http"

	"hbday/sessions"
)

type identityKey struct{}

// Username returns the authenticated admin username attached to the
// request context, or ok=false for an anonymous request.
func Username(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(identityKey{}).(string)
	return name, ok && name != ""
}

type Identity struct {
	store *sessions.Store
}

func NewIdentityMiddleware(store *sessions.Store) *Identity {
	return &Identity{store: store}
}

// Middleware resolves the adminSession cookie into an identity before any
// route logic runs. It only annotates the request: a missing, unknown or
// expired token means anonymous, never a rejection. Each protected handler
// decides for itself whether anonymous is acceptable.
func (id *Identity) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st, err := r.Cookie(sessions.CookieName)
		if err != nil || st.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		sess, ok := id.store.Lookup(st.Value)
		if !ok {
			// Revoked or expired token. The stale cookie stays on the
			// client; it just resolves to anonymous from now on.
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey{}, sess.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
