package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/raghavan83/staffregistry/internal/domain"
	"github.com/raghavan83/staffregistry/pkg/ctxutil"
)

type tokenValidator interface {
	Validate(token string) (string, domain.ActorRole, error)
}

// Actor resolves the acting principal from a bearer token and stores it in
// the request context for revision attribution. A missing token is not an
// error: the request proceeds anonymously and downstream capture degrades
// to the sentinel defaults. An invalid token is rejected.
func Actor(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // anonymous
				return
			}
			actorID, role, err := validator.Validate(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithActor(r.Context(), actorID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Origin records the caller's network origin in the request context.
// X-Forwarded-For takes precedence over the socket address so deployments
// behind a proxy attribute the real client.
func Origin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := clientAddr(r)
		if origin != "" {
			r = r.WithContext(ctxutil.WithOrigin(r.Context(), origin))
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// first hop is the original client
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
