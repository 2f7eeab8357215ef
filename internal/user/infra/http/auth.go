package http

import (
	"github.com/klwxsrx/dashboard-auth/internal/pkg/auth"
	internalhttp "github.com/klwxsrx/dashboard-auth/internal/pkg/http"
	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
)

// WithSessionAuthentication protects a route with the session cookie pair.
func WithSessionAuthentication(sessions auth.SessionVerifier, cookies CookieFactory) []pkghttp.ServerOption {
	return []pkghttp.ServerOption{
		pkghttp.WithAuth(auth.NewProvider(sessions), internalhttp.SessionCookieTokenProvider),
		pkghttp.WithAuthenticationRequirement(NewUnauthenticatedResponder(cookies)),
	}
}
