package http

import (
	"net/http"

	"github.com/klwxsrx/dashboard-auth/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/dashboard-auth/pkg/auth"
	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
)

const (
	// CookieTokenHeaderPayload is readable by browser scripts.
	CookieTokenHeaderPayload = "t_hp"
	// CookieTokenSignature is HTTP-only.
	CookieTokenSignature = "t_s"
)

func SessionCookieTokenProvider(r *http.Request) (pkgauth.Token, bool) {
	token, ok := SessionTokenFromCookies(r)
	if !ok {
		return nil, false
	}

	return token, true
}

// SessionTokenFromCookies requires both halves to be present and non-empty.
func SessionTokenFromCookies(r *http.Request) (token auth.SessionToken, ok bool) {
	var err error
	token.HeaderPayload, err = pkghttp.ParseRequest(r, pkghttp.CookieValue[string](CookieTokenHeaderPayload), err)
	token.Signature, err = pkghttp.ParseRequest(r, pkghttp.CookieValue[string](CookieTokenSignature), err)
	if err != nil {
		return auth.SessionToken{}, false
	}

	return token, true
}
