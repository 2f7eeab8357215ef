package http

import (
	"net/http"
	"time"

	internalhttp "github.com/klwxsrx/dashboard-auth/internal/pkg/http"
	"github.com/klwxsrx/dashboard-auth/internal/user/app/service"
	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
)

// CookieFactory builds the split session cookie pair.
// Both halves expire at issued-at plus the re-authentication window, which is never
// shorter than the token TTL, so an expired token still reaches the server for renewal.
type CookieFactory struct {
	ttl    time.Duration
	secure bool
}

func NewCookieFactory(ttl time.Duration, secure bool) CookieFactory {
	return CookieFactory{ttl: ttl, secure: secure}
}

func (f CookieFactory) SessionCookies(data *service.SessionData) []*http.Cookie {
	expires := data.IssuedAt.Add(f.ttl)
	return []*http.Cookie{
		f.cookie(internalhttp.CookieTokenHeaderPayload, data.Token.HeaderPayload, expires, false),
		f.cookie(internalhttp.CookieTokenSignature, data.Token.Signature, expires, true),
	}
}

func (f CookieFactory) ExpiredCookies() []*http.Cookie {
	headerPayload := f.cookie(internalhttp.CookieTokenHeaderPayload, "", time.Unix(0, 0), false)
	headerPayload.MaxAge = -1
	signature := f.cookie(internalhttp.CookieTokenSignature, "", time.Unix(0, 0), true)
	signature.MaxAge = -1

	return []*http.Cookie{headerPayload, signature}
}

func (f CookieFactory) cookie(name, value string, expires time.Time, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		Secure:   f.secure,
		HttpOnly: httpOnly,
		SameSite: http.SameSiteLaxMode,
	}
}

func setCookies(w pkghttp.ResponseWriter, cookies []*http.Cookie) {
	for _, cookie := range cookies {
		w.SetCookie(cookie)
	}
}
