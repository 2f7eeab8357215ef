package http

import (
	"net/http"

	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
)

// LogoutHandler only clears the cookies: an already issued token stays valid until it expires.
type LogoutHandler struct {
	cookies CookieFactory
}

func NewLogoutHandler(cookies CookieFactory) LogoutHandler {
	return LogoutHandler{cookies: cookies}
}

func (h LogoutHandler) Method() string {
	return http.MethodPost
}

func (h LogoutHandler) Path() string {
	return "/logout"
}

func (h LogoutHandler) Handle(w pkghttp.ResponseWriter, _ *http.Request) error {
	setCookies(w, h.cookies.ExpiredCookies())
	w.SetJSONBody(newMessageOut(messageLoggedOut))
	return nil
}
