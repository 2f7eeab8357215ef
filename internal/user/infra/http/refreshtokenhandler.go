package http

import (
	"errors"
	"net/http"

	internalhttp "github.com/klwxsrx/dashboard-auth/internal/pkg/http"
	"github.com/klwxsrx/dashboard-auth/internal/user/app/service"
	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
)

type RefreshTokenHandler struct {
	authService service.Authentication
	cookies     CookieFactory
}

func NewRefreshTokenHandler(authService service.Authentication, cookies CookieFactory) RefreshTokenHandler {
	return RefreshTokenHandler{authService: authService, cookies: cookies}
}

func (h RefreshTokenHandler) Method() string {
	return http.MethodPost
}

func (h RefreshTokenHandler) Path() string {
	return "/refreshtoken"
}

func (h RefreshTokenHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	token, ok := internalhttp.SessionTokenFromCookies(r)
	if !ok {
		return h.invalidSession(w, service.ErrSessionInvalid)
	}

	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[map[string]any](), err)
	if err != nil {
		return err
	}

	values, err := refreshTokenSchema.Validate(in)
	if err != nil {
		return writeInvalidInput(w, err)
	}

	result, err := h.authService.Refresh(r.Context(), token, values.Get(fieldPassword))
	switch {
	case errors.Is(err, service.ErrReauthenticationRequired):
		w.SetStatusCode(http.StatusUnauthorized).SetJSONBody(newReauthenticationOut())
		return err
	case errors.Is(err, service.ErrSessionInvalid):
		return h.invalidSession(w, err)
	case errors.Is(err, service.ErrCredentialsMismatch):
		return writeError(w, http.StatusUnauthorized, messageIncorrectCredentials, err)
	case err != nil:
		return err
	}

	if result.Renewed != nil {
		setCookies(w, h.cookies.SessionCookies(result.Renewed))
	}
	w.SetJSONBody(newSessionUserOut(result.User.Email))
	return nil
}

func (h RefreshTokenHandler) invalidSession(w pkghttp.ResponseWriter, err error) error {
	setCookies(w, h.cookies.ExpiredCookies())
	return writeError(w, http.StatusUnauthorized, messageInvalidSession, err)
}
