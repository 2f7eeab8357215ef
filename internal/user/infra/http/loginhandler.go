package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/dashboard-auth/internal/user/app/service"
	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
)

type LoginHandler struct {
	authService service.Authentication
	cookies     CookieFactory
}

func NewLoginHandler(authService service.Authentication, cookies CookieFactory) LoginHandler {
	return LoginHandler{authService: authService, cookies: cookies}
}

func (h LoginHandler) Method() string {
	return http.MethodPost
}

func (h LoginHandler) Path() string {
	return "/login"
}

func (h LoginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[map[string]any](), err)
	if err != nil {
		return err
	}

	values, err := loginSchema.Validate(in)
	if err != nil {
		return writeInvalidInput(w, err)
	}

	sessionData, err := h.authService.Login(r.Context(), values.Get(fieldEmail), values.Get(fieldPassword))
	if errors.Is(err, service.ErrCredentialsMismatch) {
		return writeError(w, http.StatusUnauthorized, messageIncorrectCredentials, err)
	}
	if err != nil {
		return err
	}

	setCookies(w, h.cookies.SessionCookies(sessionData))
	w.SetJSONBody(newSessionUserOut(sessionData.User.Email))
	return nil
}
