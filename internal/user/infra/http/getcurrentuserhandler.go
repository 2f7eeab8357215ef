package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/dashboard-auth/internal/pkg/auth"
	"github.com/klwxsrx/dashboard-auth/internal/user/app/service"
	"github.com/klwxsrx/dashboard-auth/internal/user/domain"
	pkgauth "github.com/klwxsrx/dashboard-auth/pkg/auth"
	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
)

type GetCurrentUserHandler struct {
	userService service.User
}

func NewGetCurrentUserHandler(userService service.User) GetCurrentUserHandler {
	return GetCurrentUserHandler{userService: userService}
}

func (h GetCurrentUserHandler) Method() string {
	return http.MethodGet
}

func (h GetCurrentUserHandler) Path() string {
	return "/current-user"
}

func (h GetCurrentUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	authentication, ok := pkgauth.GetAuthentication[auth.Principal](r.Context())
	if !ok || !authentication.IsAuthenticated() {
		return writeError(w, http.StatusUnauthorized, messageAuthenticationRequired, pkgauth.ErrUnauthenticated)
	}

	result, err := h.userService.GetByID(r.Context(), domain.UserID{UUID: authentication.Principal.UserID})
	if errors.Is(err, service.ErrUserNotFound) {
		return writeError(w, http.StatusNotFound, messageUserNotFound, err)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(newUserOut(result))
	return nil
}
