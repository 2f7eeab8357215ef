package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/dashboard-auth/internal/user/app/service"
	"github.com/klwxsrx/dashboard-auth/internal/user/domain"
	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
)

type GetUserByIDHandler struct {
	userService service.User
}

func NewGetUserByIDHandler(userService service.User) GetUserByIDHandler {
	return GetUserByIDHandler{userService: userService}
}

func (h GetUserByIDHandler) Method() string {
	return http.MethodGet
}

func (h GetUserByIDHandler) Path() string {
	return "/users/{userID}"
}

func (h GetUserByIDHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	userID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("userID"), err)
	if err != nil {
		return err
	}

	result, err := h.userService.GetByID(r.Context(), domain.UserID{UUID: userID})
	if errors.Is(err, service.ErrUserNotFound) {
		return writeError(w, http.StatusNotFound, messageUserNotFound, err)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(newUserOut(result))
	return nil
}
