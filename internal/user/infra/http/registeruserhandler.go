package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/klwxsrx/dashboard-auth/internal/user/app/service"
	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
)

type RegisterUserHandler struct {
	userService service.User
}

func NewRegisterUserHandler(userService service.User) RegisterUserHandler {
	return RegisterUserHandler{userService: userService}
}

func (h RegisterUserHandler) Method() string {
	return http.MethodPost
}

func (h RegisterUserHandler) Path() string {
	return "/register"
}

func (h RegisterUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[map[string]any](), err)
	if err != nil {
		return err
	}

	values, err := registerSchema.Validate(in)
	if err != nil {
		return writeInvalidInput(w, err)
	}

	email := values.Get(fieldEmail)
	_, err = h.userService.Register(r.Context(), service.RegistrationData{
		Email:     email,
		Password:  values.Get(fieldPassword),
		FirstName: values.Get(fieldFirstName),
		LastName:  values.Get(fieldLastName),
	})
	if errors.Is(err, service.ErrUserAlreadyExists) {
		return writeError(w, http.StatusConflict, fmt.Sprintf(messageProfileAlreadyExistsFmt, email), err)
	}
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusCreated).SetJSONBody(newMessageOut(messageRegistrationSuccessful))
	return nil
}
