package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/dashboard-auth/internal/user/app/service"
	"github.com/klwxsrx/dashboard-auth/internal/user/app/validation"
	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
)

const (
	messageIncorrectCredentials    = "Incorrect email or password"
	messageReauthenticationNeeded  = "Re-authentication required"
	messageInvalidSession          = "Invalid session"
	messageAuthenticationRequired  = "Authentication required"
	messageRegistrationSuccessful  = "Registration was successful."
	messageLoggedOut               = "Logged out."
	messageUserNotFound            = "User not found."
	messageProfileAlreadyExistsFmt = "Profile with %s already exists."
)

type (
	dataOut[T any] struct {
		Data T `json:"data"`
	}

	messageOut[T any] struct {
		Message T `json:"message"`
	}

	sessionUserOut struct {
		User emailOut `json:"user"`
	}

	emailOut struct {
		Email string `json:"email"`
	}

	userDataOut struct {
		User UserOut `json:"user"`
	}

	UserOut struct {
		ID        uuid.UUID `json:"id"`
		Email     string    `json:"email"`
		FirstName string    `json:"firstName"`
		LastName  string    `json:"lastName"`
	}

	reauthenticationOut struct {
		pkghttp.ErrorBody
		Reauthenticate bool `json:"reauthenticate"`
	}
)

func newSessionUserOut(email string) dataOut[sessionUserOut] {
	return dataOut[sessionUserOut]{Data: sessionUserOut{User: emailOut{Email: email}}}
}

func newUserOut(user *service.UserData) dataOut[userDataOut] {
	return dataOut[userDataOut]{Data: userDataOut{User: UserOut{
		ID:        user.ID.UUID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}}}
}

func newMessageOut(message string) dataOut[messageOut[string]] {
	return dataOut[messageOut[string]]{Data: messageOut[string]{Message: message}}
}

func newReauthenticationOut() reauthenticationOut {
	return reauthenticationOut{
		ErrorBody:      pkghttp.NewErrorBody(http.StatusUnauthorized, messageReauthenticationNeeded),
		Reauthenticate: true,
	}
}

// writeInvalidInput answers 400 with the list of field errors.
func writeInvalidInput(w pkghttp.ResponseWriter, err error) error {
	var validationErr *validation.Error
	if !errors.As(err, &validationErr) {
		return err
	}

	w.SetStatusCode(http.StatusBadRequest).
		SetJSONBody(dataOut[messageOut[[]validation.FieldError]]{
			Data: messageOut[[]validation.FieldError]{Message: validationErr.Fields},
		})
	return err
}

func writeError(w pkghttp.ResponseWriter, httpCode int, message string, err error) error {
	w.SetStatusCode(httpCode).SetJSONBody(pkghttp.NewErrorBody(httpCode, message))
	return err
}

// NewUnauthenticatedResponder answers rejected requests to protected routes.
// An invalid session also gets its cookies cleared.
func NewUnauthenticatedResponder(cookies CookieFactory) pkghttp.UnauthenticatedResponder {
	return func(w http.ResponseWriter, _ *http.Request, reason error) any {
		switch {
		case errors.Is(reason, service.ErrReauthenticationRequired):
			return newReauthenticationOut()
		case errors.Is(reason, service.ErrSessionInvalid):
			for _, cookie := range cookies.ExpiredCookies() {
				http.SetCookie(w, cookie)
			}
			return pkghttp.NewErrorBody(http.StatusUnauthorized, messageInvalidSession)
		default:
			return pkghttp.NewErrorBody(http.StatusUnauthorized, messageAuthenticationRequired)
		}
	}
}
