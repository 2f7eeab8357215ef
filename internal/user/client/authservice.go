package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
)

const unexpectedStatusCodeFmt = "%s: unexpected status code %d"

var (
	ErrInvalidInput             = errors.New("invalid input")
	ErrCredentialsMismatch      = errors.New("credentials mismatch")
	ErrUserAlreadyExists        = errors.New("user already exists")
	ErrUserNotFound             = errors.New("user not found")
	ErrUnauthenticated          = errors.New("unauthenticated")
	ErrReauthenticationRequired = errors.New("reauthentication required")
)

type (
	// AuthService talks to the auth routes and keeps the session cookies in its client.
	AuthService interface {
		Register(ctx context.Context, in RegistrationIn) error
		Login(ctx context.Context, email, password string) (SessionUserOut, error)
		Logout(ctx context.Context) error
		// Refresh sends the password only when it is not empty.
		Refresh(ctx context.Context, password string) (SessionUserOut, error)
		CurrentUser(ctx context.Context) (UserOut, error)
		GetUserByID(ctx context.Context, userID uuid.UUID) (UserOut, error)
	}

	RegistrationIn struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}

	SessionUserOut struct {
		Email string `json:"email"`
	}

	UserOut struct {
		ID        uuid.UUID `json:"id"`
		Email     string    `json:"email"`
		FirstName string    `json:"firstName"`
		LastName  string    `json:"lastName"`
	}

	authService struct {
		client pkghttp.Client
	}

	dataIn[T any] struct {
		Data T `json:"data"`
	}

	dataOut[T any] struct {
		Data T `json:"data"`
	}

	userOut[T any] struct {
		User T `json:"user"`
	}

	credentialsIn struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	passwordIn struct {
		Password string `json:"password,omitempty"`
	}

	errorOut struct {
		Message        json.RawMessage `json:"message"`
		Reauthenticate bool            `json:"reauthenticate"`
		Data           *struct {
			Message json.RawMessage `json:"message"`
		} `json:"data"`
	}
)

func NewAuthService(client pkghttp.Client) AuthService {
	return authService{client: client}
}

func (s authService) Register(ctx context.Context, in RegistrationIn) error {
	resp, err := s.client.NewRequest(ctx).
		SetBody(dataIn[RegistrationIn]{Data: in}).
		Post("/register")
	if err != nil {
		return fmt.Errorf("request auth.register: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusCreated:
		return nil
	case http.StatusConflict:
		return ErrUserAlreadyExists
	default:
		return responseError("auth.register", resp)
	}
}

func (s authService) Login(ctx context.Context, email, password string) (SessionUserOut, error) {
	resp, err := s.client.NewRequest(ctx).
		SetBody(dataIn[credentialsIn]{Data: credentialsIn{Email: email, Password: password}}).
		Post("/login")
	if err != nil {
		return SessionUserOut{}, fmt.Errorf("request auth.login: %w", err)
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return SessionUserOut{}, ErrCredentialsMismatch
	}
	return parseUser[SessionUserOut]("auth.login", resp)
}

func (s authService) Logout(ctx context.Context) error {
	resp, err := s.client.NewRequest(ctx).Post("/logout")
	if err != nil {
		return fmt.Errorf("request auth.logout: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return responseError("auth.logout", resp)
	}

	return nil
}

func (s authService) Refresh(ctx context.Context, password string) (SessionUserOut, error) {
	resp, err := s.client.NewRequest(ctx).
		SetBody(dataIn[passwordIn]{Data: passwordIn{Password: password}}).
		Post("/refreshtoken")
	if err != nil {
		return SessionUserOut{}, fmt.Errorf("request auth.refreshToken: %w", err)
	}

	return parseUser[SessionUserOut]("auth.refreshToken", resp)
}

func (s authService) CurrentUser(ctx context.Context) (UserOut, error) {
	resp, err := s.client.NewRequest(ctx).Get("/current-user")
	if err != nil {
		return UserOut{}, fmt.Errorf("request auth.currentUser: %w", err)
	}

	return parseUser[UserOut]("auth.currentUser", resp)
}

func (s authService) GetUserByID(ctx context.Context, userID uuid.UUID) (UserOut, error) {
	resp, err := s.client.NewRequest(ctx).
		SetPathParam("userID", userID.String()).
		Get("/users/{userID}")
	if err != nil {
		return UserOut{}, fmt.Errorf("request auth.getUserByID: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return UserOut{}, ErrUserNotFound
	}
	return parseUser[UserOut]("auth.getUserByID", resp)
}

func parseUser[T any](route string, resp *resty.Response) (T, error) {
	var body dataOut[userOut[T]]
	if resp.StatusCode() != http.StatusOK {
		return body.Data.User, responseError(route, resp)
	}

	err := json.Unmarshal(resp.Body(), &body)
	if err != nil {
		return body.Data.User, fmt.Errorf("%s response: %w", route, err)
	}

	return body.Data.User, nil
}

func responseError(route string, resp *resty.Response) error {
	var body errorOut
	_ = json.Unmarshal(resp.Body(), &body)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if body.Data != nil {
			return fmt.Errorf("%w: %s", ErrInvalidInput, body.Data.Message)
		}
		return ErrInvalidInput
	case http.StatusUnauthorized:
		if body.Reauthenticate {
			return ErrReauthenticationRequired
		}
		return fmt.Errorf("%w: %s", ErrUnauthenticated, body.Message)
	default:
		return fmt.Errorf(unexpectedStatusCodeFmt, route, resp.StatusCode())
	}
}
