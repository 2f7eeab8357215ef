package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/dashboard-auth/pkg/auth"
	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
	"github.com/klwxsrx/dashboard-auth/pkg/log"
)

type testHandler struct {
	method string
	path   string
	handle pkghttp.HandlerFunc
}

func (h testHandler) Method() string { return h.method }

func (h testHandler) Path() string { return h.path }

func (h testHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error { return h.handle(w, r) }

type echoIn struct {
	Value string `json:"value"`
}

func newTestServer(handlers ...pkghttp.Handler) pkghttp.Server {
	logger := log.New(log.LevelDisabled)
	srv := pkghttp.NewServer(
		pkghttp.DefaultServerAddress,
		pkghttp.WithHealthCheck(nil),
		pkghttp.WithRequestID(logger, pkghttp.DefaultRequestIDHeader),
		pkghttp.WithLogging(logger, log.LevelInfo, log.LevelError),
	)
	for _, h := range handlers {
		srv.Register(h)
	}
	return srv
}

func serve(srv pkghttp.Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.HTTPHandler().ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) pkghttp.ErrorBody {
	t.Helper()
	var body pkghttp.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer_Handle_Returns(t *testing.T) {
	srv := newTestServer(
		testHandler{method: http.MethodPost, path: "/echo", handle: func(w pkghttp.ResponseWriter, r *http.Request) (err error) {
			in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[echoIn](), err)
			if err != nil {
				return err
			}
			w.SetStatusCode(http.StatusCreated).SetJSONBody(in)
			return nil
		}},
		testHandler{method: http.MethodGet, path: "/internal", handle: func(pkghttp.ResponseWriter, *http.Request) error {
			return errors.New("pq: connection refused to 10.0.0.1")
		}},
		testHandler{method: http.MethodGet, path: "/conflict", handle: func(w pkghttp.ResponseWriter, _ *http.Request) error {
			w.SetStatusCode(http.StatusConflict).SetJSONBody(pkghttp.NewErrorBody(http.StatusConflict, "already exists"))
			return errors.New("duplicate key")
		}},
		testHandler{method: http.MethodGet, path: "/panic", handle: func(pkghttp.ResponseWriter, *http.Request) error {
			panic("unexpected")
		}},
	)

	t.Run("success", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"value":"x"}`)))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"value":"x"}`, rec.Body.String())
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.NotEmpty(t, rec.Header().Get(pkghttp.DefaultRequestIDHeader))
	})

	t.Run("bad_request_on_parsing_error", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"value":`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, pkghttp.NewErrorBody(http.StatusBadRequest, ""), decodeErrorBody(t, rec))
	})

	t.Run("internal_error_hides_details", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/internal", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "pq:")
		assert.Equal(t, "Internal Server Error", decodeErrorBody(t, rec).Message)
	})

	t.Run("handler_status_and_body_kept", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/conflict", nil))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "already exists", decodeErrorBody(t, rec).Message)
	})

	t.Run("panic_recovered", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/panic", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("health", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, pkghttp.HealthPath, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

type headerToken string

func (t headerToken) Type() auth.TokenType { return "header" }

type testPrincipal struct {
	Name string
}

type testProvider struct{}

func (testProvider) Authenticate(_ context.Context, token auth.Token) (*testPrincipal, error) {
	switch token.(headerToken) {
	case "valid":
		return &testPrincipal{Name: "alice"}, nil
	case "expired":
		return nil, fmt.Errorf("%w: expired", auth.ErrUnauthenticated)
	default:
		return nil, errors.New("provider unavailable")
	}
}

func TestServer_WithAuth_Returns(t *testing.T) {
	srv := newTestServer()
	srv.Register(
		testHandler{method: http.MethodGet, path: "/me", handle: func(w pkghttp.ResponseWriter, r *http.Request) error {
			authentication, _ := auth.GetAuthentication[testPrincipal](r.Context())
			w.SetJSONBody(authentication.Principal)
			return nil
		}},
		pkghttp.WithAuth[testPrincipal](testProvider{}, func(r *http.Request) (auth.Token, bool) {
			value := r.Header.Get("X-Token")
			return headerToken(value), value != ""
		}),
		pkghttp.WithAuthenticationRequirement(func(_ http.ResponseWriter, _ *http.Request, reason error) any {
			return map[string]string{"reason": reason.Error()}
		}),
	)

	request := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if token != "" {
			req.Header.Set("X-Token", token)
		}
		return serve(srv, req)
	}

	rec := request("valid")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Name":"alice"}`, rec.Body.String())

	rec = request("")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"reason":"not authenticated"}`, rec.Body.String())

	rec = request("expired")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"reason":"not authenticated: expired"}`, rec.Body.String())

	rec = request("broken")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
