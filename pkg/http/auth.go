package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/dashboard-auth/pkg/auth"
)

type (
	AuthTokenProvider func(*http.Request) (auth.Token, bool)

	// UnauthenticatedResponder builds the 401 response body for a rejected request.
	UnauthenticatedResponder func(w http.ResponseWriter, r *http.Request, reason error) any
)

func WithAuth[T any](provider auth.Provider[T], tokenProviders ...AuthTokenProvider) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ok bool
			var token auth.Token
			for _, tokenProvider := range tokenProviders {
				token, ok = tokenProvider(r)
				if ok {
					break
				}
			}
			if !ok {
				r = r.WithContext(auth.WithAuthentication(r.Context(), auth.Unauthenticated[T](nil)))
				handler.ServeHTTP(w, r)
				return
			}

			principal, err := provider.Authenticate(r.Context(), token)
			if errors.Is(err, auth.ErrUnauthenticated) {
				r = r.WithContext(auth.WithAuthentication(r.Context(), auth.Unauthenticated[T](err)))
				handler.ServeHTTP(w, r)
				return
			}
			if err != nil {
				writeHandlerResult(w, r, http.StatusInternalServerError, err, nil)
				return
			}

			r = r.WithContext(auth.WithAuthentication(r.Context(), auth.Authenticated(principal)))
			handler.ServeHTTP(w, r)
		})
	})
}

func WithAuthenticationRequirement(responder UnauthenticatedResponder) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reason := auth.CheckAuthenticated(r.Context())
			if reason == nil {
				handler.ServeHTTP(w, r)
				return
			}
			if !errors.Is(reason, auth.ErrUnauthenticated) {
				writeHandlerResult(w, r, http.StatusInternalServerError, reason, nil)
				return
			}

			var body any
			if responder != nil {
				body = responder(w, r, reason)
			}
			writeHandlerResult(w, r, http.StatusUnauthorized, reason, body)
		})
	})
}

func writeHandlerResult(w http.ResponseWriter, r *http.Request, httpCode int, err error, body any) {
	respWriter := &responseWriter{impl: w, httpCode: httpCode}
	if body != nil {
		respWriter.SetJSONBody(body)
	}
	respWriter.Write(r.Context(), err)
}
