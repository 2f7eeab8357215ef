package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/klwxsrx/dashboard-auth/pkg/log"
)

const DefaultRequestIDHeader = "X-Request-ID"

// WithRequestID puts the incoming request id (or a random one) into the logging context.
func WithRequestID(logger log.Logger, header string) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(header)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			meta := getHandlerMetadata(r.Context())
			meta.RequestID = &requestID

			w.Header().Set(header, requestID)
			ctx := logger.WithContext(r.Context(), log.Fields{"requestID": requestID})
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
}

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)
			if r.URL.Path == HealthPath {
				return
			}

			meta := getHandlerMetadata(r.Context())
			fields := log.Fields{
				"method":       r.Method,
				"path":         r.URL.Path,
				"responseCode": meta.Code,
			}
			if route := mux.CurrentRoute(r); route != nil {
				fields["routeName"] = route.GetName()
			}

			requestLogger := logger.With(fields)
			switch {
			case meta.Panic != nil:
				requestLogger.
					WithField("panic", log.Fields{
						"message": meta.Panic.Message,
						"stack":   string(meta.Panic.Stacktrace),
					}).
					Log(r.Context(), errorLevel, "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				requestLogger.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with internal error")
			default:
				requestLogger.WithError(meta.Error).Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}
