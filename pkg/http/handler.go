package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type HandlerFunc func(w ResponseWriter, r *http.Request) error

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetCookie(cookie *http.Cookie) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

// ErrorBody is written for failed requests when the handler did not set its own body.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func NewErrorBody(httpCode int, message string) ErrorBody {
	if message == "" {
		message = http.StatusText(httpCode)
	}
	return ErrorBody{Status: httpCode, Message: message}
}

type responseWriter struct {
	impl http.ResponseWriter

	body     any
	hasBody  bool
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

// Write keeps a handler-defined status >= 400 for failed requests,
// otherwise maps ErrParsingError to 400 and everything else to 500.
// Error details never reach the response body.
func (w *responseWriter) Write(ctx context.Context, err error) {
	httpCode := w.httpCode
	switch {
	case err == nil:
	case httpCode >= http.StatusBadRequest:
	case errors.Is(err, ErrParsingError):
		httpCode = http.StatusBadRequest
		w.hasBody = false
	default:
		httpCode = http.StatusInternalServerError
		w.hasBody = false
	}
	if err != nil && !w.hasBody {
		w.SetJSONBody(NewErrorBody(httpCode, ""))
	}

	var encodedBody []byte
	if w.hasBody {
		var encodeErr error
		encodedBody, encodeErr = json.Marshal(w.body)
		if encodeErr != nil {
			err = errors.Join(err, fmt.Errorf("encode body: %w", encodeErr))
			httpCode = http.StatusInternalServerError
			encodedBody, _ = json.Marshal(NewErrorBody(httpCode, ""))
		}
	}

	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	writeResponse(w.impl, httpCode, encodedBody)
}

func (w *responseWriter) WritePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &p

	encodedBody, _ := json.Marshal(NewErrorBody(http.StatusInternalServerError, ""))
	writeResponse(w.impl, http.StatusInternalServerError, encodedBody)
}

func writeResponse(w http.ResponseWriter, httpCode int, body []byte) {
	if body != nil {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(httpCode)
	if body != nil {
		_, _ = w.Write(body)
	}
}

func httpHandlerWrapper(handler Handler) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler.Handle(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}
