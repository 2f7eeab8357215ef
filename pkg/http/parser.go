package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/dashboard-auth/pkg/strings"
)

const maxJSONBodySize = 1 << 20

type DataExtractor[T any] func(*http.Request) (T, error)

var ErrParsingError = errors.New("parsing error")

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(r)
}

func ParseRequestOptional[T any](r *http.Request, extractor DataExtractor[T]) *T {
	result, err := extractor(r)
	if err != nil {
		return nil
	}

	return &result
}

func PathParameter[T strings.SupportedValueParsingTypes](param string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		paramValue, ok := mux.Vars(r)[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: path parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](paramValue)
	}
}

func Header[T strings.SupportedValueParsingTypes](key string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		header := r.Header.Get(key)
		if header == "" {
			var result T
			return result, fmt.Errorf("%w: header with key %s not found", ErrParsingError, key)
		}

		return parseTypedValueImpl[T](header)
	}
}

func CookieValue[T strings.SupportedValueParsingTypes](name string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		cookie, err := r.Cookie(name)
		if err != nil || cookie.Value == "" {
			var result T
			return result, fmt.Errorf("%w: cookie with name %s not found", ErrParsingError, name)
		}

		return parseTypedValueImpl[T](cookie.Value)
	}
}

// JSONBody treats an empty body as the zero value of T.
func JSONBody[T any]() DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		var result T
		if r.Body == nil {
			return result, nil
		}

		err := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodySize)).Decode(&result)
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func parseTypedValueImpl[T strings.SupportedValueParsingTypes](value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err == nil {
		return v, nil
	}

	return v, fmt.Errorf("%w: %w", ErrParsingError, err)
}
