package env

import (
	"fmt"
	"os"

	pkgstrings "github.com/klwxsrx/dashboard-auth/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}
	return val
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		var blank T
		return blank, fmt.Errorf("env %s not found", key)
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return v, fmt.Errorf("env %s has invalid value: %w", key, err)
	}
	return v, nil
}

// ParseOptional returns nil when the variable is unset or empty.
func ParseOptional[T pkgstrings.SupportedValueParsingTypes](key string) (*T, error) {
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return nil, nil
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return nil, fmt.Errorf("env %s has invalid value: %w", key, err)
	}
	return &v, nil
}

func ParseDefault[T pkgstrings.SupportedValueParsingTypes](key string, def T) (T, error) {
	v, err := ParseOptional[T](key)
	if err != nil {
		return def, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}
