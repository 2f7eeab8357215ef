package lazy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/dashboard-auth/pkg/lazy"
)

func TestLoader_Load_CallsProviderOnce(t *testing.T) {
	calls := 0
	l := lazy.New(func() (int, error) {
		calls++
		return 42, nil
	})

	called := false
	l.IfLoaded(func(int) { called = true })
	assert.False(t, called)

	assert.Equal(t, 42, l.MustLoad())
	assert.Equal(t, 42, l.MustLoad())
	assert.Equal(t, 1, calls)

	l.IfLoaded(func(v int) { called = v == 42 })
	assert.True(t, called)
}

func TestLoader_MustLoad_PanicsOnError(t *testing.T) {
	l := lazy.New(func() (string, error) {
		return "", errors.New("unavailable")
	})

	_, err := l.Load()
	assert.ErrorContains(t, err, "unavailable")
	assert.Panics(t, func() { l.MustLoad() })
}
