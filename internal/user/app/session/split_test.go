package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/dashboard-auth/internal/user/app/session"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		token    session.Token
		expected session.SplitToken
		err      error
	}{
		{
			name:     "three segments",
			token:    "aGVhZGVy.cGF5bG9hZA.c2lnbmF0dXJl",
			expected: session.SplitToken{HeaderPayload: "aGVhZGVy.cGF5bG9hZA", Signature: "c2lnbmF0dXJl"},
		},
		{name: "empty token", token: "", err: session.ErrMalformedToken},
		{name: "two segments", token: "header.payload", err: session.ErrMalformedToken},
		{name: "four segments", token: "a.b.c.d", err: session.ErrMalformedToken},
		{name: "empty signature", token: "header.payload.", err: session.ErrMalformedToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := session.Split(tt.token)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, result)
			require.Equal(t, tt.token, result.Join())
		})
	}
}

func TestJoin_IsPlainConcatenation(t *testing.T) {
	require.Equal(t, session.Token("h.p.s"), session.Join("h.p", "s"))
	require.Equal(t, session.Token("."), session.Join("", ""))
}
