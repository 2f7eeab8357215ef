package session

import (
	"errors"
	"strings"
)

const tokenSegmentSeparator = "."

var ErrMalformedToken = errors.New("token is malformed")

// SplitToken is the token stored in two cookies.
type SplitToken struct {
	HeaderPayload string
	Signature     string
}

func Split(token Token) (SplitToken, error) {
	segments := strings.Split(string(token), tokenSegmentSeparator)
	if len(segments) != 3 {
		return SplitToken{}, ErrMalformedToken
	}
	for _, segment := range segments {
		if segment == "" {
			return SplitToken{}, ErrMalformedToken
		}
	}

	return SplitToken{
		HeaderPayload: segments[0] + tokenSegmentSeparator + segments[1],
		Signature:     segments[2],
	}, nil
}

func Join(headerPayload, signature string) Token {
	return Token(headerPayload + tokenSegmentSeparator + signature)
}

func (t SplitToken) Join() Token {
	return Join(t.HeaderPayload, t.Signature)
}
