package rest

import "github.com/kofuk/bungie/entity"

// Token is an OAuth2 access token. Its String method never reveals the value.
type Token string

// TokenOf returns the access token of t.
func TokenOf(t entity.BearerToken) Token {
	return Token(t.Access)
}

func (t Token) String() string {
	if t == "" {
		return "<none>"
	}
	return "<redacted>"
}

func (t Token) authorization() (string, bool) {
	if t == "" {
		return "", false
	}
	return "Bearer " + string(t), true
}
