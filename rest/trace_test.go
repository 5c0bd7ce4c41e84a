package rest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_redact(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{
			name:        "form",
			contentType: "application/x-www-form-urlencoded",
			body:        "client_id=1&client_secret=s&code=c&grant_type=authorization_code",
			want:        "client_id=1&client_secret=%5BREDACTED%5D&code=%5BREDACTED%5D&grant_type=authorization_code",
		},
		{
			name:        "nested json",
			contentType: "application/json",
			body:        `{"a":{"access_token":"x"},"b":[{"refresh_token":"y"}]}`,
			want:        "{\n  \"a\": {\n    \"access_token\": \"[REDACTED]\"\n  },\n  \"b\": [\n    {\n      \"refresh_token\": \"[REDACTED]\"\n    }\n  ]\n}",
		},
		{
			name: "not json",
			body: "<html>",
			want: "<html>",
		},
		{
			name: "empty",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, redact(c.contentType, []byte(c.body)))
		})
	}
}

func Test_TokenString(t *testing.T) {
	assert.Equal(t, "<redacted>", Token("secret").String())
	assert.Equal(t, "<none>", Token("").String())
}
