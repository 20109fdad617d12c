package postman

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		typ   Text
		check func(t *testing.T, a *Auth)
	}{
		{
			name:  "list form",
			input: `{"type": "apikey", "apikey": [{"key": "key", "value": "X-Key"}, {"key": "in", "value": "QUERY"}]}`,
			typ:   "apikey",
			check: func(t *testing.T, a *Auth) {
				assert.Equal(t, "X-Key", a.Get("key"))
				assert.Equal(t, "QUERY", a.Get("in"))
			},
		},
		{
			name:  "object form",
			input: `{"type": "bearer", "bearer": {"token": "abc", "bearerFormat": "opaque"}}`,
			typ:   "bearer",
			check: func(t *testing.T, a *Auth) {
				require.Len(t, a.Params, 2)
				assert.Equal(t, "bearerFormat", a.Params[0].Key)
				assert.Equal(t, "opaque", a.Get("bearerFormat"))
			},
		},
		{
			name:  "scopes as string",
			input: `{"type": "oauth2", "oauth2": [{"key": "scope", "value": "read write,admin"}]}`,
			typ:   "oauth2",
			check: func(t *testing.T, a *Auth) {
				assert.Equal(t, []string{"read", "write", "admin"}, a.List("scope"))
			},
		},
		{
			name:  "scopes as list",
			input: `{"type": "oauth2", "oauth2": {"scope": ["read", "write"]}}`,
			typ:   "oauth2",
			check: func(t *testing.T, a *Auth) {
				assert.Equal(t, []string{"read", "write"}, a.List("scope"))
			},
		},
		{
			name:  "no attributes",
			input: `{"type": "noauth"}`,
			typ:   "noauth",
			check: func(t *testing.T, a *Auth) {
				assert.Empty(t, a.Params)
				assert.Equal(t, "", a.Get("anything"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Auth
			require.NoError(t, json.Unmarshal([]byte(tt.input), &a))
			assert.Equal(t, tt.typ, a.Type)
			tt.check(t, &a)
		})
	}
}

func TestAuthFirst(t *testing.T) {
	var a Auth
	require.NoError(t, json.Unmarshal([]byte(`{"type": "oauth2", "oauth2": {"authorization_url": "https://id.example.com/auth"}}`), &a))
	assert.Equal(t, "https://id.example.com/auth", a.First("authUrl", "authorization_url"))

	var nilAuth *Auth
	assert.Equal(t, "", nilAuth.First("authUrl"))
	assert.Nil(t, nilAuth.List("scope"))
}
