package converter

import (
	"testing"

	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auth(typ string, params ...postman.AuthParam) *postman.Auth {
	return &postman.Auth{Type: postman.Text(typ), Params: params}
}

func TestResolveAuth(t *testing.T) {
	tests := []struct {
		name       string
		auth       *postman.Auth
		schemeName string
		scheme     *openapi.SecurityScheme
		severity   Severity
		hasNote    bool
	}{
		{
			name:       "bearer defaults to JWT",
			auth:       auth("bearer", postman.AuthParam{Key: "token", Value: "abc"}),
			schemeName: "bearerAuth",
			scheme:     &openapi.SecurityScheme{Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
		},
		{
			name:       "basic",
			auth:       auth("basic", postman.AuthParam{Key: "username", Value: "u"}),
			schemeName: "basicAuth",
			scheme:     &openapi.SecurityScheme{Type: "http", Scheme: "basic"},
		},
		{
			name: "apikey in query",
			auth: auth("apikey",
				postman.AuthParam{Key: "key", Value: "token"},
				postman.AuthParam{Key: "in", Value: "query"}),
			schemeName: "apikeyAuth",
			scheme:     &openapi.SecurityScheme{Type: "apiKey", Name: "token", In: "query"},
		},
		{
			name:       "apikey defaults",
			auth:       auth("apikey"),
			schemeName: "apikeyAuth",
			scheme:     &openapi.SecurityScheme{Type: "apiKey", Name: "api_key", In: "header"},
		},
		{
			name:       "apikey with unknown location",
			auth:       auth("apikey", postman.AuthParam{Key: "in", Value: "body"}),
			schemeName: "apikeyAuth",
			scheme:     &openapi.SecurityScheme{Type: "apiKey", Name: "api_key", In: "body"},
			severity:   SeverityWarning,
			hasNote:    true,
		},
		{
			name:     "noauth",
			auth:     auth("noauth"),
			severity: SeverityInfo,
			hasNote:  true,
		},
		{
			name:     "unsupported type",
			auth:     auth("hawk"),
			severity: SeverityWarning,
			hasNote:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resolveAuth(decodeAuth(tt.auth))
			assert.Equal(t, tt.schemeName, r.name)
			assert.Equal(t, tt.scheme, r.scheme)
			if tt.schemeName == "" {
				assert.Equal(t, openapi.SecurityRequirement{}, r.requirement)
			} else {
				assert.Equal(t, openapi.SecurityRequirement{tt.schemeName: {}}, r.requirement)
			}
			assert.Equal(t, tt.hasNote, r.note != "")
			if tt.hasNote {
				assert.Equal(t, tt.severity, r.severity)
			}
		})
	}
}

func TestResolveOAuth2(t *testing.T) {
	tests := []struct {
		grant string
		check func(t *testing.T, flows *openapi.OAuthFlows)
		noted bool
	}{
		{"authorization_code", func(t *testing.T, f *openapi.OAuthFlows) {
			require.NotNil(t, f.AuthorizationCode)
			assert.Equal(t, "https://auth.example.com/authorize", f.AuthorizationCode.AuthorizationURL)
			assert.Equal(t, "https://auth.example.com/token", f.AuthorizationCode.TokenURL)
			assert.Equal(t, map[string]string{"read": "", "write": ""}, f.AuthorizationCode.Scopes)
		}, false},
		{"authorization_code_with_pkce", func(t *testing.T, f *openapi.OAuthFlows) {
			assert.NotNil(t, f.AuthorizationCode)
		}, false},
		{"client_credentials", func(t *testing.T, f *openapi.OAuthFlows) {
			require.NotNil(t, f.ClientCredentials)
			assert.Empty(t, f.ClientCredentials.AuthorizationURL)
			assert.Equal(t, "https://auth.example.com/token", f.ClientCredentials.TokenURL)
		}, false},
		{"password_credentials", func(t *testing.T, f *openapi.OAuthFlows) {
			assert.NotNil(t, f.Password)
		}, false},
		{"implicit", func(t *testing.T, f *openapi.OAuthFlows) {
			require.NotNil(t, f.Implicit)
			assert.Empty(t, f.Implicit.TokenURL)
		}, false},
		{"device_code", func(t *testing.T, f *openapi.OAuthFlows) {
			assert.Equal(t, &openapi.OAuthFlows{}, f)
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.grant, func(t *testing.T) {
			a := auth("oauth2",
				postman.AuthParam{Key: "grant_type", Value: tt.grant},
				postman.AuthParam{Key: "authUrl", Value: "https://auth.example.com/authorize"},
				postman.AuthParam{Key: "accessTokenUrl", Value: "https://auth.example.com/token"},
				postman.AuthParam{Key: "scope", Value: "read write"},
			)
			r := resolveAuth(decodeAuth(a))
			assert.Equal(t, "oauth2Auth", r.name)
			require.NotNil(t, r.scheme)
			assert.Equal(t, "oauth2", r.scheme.Type)
			require.NotNil(t, r.scheme.Flows)
			tt.check(t, r.scheme.Flows)
			assert.Equal(t, tt.noted, r.note != "")
		})
	}
}

func TestResolveAuthPure(t *testing.T) {
	a := auth("bearer", postman.AuthParam{Key: "token", Value: "x"})
	first := resolveAuth(decodeAuth(a))
	second := resolveAuth(decodeAuth(a))
	assert.Equal(t, first, second)
	assert.NotSame(t, first.scheme, second.scheme)
}

func TestUpdateSecurity(t *testing.T) {
	existing := []openapi.SecurityRequirement{{"bearerAuth": {}}}
	out := updateSecurity(existing, openapi.SecurityRequirement{"basicAuth": {}})
	assert.Equal(t, []openapi.SecurityRequirement{{"bearerAuth": {}}, {"basicAuth": {}}}, out)
	assert.Len(t, existing, 1, "input slice must not be modified")

	assert.Equal(t, []openapi.SecurityRequirement{{}}, updateSecurity(nil, openapi.SecurityRequirement{}))
}

func TestSetScheme(t *testing.T) {
	doc := &openapi.Document{}
	assert.False(t, setScheme(doc, "bearerAuth", &openapi.SecurityScheme{Type: "http", Scheme: "bearer", BearerFormat: "JWT"}))
	assert.False(t, setScheme(doc, "bearerAuth", &openapi.SecurityScheme{Type: "http", Scheme: "bearer", BearerFormat: "JWT"}))
	assert.True(t, setScheme(doc, "bearerAuth", &openapi.SecurityScheme{Type: "http", Scheme: "bearer", BearerFormat: "opaque"}))
	assert.Equal(t, "JWT", doc.Components.SecuritySchemes["bearerAuth"].BearerFormat)
}

func TestFolderAuthInheritance(t *testing.T) {
	result := convertString(t, `{"info": {"name": "inherit"}, "item": [
		{"name": "secured", "auth": {"type": "basic"}, "item": [
			{"name": "inner", "item": [
				{"name": "deep", "request": {"method": "GET", "url": "https://x.io/deep"}},
				{"name": "explicit inherit", "request": {"method": "GET", "url": "https://x.io/inh", "auth": {"type": "inherit"}}},
				{"name": "override", "request": {"method": "GET", "url": "https://x.io/own", "auth": {"type": "bearer"}}}
			]}
		]},
		{"name": "open", "item": [
			{"name": "sibling", "request": {"method": "GET", "url": "https://x.io/sib"}}
		]}
	]}`)
	doc := result.Document

	basic := []openapi.SecurityRequirement{{"basicAuth": {}}}
	assert.Equal(t, basic, operation(t, doc, "/secured/inner/deep", "get").Security)
	assert.Equal(t, basic, operation(t, doc, "/secured/inner/inh", "get").Security)
	assert.Equal(t, []openapi.SecurityRequirement{{"bearerAuth": {}}},
		operation(t, doc, "/secured/inner/own", "get").Security)
	assert.Nil(t, operation(t, doc, "/open/sib", "get").Security)
	assert.Nil(t, doc.Security)
	assert.Len(t, doc.Components.SecuritySchemes, 2)
}

func TestSchemeConflictKeepsFirst(t *testing.T) {
	result := convertString(t, `{"info": {"name": "conflict"}, "item": [
		{"name": "a", "request": {"method": "GET", "url": "https://x.io/a",
			"auth": {"type": "apikey", "apikey": [{"key": "key", "value": "X-One"}]}}},
		{"name": "b", "request": {"method": "GET", "url": "https://x.io/b",
			"auth": {"type": "apikey", "apikey": [{"key": "key", "value": "X-Two"}]}}}
	]}`)
	assert.Equal(t, "X-One", result.Document.Components.SecuritySchemes["apikeyAuth"].Name)
	require.Equal(t, 1, result.WarningCount)
	for _, issue := range result.Issues {
		if issue.Severity == SeverityWarning {
			assert.Equal(t, "item[1].request.auth", issue.Path)
		}
	}
}
