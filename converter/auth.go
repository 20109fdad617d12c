package converter

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

// Security scheme names used in components.securitySchemes.
const (
	apiKeySchemeName = "apikeyAuth"
	basicSchemeName  = "basicAuth"
	bearerSchemeName = "bearerAuth"
	oauth2SchemeName = "oauth2Auth"
)

// Defaults applied when an auth block omits an attribute.
const (
	defaultAPIKeyName      = "api_key"
	defaultAPIKeyIn        = "header"
	defaultBearerFormat    = "JWT"
	defaultAuthorizeURL    = "https://example.com/oauth/authorize"
	defaultTokenURL        = "https://example.com/oauth/token"
	authTypeInherit        = "inherit"
	authTypeNoAuth         = "noauth"
	grantAuthorizationCode = "authorization_code"
)

// authModel is the closed set of authentication models the converter maps.
type authModel interface {
	authModel()
}

type apiKeyAuth struct {
	name        string
	in          string
	description string
}

type basicAuth struct {
	description string
}

type bearerAuth struct {
	format      string
	description string
}

type oauth2Auth struct {
	grantType        string
	authorizationURL string
	tokenURL         string
	refreshURL       string
	scopes           []string
	description      string
}

// noAuth covers noauth and every type without an OpenAPI mapping.
type noAuth struct {
	typ string
}

func (apiKeyAuth) authModel() {}
func (basicAuth) authModel()  {}
func (bearerAuth) authModel() {}
func (oauth2Auth) authModel() {}
func (noAuth) authModel()     {}

// decodeAuth reads a Postman auth block into one of the auth models.
func decodeAuth(a *postman.Auth) authModel {
	typ := strings.ToLower(strings.TrimSpace(string(a.Type)))
	switch typ {
	case "apikey":
		in := strings.ToLower(a.Get("in"))
		if in == "" {
			in = defaultAPIKeyIn
		}
		return apiKeyAuth{
			name:        orDefault(a.Get("key"), defaultAPIKeyName),
			in:          in,
			description: a.Get("description"),
		}
	case "basic":
		return basicAuth{description: a.Get("description")}
	case "bearer":
		return bearerAuth{
			format:      orDefault(a.First("bearerFormat", "tokenType"), defaultBearerFormat),
			description: a.Get("description"),
		}
	case "oauth2":
		return oauth2Auth{
			grantType:        strings.ToLower(a.First("grant_type", "grantType")),
			authorizationURL: a.First("authUrl", "authorization_url", "authorizationUrl"),
			tokenURL:         a.First("accessTokenUrl", "access_token_url", "tokenUrl"),
			refreshURL:       a.First("refreshTokenUrl", "refresh_token_url", "refreshUrl"),
			scopes:           a.List("scope"),
			description:      a.Get("description"),
		}
	default:
		return noAuth{typ: typ}
	}
}

// resolvedAuth is the OpenAPI side of one auth model. scheme is nil when the
// model has no security scheme. note, when set, should be reported at the
// auth's location with the given severity.
type resolvedAuth struct {
	name        string
	scheme      *openapi.SecurityScheme
	requirement openapi.SecurityRequirement
	note        string
	severity    Severity
}

// resolveAuth maps an auth model to its security scheme and requirement.
// The mapping is pure: equal models give equal results.
func resolveAuth(m authModel) resolvedAuth {
	switch a := m.(type) {
	case apiKeyAuth:
		r := resolvedAuth{
			name: apiKeySchemeName,
			scheme: &openapi.SecurityScheme{
				Type:        "apiKey",
				Name:        a.name,
				In:          a.in,
				Description: a.description,
			},
			requirement: openapi.SecurityRequirement{apiKeySchemeName: {}},
		}
		switch a.in {
		case openapi.ParameterInQuery, openapi.ParameterInHeader, openapi.ParameterInCookie:
		default:
			r.note = fmt.Sprintf("api key location %q is not one of query, header or cookie", a.in)
			r.severity = SeverityWarning
		}
		return r
	case basicAuth:
		return resolvedAuth{
			name:        basicSchemeName,
			scheme:      &openapi.SecurityScheme{Type: "http", Scheme: "basic", Description: a.description},
			requirement: openapi.SecurityRequirement{basicSchemeName: {}},
		}
	case bearerAuth:
		return resolvedAuth{
			name: bearerSchemeName,
			scheme: &openapi.SecurityScheme{
				Type:         "http",
				Scheme:       "bearer",
				BearerFormat: a.format,
				Description:  a.description,
			},
			requirement: openapi.SecurityRequirement{bearerSchemeName: {}},
		}
	case oauth2Auth:
		return resolveOAuth2(a)
	case noAuth:
		r := resolvedAuth{requirement: openapi.SecurityRequirement{}}
		if a.typ == authTypeNoAuth {
			r.note = "noauth maps to an empty security requirement"
			r.severity = SeverityInfo
		} else {
			r.note = fmt.Sprintf("unsupported auth type %q; security requirement left empty", a.typ)
			r.severity = SeverityWarning
		}
		return r
	default:
		panic(fmt.Sprintf("converter: unhandled auth model %T", m))
	}
}

func resolveOAuth2(a oauth2Auth) resolvedAuth {
	flow := &openapi.OAuthFlow{
		RefreshURL: a.refreshURL,
		Scopes:     make(map[string]string, len(a.scopes)),
	}
	for _, s := range a.scopes {
		flow.Scopes[s] = ""
	}

	r := resolvedAuth{
		name: oauth2SchemeName,
		scheme: &openapi.SecurityScheme{
			Type:        "oauth2",
			Description: a.description,
			Flows:       &openapi.OAuthFlows{},
		},
		requirement: openapi.SecurityRequirement{oauth2SchemeName: {}},
	}

	switch a.grantType {
	case grantAuthorizationCode, "authorization_code_with_pkce":
		flow.AuthorizationURL = orDefault(a.authorizationURL, defaultAuthorizeURL)
		flow.TokenURL = orDefault(a.tokenURL, defaultTokenURL)
		r.scheme.Flows.AuthorizationCode = flow
	case "client_credentials":
		flow.TokenURL = orDefault(a.tokenURL, defaultTokenURL)
		r.scheme.Flows.ClientCredentials = flow
	case "password", "password_credentials":
		flow.TokenURL = orDefault(a.tokenURL, defaultTokenURL)
		r.scheme.Flows.Password = flow
	case "implicit":
		flow.AuthorizationURL = orDefault(a.authorizationURL, defaultAuthorizeURL)
		r.scheme.Flows.Implicit = flow
	default:
		r.note = fmt.Sprintf("oauth2 grant type %q has no flow mapping; flows left empty", a.grantType)
		r.severity = SeverityWarning
	}
	return r
}

// updateSecurity appends req to existing. Requirements accumulate; an
// existing entry is never replaced.
func updateSecurity(existing []openapi.SecurityRequirement, req openapi.SecurityRequirement) []openapi.SecurityRequirement {
	out := make([]openapi.SecurityRequirement, 0, len(existing)+1)
	out = append(out, existing...)
	return append(out, req)
}

// setScheme stores scheme under name unless the name is already taken.
// It reports whether the stored scheme differs from the one offered.
func setScheme(doc *openapi.Document, name string, scheme *openapi.SecurityScheme) (conflict bool) {
	if doc.Components == nil {
		doc.Components = &openapi.Components{}
	}
	if doc.Components.SecuritySchemes == nil {
		doc.Components.SecuritySchemes = make(map[string]*openapi.SecurityScheme)
	}
	if existing, ok := doc.Components.SecuritySchemes[name]; ok {
		return !reflect.DeepEqual(existing, scheme)
	}
	doc.Components.SecuritySchemes[name] = scheme
	return false
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
