package postman

import (
	"strings"
)

// Auth is an authentication block on a collection, folder or request.
// Params holds the attributes stored under the key named by Type.
type Auth struct {
	Type   Text
	Params []AuthParam
}

// AuthParam is a single auth attribute. Value is kept as decoded so that list
// attributes such as OAuth2 scopes survive.
type AuthParam struct {
	Key   string
	Value any
}

// Get returns the text value of the first attribute named key.
func (a *Auth) Get(key string) string {
	if a == nil {
		return ""
	}
	for _, p := range a.Params {
		if p.Key == key {
			s, _ := scalarString(p.Value)
			return s
		}
	}
	return ""
}

// First returns the first non-empty value among the given attribute keys.
func (a *Auth) First(keys ...string) string {
	for _, k := range keys {
		if v := a.Get(k); v != "" {
			return v
		}
	}
	return ""
}

// List returns a list attribute. A string value is split on whitespace and
// commas, matching how Postman stores OAuth2 scopes.
func (a *Auth) List(key string) []string {
	if a == nil {
		return nil
	}
	for _, p := range a.Params {
		if p.Key != key {
			continue
		}
		switch v := p.Value.(type) {
		case []any:
			out := make([]string, 0, len(v))
			for _, e := range v {
				if s, ok := scalarString(e); ok && s != "" {
					out = append(out, s)
				}
			}
			return out
		default:
			s, _ := scalarString(v)
			return strings.FieldsFunc(s, func(r rune) bool {
				return r == ',' || r == ' ' || r == '\t' || r == '\n'
			})
		}
	}
	return nil
}
