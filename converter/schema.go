package converter

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/postman2oas/internal/pathutil"
	"github.com/erraggy/postman2oas/openapi"
)

// maxSchemaDepth bounds schema inference over nested JSON examples.
const maxSchemaDepth = 32

// scalarSchema infers a schema from a literal value such as a query value or
// form field. Placeholders and empty values give a plain string schema with
// no example.
func scalarSchema(value string) (*openapi.Schema, any) {
	if value == "" || pathutil.HasPlaceholder(value) {
		return &openapi.Schema{Type: "string"}, nil
	}
	if value == "true" || value == "false" {
		return &openapi.Schema{Type: "boolean"}, value == "true"
	}
	if !hasLeadingZero(value) {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return &openapi.Schema{Type: "integer"}, n
		}
		if f, err := strconv.ParseFloat(value, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) && isDecimal(value) {
			return &openapi.Schema{Type: "number"}, f
		}
	}
	return &openapi.Schema{Type: "string"}, value
}

// hasLeadingZero reports values like "007" that are identifiers rather than
// numbers.
func hasLeadingZero(v string) bool {
	v = strings.TrimPrefix(v, "-")
	return len(v) > 1 && v[0] == '0' && v[1] != '.'
}

// isDecimal rejects ParseFloat spellings such as "Inf", "0x1p-2" or "1_000".
func isDecimal(v string) bool {
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}

// jsonSchema infers a schema from a decoded JSON value. Arrays take their
// item schema from the first element.
func jsonSchema(v any, depth int) *openapi.Schema {
	if depth > maxSchemaDepth {
		return &openapi.Schema{}
	}
	switch x := v.(type) {
	case map[string]any:
		s := &openapi.Schema{Type: "object"}
		if len(x) > 0 {
			s.Properties = make(map[string]*openapi.Schema, len(x))
			for k, child := range x {
				s.Properties[k] = jsonSchema(child, depth+1)
			}
		}
		return s
	case []any:
		s := &openapi.Schema{Type: "array", Items: &openapi.Schema{}}
		if len(x) > 0 {
			s.Items = jsonSchema(x[0], depth+1)
		}
		return s
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return &openapi.Schema{Type: "integer"}
		}
		return &openapi.Schema{Type: "number"}
	case float64:
		if x == math.Trunc(x) {
			return &openapi.Schema{Type: "integer"}
		}
		return &openapi.Schema{Type: "number"}
	case string:
		return &openapi.Schema{Type: "string"}
	case bool:
		return &openapi.Schema{Type: "boolean"}
	default:
		return &openapi.Schema{}
	}
}

// decodeJSON parses a JSON document keeping numbers exact.
func decodeJSON(s string) (any, bool) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	if dec.More() {
		return nil, false
	}
	return v, true
}
