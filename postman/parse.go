package postman

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/postman2oas/oaserrors"
	"go.yaml.in/yaml/v4"
)

// utf8BOM is stripped from the start of input documents.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse decodes a collection from JSON or YAML bytes. Input whose first
// non-space byte is '{' or '[' is decoded as JSON, anything else as YAML.
func Parse(data []byte) (*Collection, error) {
	return parseBytes(data, "")
}

// ParseReader reads the whole reader and decodes it with Parse.
func ParseReader(r io.Reader) (*Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.ParseError{Message: "failed to read input", Cause: err}
	}
	return parseBytes(data, "")
}

// ParseFile reads and decodes the collection stored at path.
func ParseFile(path string) (*Collection, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the caller
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	return parseBytes(data, path)
}

func parseBytes(data []byte, source string) (*Collection, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &oaserrors.ParseError{Path: source, Message: "empty input"}
	}

	var v any
	if trimmed[0] == '{' || trimmed[0] == '[' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, &oaserrors.ParseError{Path: source, Message: "invalid JSON", Cause: err}
		}
	} else if err := yaml.Unmarshal(trimmed, &v); err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "invalid YAML", Cause: err}
	}
	return FromValue(v)
}

// FromValue builds a collection from an already-decoded value, such as the
// result of json.Unmarshal into an any. The value must be an object, and
// every "item" field it contains must be a sequence; otherwise an
// *oaserrors.InvalidInputError is returned.
func FromValue(v any) (*Collection, error) {
	if c, ok := v.(*Collection); ok {
		return c, nil
	}
	if _, ok := v.(map[string]any); !ok {
		return nil, &oaserrors.InvalidInputError{
			Path:     "(root)",
			Expected: "object",
			Actual:   jsonKind(v),
			Message:  "a collection must be a JSON object",
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, &oaserrors.ParseError{Message: "value is not representable as JSON", Cause: err}
	}
	if err := checkShape(data); err != nil {
		return nil, err
	}

	// A type mismatch on a top-level field (e.g. "info": "x") leaves that
	// field zero; decoding of the remaining fields continues.
	var c Collection
	var typeErr *json.UnmarshalTypeError
	if err := json.Unmarshal(data, &c); err != nil && !errors.As(err, &typeErr) {
		return nil, &oaserrors.ParseError{Message: "failed to decode collection", Cause: err}
	}
	return &c, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64, uint64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
