package postman

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// decodeValue decodes b into a generic value, keeping numbers as json.Number.
func decodeValue(b []byte) (any, bool) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}

// scalarString renders a JSON scalar as text. Objects and arrays yield false.
func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool:
		return strconv.FormatBool(x), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case int:
		return strconv.Itoa(x), true
	case nil:
		return "", true
	}
	return "", false
}

// Text is a string that also accepts JSON numbers and booleans.
// Any other JSON value decodes to the empty string.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	v, _ := decodeValue(b)
	s, _ := scalarString(v)
	*t = Text(s)
	return nil
}

// String returns the text.
func (t Text) String() string { return string(t) }

// Flag is a bool that also accepts the strings "true" and "false".
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(b []byte) error {
	v, _ := decodeValue(b)
	switch x := v.(type) {
	case bool:
		*f = Flag(x)
	case string:
		parsed, _ := strconv.ParseBool(strings.TrimSpace(x))
		*f = Flag(parsed)
	default:
		*f = false
	}
	return nil
}

// Description is a plain string or a rich {content, type} object; both
// decode to the content text.
type Description string

// UnmarshalJSON implements json.Unmarshaler.
func (d *Description) UnmarshalJSON(b []byte) error {
	v, _ := decodeValue(b)
	switch x := v.(type) {
	case map[string]any:
		s, _ := scalarString(x["content"])
		*d = Description(s)
	default:
		s, _ := scalarString(x)
		*d = Description(s)
	}
	return nil
}

// Version is a collection version given either as a string or as a
// {major, minor, patch} object.
type Version string

// UnmarshalJSON implements json.Unmarshaler.
func (ver *Version) UnmarshalJSON(b []byte) error {
	v, _ := decodeValue(b)
	obj, ok := v.(map[string]any)
	if !ok {
		s, _ := scalarString(v)
		*ver = Version(s)
		return nil
	}
	parts := make([]string, 0, 3)
	for _, key := range []string{"major", "minor", "patch"} {
		s, _ := scalarString(obj[key])
		if s == "" {
			s = "0"
		}
		parts = append(parts, s)
	}
	s := strings.Join(parts, ".")
	if id, _ := scalarString(obj["identifier"]); id != "" {
		s += "-" + id
	}
	*ver = Version(s)
	return nil
}

// Lines is a list of strings that also accepts a single string.
type Lines []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *Lines) UnmarshalJSON(b []byte) error {
	v, _ := decodeValue(b)
	*l = nil
	switch x := v.(type) {
	case []any:
		for _, e := range x {
			if s, ok := scalarString(e); ok && e != nil {
				*l = append(*l, s)
			}
		}
	default:
		if s, ok := scalarString(x); ok && x != nil {
			*l = Lines{s}
		}
	}
	return nil
}

// List is a sequence that skips elements which fail to decode. A single
// object where a list is expected decodes as a one-element list; any other
// value decodes as an empty list.
type List[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (l *List[T]) UnmarshalJSON(b []byte) error {
	*l = nil
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '[':
		var raws []json.RawMessage
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil
		}
		out := make([]T, 0, len(raws))
		for _, raw := range raws {
			var elem T
			if err := json.Unmarshal(raw, &elem); err != nil {
				continue
			}
			out = append(out, elem)
		}
		*l = out
	case '{':
		var elem T
		if err := json.Unmarshal(trimmed, &elem); err == nil {
			*l = List[T]{elem}
		}
	}
	return nil
}

// HeaderList is a list of headers that also accepts the raw
// newline-separated "Key: Value" form.
type HeaderList []Param

// UnmarshalJSON implements json.Unmarshaler.
func (h *HeaderList) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*h = parseHeaderBlock(s)
		return nil
	}
	var list List[Param]
	_ = list.UnmarshalJSON(b)
	*h = HeaderList(list)
	return nil
}

// Get returns the value of the first enabled header named key, compared
// case-insensitively.
func (h HeaderList) Get(key string) (string, bool) {
	for _, p := range h {
		if p.Enabled() && strings.EqualFold(string(p.Key), key) {
			return string(p.Value), true
		}
	}
	return "", false
}

func parseHeaderBlock(s string) HeaderList {
	var out HeaderList
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		disabled := strings.HasPrefix(line, "//")
		line = strings.TrimSpace(strings.TrimPrefix(line, "//"))
		key, value, _ := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out = append(out, Param{
			Key:      Text(key),
			Value:    Text(strings.TrimSpace(value)),
			Disabled: Flag(disabled),
		})
	}
	return out
}
