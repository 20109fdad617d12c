package postman

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// UnmarshalJSON implements json.Unmarshaler. Non-object items are rejected so
// that an enclosing List skips them; field-level mismatches are ignored.
func (i *Item) UnmarshalJSON(b []byte) error {
	type alias Item
	var probe struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	_ = json.Unmarshal(b, (*alias)(i))
	i.Folder = probe.Item != nil
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A bare string is taken as the
// request URL with the default method.
func (r *Request) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		u, perr := ParseURL(s)
		if perr != nil {
			u = URL{Raw: Text(s), Malformed: true}
		}
		*r = Request{URL: u}
		return nil
	}
	type alias Request
	_ = json.Unmarshal(b, (*alias)(r))
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (body *Body) UnmarshalJSON(b []byte) error {
	type alias Body
	_ = json.Unmarshal(b, (*alias)(body))
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A string URL, or an object that
// only carries "raw", is split into its components.
func (u *URL) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, perr := ParseURL(s)
		if perr != nil {
			parsed = URL{Raw: Text(s), Malformed: true}
		}
		*u = parsed
		return nil
	}
	type alias URL
	*u = URL{}
	_ = json.Unmarshal(b, (*alias)(u))
	if len(u.Host) == 0 && len(u.Path) == 0 && u.Raw != "" {
		parsed, perr := ParseURL(string(u.Raw))
		if perr != nil {
			u.Malformed = true
			return nil
		}
		u.Protocol = firstNonEmpty(u.Protocol, parsed.Protocol)
		u.Port = firstNonEmpty(u.Port, parsed.Port)
		u.Host = parsed.Host
		u.Path = parsed.Path
		if len(u.Query) == 0 {
			u.Query = parsed.Query
		}
	}
	return nil
}

func firstNonEmpty(a, b Text) Text {
	if a != "" {
		return a
	}
	return b
}

// UnmarshalJSON implements json.Unmarshaler. A dotted string is split into
// its labels.
func (h *Host) UnmarshalJSON(b []byte) error {
	*h = Host(decodeSegments(b, "."))
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A slash-separated string is
// split into its segments.
func (p *Path) UnmarshalJSON(b []byte) error {
	*p = Path(decodeSegments(b, "/"))
	return nil
}

func decodeSegments(b []byte, sep string) []string {
	v, _ := decodeValue(b)
	switch x := v.(type) {
	case string:
		x = strings.TrimPrefix(x, sep)
		if x == "" {
			return nil
		}
		return strings.Split(x, sep)
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			if obj, ok := e.(map[string]any); ok {
				e = obj["value"]
			}
			if s, ok := scalarString(e); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Attributes are read from the
// key named after the auth type, either as a [{key, value}] list or as a
// plain object.
func (a *Auth) UnmarshalJSON(b []byte) error {
	*a = Auth{}
	v, _ := decodeValue(bytes.TrimSpace(b))
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	typ, _ := scalarString(obj["type"])
	a.Type = Text(typ)

	switch attrs := obj[typ].(type) {
	case []any:
		for _, e := range attrs {
			entry, ok := e.(map[string]any)
			if !ok {
				continue
			}
			key, _ := scalarString(entry["key"])
			if key == "" {
				continue
			}
			a.Params = append(a.Params, AuthParam{Key: key, Value: entry["value"]})
		}
	case map[string]any:
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			a.Params = append(a.Params, AuthParam{Key: k, Value: attrs[k]})
		}
	}
	return nil
}
