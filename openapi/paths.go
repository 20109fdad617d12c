package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Paths maps path templates to path items and remembers insertion order.
// The zero value is ready to use.
type Paths struct {
	keys  []string
	items map[string]*PathItem
}

// NewPaths returns an empty Paths.
func NewPaths() *Paths {
	return &Paths{items: make(map[string]*PathItem)}
}

// Get returns the path item stored under key, or nil.
func (p *Paths) Get(key string) *PathItem {
	if p == nil {
		return nil
	}
	return p.items[key]
}

// Set stores item under key. A new key is appended to the order; an existing
// key keeps its position.
func (p *Paths) Set(key string, item *PathItem) {
	if p.items == nil {
		p.items = make(map[string]*PathItem)
	}
	if _, ok := p.items[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.items[key] = item
}

// Keys returns the path templates in insertion order.
func (p *Paths) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of paths.
func (p *Paths) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// MarshalJSON writes the paths as a JSON object in insertion order.
func (p *Paths) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if p != nil {
		for i, key := range p.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			v, err := json.Marshal(p.items[key])
			if err != nil {
				return nil, fmt.Errorf("openapi: path %s: %w", key, err)
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping the order of its keys.
func (p *Paths) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("openapi: paths must be an object")
	}
	*p = Paths{items: make(map[string]*PathItem)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var item PathItem
		if err := dec.Decode(&item); err != nil {
			return fmt.Errorf("openapi: path %s: %w", key, err)
		}
		p.Set(key, &item)
	}
	_, err = dec.Token()
	return err
}
