package postman

// Lookup returns the value of the first enabled collection variable named
// name.
func (c *Collection) Lookup(name string) (string, bool) {
	for _, v := range c.Variable {
		if v.Enabled() && string(v.Key) == name {
			return string(v.Value), true
		}
	}
	return "", false
}

// Resolver returns a variable lookup in which overrides take precedence over
// the collection's own variables.
func (c *Collection) Resolver(overrides map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		if v, ok := overrides[name]; ok {
			return v, true
		}
		return c.Lookup(name)
	}
}
