package openapi

import "strings"

// Methods lists the HTTP methods a PathItem can hold, in serialization order.
var Methods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// IsMethod reports whether method (any case) can be represented on a PathItem.
func IsMethod(method string) bool {
	m := strings.ToLower(method)
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	Summary     string     `json:"summary,omitempty"`
	Description string     `json:"description,omitempty"`
	Get         *Operation `json:"get,omitempty"`
	Put         *Operation `json:"put,omitempty"`
	Post        *Operation `json:"post,omitempty"`
	Delete      *Operation `json:"delete,omitempty"`
	Options     *Operation `json:"options,omitempty"`
	Head        *Operation `json:"head,omitempty"`
	Patch       *Operation `json:"patch,omitempty"`
	Trace       *Operation `json:"trace,omitempty"`
}

// slot returns the field holding the operation for method, or nil if the
// method is not representable.
func (p *PathItem) slot(method string) **Operation {
	switch strings.ToLower(method) {
	case "get":
		return &p.Get
	case "put":
		return &p.Put
	case "post":
		return &p.Post
	case "delete":
		return &p.Delete
	case "options":
		return &p.Options
	case "head":
		return &p.Head
	case "patch":
		return &p.Patch
	case "trace":
		return &p.Trace
	default:
		return nil
	}
}

// Operation returns the operation for method, or nil.
func (p *PathItem) Operation(method string) *Operation {
	if p == nil {
		return nil
	}
	if s := p.slot(method); s != nil {
		return *s
	}
	return nil
}

// SetOperation stores op under method. It reports false when the method is
// not representable or an operation is already present.
func (p *PathItem) SetOperation(method string, op *Operation) bool {
	s := p.slot(method)
	if s == nil || *s != nil {
		return false
	}
	*s = op
	return true
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags        []string              `json:"tags,omitempty"`
	Summary     string                `json:"summary,omitempty"`
	Description *string               `json:"description,omitempty"`
	OperationID string                `json:"operationId,omitempty"`
	Parameters  []*Parameter          `json:"parameters,omitempty"`
	RequestBody *RequestBody          `json:"requestBody,omitempty"`
	Responses   map[string]*Response  `json:"responses,omitempty"`
	Security    []SecurityRequirement `json:"security,omitempty"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Description string  `json:"description,omitempty"`
	Required    bool    `json:"required,omitempty"`
	Schema      *Schema `json:"schema,omitempty"`
	Example     any     `json:"example,omitempty"`
}

// Parameter locations.
const (
	ParameterInQuery  = "query"
	ParameterInHeader = "header"
	ParameterInPath   = "path"
	ParameterInCookie = "cookie"
)

// RequestBody describes a request body.
type RequestBody struct {
	Description string                `json:"description,omitempty"`
	Content     map[string]*MediaType `json:"content"`
	Required    bool                  `json:"required,omitempty"`
}

// Response describes a single response from an operation.
type Response struct {
	Description string                `json:"description"`
	Headers     map[string]*Header    `json:"headers,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

// Header describes a response header.
type Header struct {
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema,omitempty"`
	Example     any     `json:"example,omitempty"`
}

// MediaType holds the schema and example for one media type.
type MediaType struct {
	Schema  *Schema `json:"schema,omitempty"`
	Example any     `json:"example,omitempty"`
}

// Schema is the subset of the OpenAPI schema object the converter infers.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Format      string             `json:"format,omitempty"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Example     any                `json:"example,omitempty"`
}

// IsEmpty reports whether the schema carries no information.
func (s *Schema) IsEmpty() bool {
	return s == nil || (s.Type == "" && s.Format == "" && s.Description == "" &&
		len(s.Properties) == 0 && s.Items == nil && len(s.Required) == 0 && s.Example == nil)
}
