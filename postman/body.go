package postman

// Body modes recognized by the converter.
const (
	ModeRaw        = "raw"
	ModeURLEncoded = "urlencoded"
	ModeFormData   = "formdata"
	ModeFile       = "file"
	ModeGraphQL    = "graphql"
)

// Body is a request body. Mode selects which of the other fields is used.
type Body struct {
	Mode       Text        `json:"mode"`
	Raw        Text        `json:"raw,omitempty"`
	URLEncoded List[Param] `json:"urlencoded,omitempty"`
	FormData   List[Param] `json:"formdata,omitempty"`
	File       *BodyFile   `json:"file,omitempty"`
	GraphQL    *GraphQL    `json:"graphql,omitempty"`
	Disabled   Flag        `json:"disabled,omitempty"`
	Options    BodyOptions `json:"options,omitempty"`
}

// BodyFile references a file uploaded as the whole body.
type BodyFile struct {
	Src     Text `json:"src,omitempty"`
	Content Text `json:"content,omitempty"`
}

// GraphQL is a GraphQL query body.
type GraphQL struct {
	Query     Text `json:"query"`
	Variables Text `json:"variables,omitempty"`
}

// BodyOptions carries per-mode body options.
type BodyOptions struct {
	Raw RawOptions `json:"raw,omitempty"`
}

// RawOptions describes the language of a raw body (json, xml, html, text, javascript).
type RawOptions struct {
	Language Text `json:"language,omitempty"`
}
