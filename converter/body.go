package converter

import (
	"fmt"
	"mime"
	"strings"

	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

// Media types produced for request bodies.
const (
	mediaJSON       = "application/json"
	mediaXML        = "application/xml"
	mediaHTML       = "text/html"
	mediaText       = "text/plain"
	mediaForm       = "application/x-www-form-urlencoded"
	mediaMultipart  = "multipart/form-data"
	mediaOctetBytes = "application/octet-stream"
)

// mapBody maps a request body to an OpenAPI request body. Absent, disabled
// and empty bodies give nil. A non-empty note describes a body that could
// not be mapped.
func mapBody(b *postman.Body, headers postman.HeaderList) (*openapi.RequestBody, string) {
	if b == nil || bool(b.Disabled) {
		return nil, ""
	}

	mode := strings.ToLower(strings.TrimSpace(string(b.Mode)))
	switch mode {
	case postman.ModeRaw:
		return rawBody(b, headers), ""
	case postman.ModeURLEncoded:
		return formBody(mediaForm, b.URLEncoded, false), ""
	case postman.ModeFormData:
		return formBody(mediaMultipart, b.FormData, true), ""
	case postman.ModeFile:
		return singleContent(mediaOctetBytes, &openapi.MediaType{
			Schema: &openapi.Schema{Type: "string", Format: "binary"},
		}), ""
	case postman.ModeGraphQL:
		return graphQLBody(b.GraphQL), ""
	case "":
		return nil, ""
	default:
		return nil, fmt.Sprintf("body mode %q is not supported; request body omitted", mode)
	}
}

func rawBody(b *postman.Body, headers postman.HeaderList) *openapi.RequestBody {
	raw := string(b.Raw)
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	lang := strings.ToLower(string(b.Options.Raw.Language))
	looksJSON := strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
	switch {
	case lang == "json" || (looksJSON && lang != "xml" && lang != "html"):
		return singleContent(mediaJSON, jsonMediaType(trimmed))
	case lang == "xml":
		return singleContent(mediaXML, &openapi.MediaType{Schema: &openapi.Schema{Type: "string"}, Example: raw})
	case lang == "html":
		return singleContent(mediaHTML, &openapi.MediaType{Schema: &openapi.Schema{Type: "string"}, Example: raw})
	}

	media := mediaText
	if ct, ok := headers.Get("Content-Type"); ok {
		if parsed, _, err := mime.ParseMediaType(ct); err == nil {
			media = parsed
		}
	}
	return singleContent(media, &openapi.MediaType{Schema: &openapi.Schema{Type: "string"}, Example: raw})
}

// jsonMediaType infers a schema and example from a JSON payload. Payloads
// that do not parse, typically because of unquoted {{var}} placeholders, get
// a bare object or array schema.
func jsonMediaType(payload string) *openapi.MediaType {
	if v, ok := decodeJSON(payload); ok {
		return &openapi.MediaType{Schema: jsonSchema(v, 0), Example: v}
	}
	if strings.HasPrefix(payload, "[") {
		return &openapi.MediaType{Schema: &openapi.Schema{Type: "array", Items: &openapi.Schema{}}}
	}
	return &openapi.MediaType{Schema: &openapi.Schema{Type: "object"}}
}

// formBody builds an object schema with one property per enabled field. When
// files are allowed, file fields become binary strings.
func formBody(media string, fields postman.List[postman.Param], files bool) *openapi.RequestBody {
	schema := &openapi.Schema{Type: "object", Properties: make(map[string]*openapi.Schema)}
	for _, f := range fields {
		name := strings.TrimSpace(string(f.Key))
		if !f.Enabled() || name == "" {
			continue
		}
		if _, dup := schema.Properties[name]; dup {
			continue
		}
		if files && strings.EqualFold(string(f.Type), "file") {
			schema.Properties[name] = &openapi.Schema{Type: "string", Format: "binary", Description: string(f.Description)}
			continue
		}
		prop, example := scalarSchema(string(f.Value))
		prop.Description = string(f.Description)
		prop.Example = example
		schema.Properties[name] = prop
	}
	if len(schema.Properties) == 0 {
		return nil
	}
	return singleContent(media, &openapi.MediaType{Schema: schema})
}

func graphQLBody(g *postman.GraphQL) *openapi.RequestBody {
	if g == nil || strings.TrimSpace(string(g.Query)) == "" {
		return nil
	}
	example := map[string]any{"query": string(g.Query)}
	if vars, ok := decodeJSON(string(g.Variables)); ok {
		example["variables"] = vars
	}
	return singleContent(mediaJSON, &openapi.MediaType{
		Schema: &openapi.Schema{
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"query":     {Type: "string"},
				"variables": {Type: "object"},
			},
			Required: []string{"query"},
		},
		Example: example,
	})
}

func singleContent(media string, mt *openapi.MediaType) *openapi.RequestBody {
	return &openapi.RequestBody{Content: map[string]*openapi.MediaType{media: mt}}
}
