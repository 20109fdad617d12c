package converter

import (
	"fmt"
	"strings"

	"github.com/erraggy/postman2oas/internal/pathutil"
	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

// mapParameters derives query, header and path parameters, in that order.
// Disabled entries are skipped and a repeated (name, in) pair keeps its first
// occurrence.
func mapParameters(req *postman.Request, path, loc string) ([]*openapi.Parameter, []ConversionIssue) {
	var (
		params []*openapi.Parameter
		found  []ConversionIssue
		seen   = make(map[string]bool)
	)

	add := func(p *openapi.Parameter, entryLoc string) {
		key := p.In + "\x00" + p.Name
		if seen[key] {
			found = append(found, ConversionIssue{
				Path:     entryLoc,
				Message:  fmt.Sprintf("duplicate %s parameter %q ignored", p.In, p.Name),
				Severity: SeverityInfo,
			})
			return
		}
		seen[key] = true
		params = append(params, p)
	}

	for i, q := range req.URL.Query {
		if !q.Enabled() || strings.TrimSpace(string(q.Key)) == "" {
			continue
		}
		add(literalParameter(q, openapi.ParameterInQuery), fmt.Sprintf("%s.url.query[%d]", loc, i))
	}

	for i, h := range req.Header {
		if !h.Enabled() || strings.TrimSpace(string(h.Key)) == "" {
			continue
		}
		add(literalParameter(h, openapi.ParameterInHeader), fmt.Sprintf("%s.header[%d]", loc, i))
	}

	vars := make(map[string]postman.Param, len(req.URL.Variable))
	for _, v := range req.URL.Variable {
		if _, ok := vars[string(v.Key)]; !ok {
			vars[string(v.Key)] = v
		}
	}
	for _, name := range pathutil.Params(path) {
		p := &openapi.Parameter{
			Name:     name,
			In:       openapi.ParameterInPath,
			Required: true,
			Schema:   &openapi.Schema{Type: "string"},
		}
		if v, ok := vars[name]; ok {
			p.Description = string(v.Description)
			p.Schema, p.Example = scalarSchema(string(v.Value))
		}
		add(p, loc+".url")
	}

	return params, found
}

// literalParameter maps a query entry or header to a parameter, inferring
// the schema type and example from its value.
func literalParameter(kv postman.Param, in string) *openapi.Parameter {
	p := &openapi.Parameter{
		Name:        strings.TrimSpace(string(kv.Key)),
		In:          in,
		Description: string(kv.Description),
	}
	p.Schema, p.Example = scalarSchema(string(kv.Value))
	return p
}
