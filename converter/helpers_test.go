package converter

import (
	"testing"

	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
	"github.com/stretchr/testify/require"
)

// parseCollection parses an inline JSON collection or fails the test.
func parseCollection(t *testing.T, src string) *postman.Collection {
	t.Helper()
	coll, err := postman.Parse([]byte(src))
	require.NoError(t, err)
	return coll
}

// convertString converts an inline JSON collection with default settings.
func convertString(t *testing.T, src string) *ConversionResult {
	t.Helper()
	result, err := New().Convert(parseCollection(t, src))
	require.NoError(t, err)
	require.NotNil(t, result.Document)
	return result
}

// operation returns the operation at path and method or fails the test.
func operation(t *testing.T, doc *openapi.Document, path, method string) *openapi.Operation {
	t.Helper()
	item := doc.Paths.Get(path)
	require.NotNil(t, item, "path %s not found; have %v", path, doc.Paths.Keys())
	op := item.Operation(method)
	require.NotNil(t, op, "method %s not found on %s", method, path)
	return op
}

// findParam returns the parameter named name in location in, or nil.
func findParam(op *openapi.Operation, name, in string) *openapi.Parameter {
	for _, p := range op.Parameters {
		if p.Name == name && p.In == in {
			return p
		}
	}
	return nil
}

// issueMessages returns the messages of all issues with the given severity.
func issueMessages(result *ConversionResult, sev Severity) []string {
	var out []string
	for _, issue := range result.Issues {
		if issue.Severity == sev {
			out = append(out, issue.Message)
		}
	}
	return out
}
